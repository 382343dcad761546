package isa

import "fmt"

// Address is a distinct 32-bit unsigned type, preventing accidental mixing
// of instruction indices and raw byte offsets. Grounded on
// original_source/src/address.rs's Address newtype (Add/Sub impls).
type Address uint32

// Base addresses of the two implicit segments (spec §3).
const (
	BaseTextAddr Address = 0x0040_0000
	BaseDataAddr Address = 0x1001_0000
)

// Add returns the address offset by a byte count (unsigned widening add).
func (a Address) Add(offset uint32) Address { return a + Address(offset) }

// Sub returns the byte distance between two addresses (addr - addr -> size).
func (a Address) Sub(b Address) uint32 { return uint32(a - b) }

func (a Address) String() string { return fmt.Sprintf("0x%08X", uint32(a)) }
