// Package vm implements the simulator: register file, sparse byte
// memory, program counter, fetch/execute loop, and syscall dispatcher
// (spec §4.5-§4.8).
package vm

import (
	"fmt"

	"github.com/lookbusy1344/mipsgo/isa"
)

// Memory is a sparse byte-addressable store. Grounded on lookbusy1344's
// vm/memory.go method naming (ReadByte/WriteByte/LoadBytes/GetBytes), but
// re-implemented over a map instead of the teacher's fixed segment arrays:
// spec §3 requires sparse-OK storage where any byte not explicitly
// written reads back as 0, which the teacher's bounded []byte segments
// don't model.
type Memory struct {
	bytes map[isa.Address]byte
}

// NewMemory wraps an already-assembled byte map (the Assembler's Result
// is the sole writer; the simulator never writes memory, per spec §5).
func NewMemory(bytes map[isa.Address]byte) *Memory {
	if bytes == nil {
		bytes = make(map[isa.Address]byte)
	}
	return &Memory{bytes: bytes}
}

// ReadByte returns the byte at addr, or 0 if it was never written.
func (m *Memory) ReadByte(addr isa.Address) byte {
	return m.bytes[addr]
}

// GetBytes returns n bytes starting at addr, substituting 0 for any
// unwritten byte.
func (m *Memory) GetBytes(addr isa.Address, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = m.bytes[addr.Add(uint32(i))]
	}
	return out
}

// ReadCString reads bytes from addr until the first 0x00 byte or a
// missing byte (§4.5's print_str semantics), whichever comes first.
func (m *Memory) ReadCString(addr isa.Address) []byte {
	var out []byte
	for i := uint32(0); ; i++ {
		b, ok := m.bytes[addr.Add(i)]
		if !ok || b == 0x00 {
			break
		}
		out = append(out, b)
	}
	return out
}

func (m *Memory) String() string {
	return fmt.Sprintf("Memory(%d bytes written)", len(m.bytes))
}
