package vm

import "github.com/lookbusy1344/mipsgo/isa"

// RegisterFile holds the 32 MIPS GPRs. Grounded on lookbusy1344's
// vm/cpu.go array-backed RegFile, generalized from ARM's 16 registers to
// MIPS's 32 named GPRs. Register 0 is enforced here, inside the
// abstraction itself rather than at call sites (SPEC_FULL.md's "register 0
// writes" decision), so the invariant holds under every setter.
type RegisterFile struct {
	regs [32]uint32
}

// Get returns the 32-bit value of register r; register 0 always reads 0.
func (rf *RegisterFile) Get(r isa.Register) uint32 {
	if r == isa.Zero {
		return 0
	}
	return rf.regs[r]
}

// Set writes val to register r; writes to register 0 are silently
// discarded.
func (rf *RegisterFile) Set(r isa.Register, val uint32) {
	if r == isa.Zero {
		return
	}
	rf.regs[r] = val
}
