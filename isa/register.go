// Package isa defines the instruction-set model: the 32 MIPS GPRs, the
// distinct Address type, and the closed primitive-instruction variant set
// with its Encode/Execute contracts (spec §3, §4.6, §4.7).
package isa

import "fmt"

// Register is one of the 32 MIPS GPRs, carrying its fixed 5-bit index.
// Grounded on original_source/src/sim/cpu.rs's Register enum (same names,
// same index values) and lookbusy1344's vm/cpu.go register-alias constants.
type Register uint8

const (
	Zero Register = iota
	At
	V0
	V1
	A0
	A1
	A2
	A3
	T0
	T1
	T2
	T3
	T4
	T5
	T6
	T7
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	T8
	T9
	K0
	K1
	Gp
	Sp
	Fp
	Ra
)

var registerNames = map[string]Register{
	"$zero": Zero, "$0": Zero,
	"$at": At,
	"$v0": V0, "$v1": V1,
	"$a0": A0, "$a1": A1, "$a2": A2, "$a3": A3,
	"$t0": T0, "$t1": T1, "$t2": T2, "$t3": T3,
	"$t4": T4, "$t5": T5, "$t6": T6, "$t7": T7,
	"$s0": S0, "$s1": S1, "$s2": S2, "$s3": S3,
	"$s4": S4, "$s5": S5, "$s6": S6, "$s7": S7,
	"$t8": T8, "$t9": T9,
	"$k0": K0, "$k1": K1,
	"$gp": Gp, "$sp": Sp, "$fp": Fp, "$ra": Ra,
}

var registerDisplay = [...]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// ParseRegister resolves a raw textual register name (e.g. "$t0", "$0",
// "$zero") to its Register value.
func ParseRegister(name string) (Register, error) {
	r, ok := registerNames[name]
	if !ok {
		return 0, fmt.Errorf("no such register %q", name)
	}
	return r, nil
}

// Index returns the register's fixed 5-bit index 0..31.
func (r Register) Index() uint32 { return uint32(r) }

func (r Register) String() string {
	if int(r) < len(registerDisplay) {
		return registerDisplay[r]
	}
	return fmt.Sprintf("$reg%d", r)
}
