package isa

import "fmt"

// Decode reverses Encode() for every primitive this core defines, for the
// round-trip property in spec §8 ("decoding the word produced by encode()
// reproduces the original variant"). Grounded on lookbusy1344's
// encoder/constants.go shift/mask constants used in the reverse direction.
func Decode(word uint32) (Instruction, error) {
	op := word >> 26
	switch op {
	case opAddImmediate:
		rs, rt, imm := decodeIFormat(word)
		return AddImmediate{Res: Register(rt), Reg: Register(rs), Imm: imm}, nil
	case opLoadUpperImmediate:
		_, rt, imm := decodeIFormat(word)
		return LoadUpperImmediate{Res: Register(rt), Imm: imm}, nil
	case opOrImmediate:
		rs, rt, imm := decodeIFormat(word)
		return OrImmediate{Res: Register(rt), Reg: Register(rs), Imm: imm}, nil
	case opAddUnsigned: // op 0x00: either AddUnsigned (R-format) or SystemCall
		rs, rt, rd, funct := decodeRFormat(word)
		switch funct {
		case functAddUnsigned:
			return AddUnsigned{Res: Register(rd), Reg: Register(rs), Ret: Register(rt)}, nil
		case functSystemCall:
			return SystemCall{}, nil
		default:
			return nil, fmt.Errorf("unrecognized funct 0x%02X for opcode 0x00", funct)
		}
	default:
		return nil, fmt.Errorf("unrecognized opcode 0x%02X", op)
	}
}

func decodeIFormat(word uint32) (rs, rt uint32, imm int16) {
	rs = (word >> 21) & 0x1F
	rt = (word >> 16) & 0x1F
	imm = int16(word & 0xFFFF)
	return
}

func decodeRFormat(word uint32) (rs, rt, rd, funct uint32) {
	rs = (word >> 21) & 0x1F
	rt = (word >> 16) & 0x1F
	rd = (word >> 11) & 0x1F
	funct = word & 0x3F
	return
}
