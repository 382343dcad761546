package asm

import (
	"github.com/lookbusy1344/mipsgo/isa"
	"github.com/lookbusy1344/mipsgo/token"
)

// expand lowers one operator token-line (mnemonic plus operands) to its
// primitive instruction sequence per spec §4.4's table. line[0] is the
// Operator token; the rest are its operands in source order.
func (a *Assembler) expand(line token.Line) ([]isa.Instruction, error) {
	op := line[0]
	operands := line[1:]

	switch op.Name {
	case "syscall":
		return []isa.Instruction{isa.SystemCall{}}, nil

	case "addi":
		rd, rs, imm, err := a.regRegImm(op, operands)
		if err != nil {
			return nil, err
		}
		return []isa.Instruction{isa.AddImmediate{Res: rd, Reg: rs, Imm: imm}}, nil

	case "addu":
		rd, rs, rt, err := a.regRegReg(op, operands)
		if err != nil {
			return nil, err
		}
		return []isa.Instruction{isa.AddUnsigned{Res: rd, Reg: rs, Ret: rt}}, nil

	case "lui":
		rd, imm, err := a.regImm(op, operands)
		if err != nil {
			return nil, err
		}
		return []isa.Instruction{isa.LoadUpperImmediate{Res: rd, Imm: imm}}, nil

	case "ori":
		rd, rs, imm, err := a.regRegImm(op, operands)
		if err != nil {
			return nil, err
		}
		return []isa.Instruction{isa.OrImmediate{Res: rd, Reg: rs, Imm: imm}}, nil

	case "move":
		rd, rs, err := a.regReg(op, operands)
		if err != nil {
			return nil, err
		}
		return []isa.Instruction{isa.AddUnsigned{Res: rd, Reg: rs, Ret: isa.Zero}}, nil

	case "li":
		return a.expandLi(op, operands)

	case "la":
		return a.expandLa(op, operands)

	default:
		return nil, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
}

// expandLi implements the three-case li rd, N expansion of spec §4.4.
func (a *Assembler) expandLi(op token.Token, operands []token.Token) ([]isa.Instruction, error) {
	if len(operands) != 2 || operands[0].Kind != token.KindRegister || operands[1].Kind != token.KindNumber {
		return nil, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	rd, err := a.parseRegister(operands[0])
	if err != nil {
		return nil, err
	}
	n := operands[1].Number

	if isa.FitsSigned16(n) {
		return []isa.Instruction{isa.AddImmediate{Res: rd, Reg: isa.Zero, Imm: int16(n)}}, nil
	}
	if n&0xFFFF == 0 {
		return []isa.Instruction{isa.LoadUpperImmediate{Res: rd, Imm: int16(int32(uint32(n) >> 16))}}, nil
	}
	upper := int16(int32(uint32(n) >> 16))
	lower := int16(n & 0xFFFF)
	return []isa.Instruction{
		isa.LoadUpperImmediate{Res: rd, Imm: upper},
		isa.OrImmediate{Res: rd, Reg: rd, Imm: lower},
	}, nil
}

// expandLa implements la rd, L (spec §4.4): L must already be a defined
// data-segment symbol (one-pass, no forward references per spec §4.2/§9).
func (a *Assembler) expandLa(op token.Token, operands []token.Token) ([]isa.Instruction, error) {
	if len(operands) != 2 || operands[0].Kind != token.KindRegister || operands[1].Kind != token.KindLabel {
		return nil, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	rd, err := a.parseRegister(operands[0])
	if err != nil {
		return nil, err
	}
	labelTok := operands[1]
	sym, ok := a.symbols.Lookup(labelTok.Name, labelTok.Pos)
	if !ok || sym.Segment != SegData {
		return nil, newErr(ErrInvalidLabel, labelTok.Pos, labelTok.Name)
	}

	addr := uint32(sym.Address)
	upper := int16(int32(addr >> 16))
	lower := int16(addr & 0xFFFF)
	return []isa.Instruction{
		isa.LoadUpperImmediate{Res: rd, Imm: upper},
		isa.OrImmediate{Res: rd, Reg: rd, Imm: lower},
	}, nil
}

func (a *Assembler) parseRegister(tok token.Token) (isa.Register, error) {
	r, err := isa.ParseRegister(tok.Name)
	if err != nil {
		return 0, newErr(ErrInvalidRegister, tok.Pos, tok.Name)
	}
	return r, nil
}

func (a *Assembler) parseImmediate(tok token.Token) (int16, error) {
	if tok.Kind != token.KindNumber || !isa.FitsSigned16(tok.Number) {
		return 0, newErr(ErrInvalidImmediateValue, tok.Pos, tok.String())
	}
	return int16(tok.Number), nil
}

func (a *Assembler) regRegImm(op token.Token, operands []token.Token) (rd, rs isa.Register, imm int16, err error) {
	if len(operands) != 3 || operands[0].Kind != token.KindRegister ||
		operands[1].Kind != token.KindRegister || operands[2].Kind != token.KindNumber {
		return 0, 0, 0, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	if rd, err = a.parseRegister(operands[0]); err != nil {
		return
	}
	if rs, err = a.parseRegister(operands[1]); err != nil {
		return
	}
	imm, err = a.parseImmediate(operands[2])
	return
}

func (a *Assembler) regRegReg(op token.Token, operands []token.Token) (rd, rs, rt isa.Register, err error) {
	if len(operands) != 3 {
		return 0, 0, 0, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	if rd, err = a.parseRegister(operands[0]); err != nil {
		return
	}
	if rs, err = a.parseRegister(operands[1]); err != nil {
		return
	}
	rt, err = a.parseRegister(operands[2])
	return
}

func (a *Assembler) regReg(op token.Token, operands []token.Token) (rd, rs isa.Register, err error) {
	if len(operands) != 2 {
		return 0, 0, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	if rd, err = a.parseRegister(operands[0]); err != nil {
		return
	}
	rs, err = a.parseRegister(operands[1])
	return
}

func (a *Assembler) regImm(op token.Token, operands []token.Token) (rd isa.Register, imm int16, err error) {
	if len(operands) != 2 {
		return 0, 0, newErr(ErrInvalidInstruction, op.Pos, op.Name)
	}
	if rd, err = a.parseRegister(operands[0]); err != nil {
		return
	}
	imm, err = a.parseImmediate(operands[1])
	return
}
