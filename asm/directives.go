package asm

import (
	"github.com/lookbusy1344/mipsgo/token"
)

// handleDirective implements spec §4.3. rest is every token after the
// directive token itself.
func (a *Assembler) handleDirective(dir token.Token, rest []token.Token) error {
	switch dir.Directive {
	case token.Data:
		a.currentSegment = SegData
		return nil
	case token.Text:
		a.currentSegment = SegText
		return nil
	case token.Global:
		if len(rest) == 0 || rest[0].Kind != token.KindLabel {
			return newErr(ErrEntrypointMissing, dir.Pos, "")
		}
		a.entryLabel = rest[0].Name
		a.haveEntry = true
		return nil
	case token.Ascii:
		return a.writeString(dir, rest, false)
	case token.Asciiz:
		return a.writeString(dir, rest, true)
	case token.Byte:
		return a.writeBytes(dir, rest)
	case token.Word:
		return a.writeWords(dir, rest)
	default:
		return newErr(ErrUnknownDirective, dir.Pos, dir.Directive.String())
	}
}

func (a *Assembler) writeString(dir token.Token, rest []token.Token, nulTerminate bool) error {
	if len(rest) == 0 || rest[0].Kind != token.KindText {
		return newErr(ErrInvalidString, dir.Pos, "")
	}
	bytes := []byte(rest[0].Text)
	if nulTerminate {
		bytes = append(bytes, 0x00)
	}
	for _, b := range bytes {
		a.memory[a.dataAddr] = b
		a.dataAddr = a.dataAddr.Add(1)
	}
	return nil
}

// writeBytes implements .byte n1 n2 ... (spec §4.3): each trailing Number
// must fit -128..255; the low byte is written and the cursor advances by
// one per value.
func (a *Assembler) writeBytes(dir token.Token, rest []token.Token) error {
	for _, tok := range rest {
		if tok.Kind != token.KindNumber {
			continue
		}
		if tok.Number < -128 || tok.Number > 255 {
			return newErr(ErrInvalidByteValue, tok.Pos, tok.String())
		}
		a.memory[a.dataAddr] = byte(tok.Number & 0xFF)
		a.dataAddr = a.dataAddr.Add(1)
	}
	return nil
}

// writeWords implements .word N1 N2 ... supplementing original_source's
// tokenized-but-unimplemented WordDirective (SPEC_FULL.md): each value
// is written as 4 little-endian bytes, advancing the cursor by 4 the way
// .byte advances it by 1. A bare ".word" with no operands is accepted and produces no
// emission, matching spec §4.3's "accepted and ignored" floor.
func (a *Assembler) writeWords(dir token.Token, rest []token.Token) error {
	for _, tok := range rest {
		if tok.Kind != token.KindNumber {
			continue
		}
		v := uint32(tok.Number)
		for shift := 0; shift < 32; shift += 8 {
			a.memory[a.dataAddr] = byte(v >> shift)
			a.dataAddr = a.dataAddr.Add(1)
		}
	}
	return nil
}
