package asm

import (
	"github.com/lookbusy1344/mipsgo/isa"
	"github.com/lookbusy1344/mipsgo/token"
)

// Result is the three move-out products an Assembler hands to the
// simulator once assembly finishes: the ordered text image, the data
// memory bytes, and the resolved entry address. Modeled as owned values,
// not borrowed views, so the simulator never depends on the assembler's
// internal cursors.
type Result struct {
	Text    []isa.Instruction   // index i is at isa.BaseTextAddr + 4*i
	Memory  map[isa.Address]byte
	Entry   isa.Address
	Symbols *SymbolTable
}

// Assembler drives the one-pass lowering of token-lines into Result, per
// spec §4.2. Grounded on original_source/src/assembler.rs's Assembler
// struct/assemble loop (authoritative one-pass semantics: peek label,
// dispatch on next token, text/data segment cursors) and lookbusy1344's
// loader/loader.go idiom of iterating and wrapping errors with %w.
type Assembler struct {
	symbols *SymbolTable
	memory  map[isa.Address]byte
	text    []isa.Instruction

	dataAddr       isa.Address
	currentSegment Segment
	entryLabel     string
	haveEntry      bool
}

// New returns an Assembler in its initial state: current segment Text,
// cursors at their bases, empty symbol table, empty memory, empty text
// image.
func New() *Assembler {
	return &Assembler{
		symbols:        NewSymbolTable(),
		memory:         make(map[isa.Address]byte),
		currentSegment: SegText,
		dataAddr:       isa.BaseDataAddr,
	}
}

// textAddr returns the address of the next instruction to be appended,
// i.e. BaseTextAddr + 4*len(text) (spec §4.2 step 1's parenthetical).
func (a *Assembler) textAddr() isa.Address {
	return isa.BaseTextAddr.Add(uint32(len(a.text)) * 4)
}

// Assemble runs the driver over every token-line, in order, per spec
// §4.2. On success it returns the owned Result; on the first error the
// pipeline stops (spec §7's fatal-on-first-error propagation policy).
func (a *Assembler) Assemble(lines []token.Line) (*Result, error) {
	for _, line := range lines {
		if err := a.assembleLine(line); err != nil {
			return nil, err
		}
	}

	entry := isa.BaseTextAddr
	if a.haveEntry {
		if sym, ok := a.symbols.symbols[a.entryLabel]; ok {
			entry = sym.Address
		}
	}

	return &Result{Text: a.text, Memory: a.memory, Entry: entry, Symbols: a.symbols}, nil
}

func (a *Assembler) assembleLine(line token.Line) error {
	i := 0
	if len(line) > 0 && line[0].Kind == token.KindLabel && line[0].Decl {
		addr := a.textAddr()
		if a.currentSegment == SegData {
			addr = a.dataAddr
		}
		a.symbols.Define(line[0].Name, addr, a.currentSegment)
		i++
	}

	if i >= len(line) {
		return nil
	}

	tok := line[i]
	switch tok.Kind {
	case token.KindDirective:
		return a.handleDirective(tok, line[i+1:])
	case token.KindOperator:
		expanded, err := a.expand(line[i:])
		if err != nil {
			return err
		}
		a.text = append(a.text, expanded...)
		return nil
	default:
		return newErr(ErrInvalidToken, tok.Pos, tok.String())
	}
}
