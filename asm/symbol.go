// Package asm implements the symbol table, segment cursors, and the
// two-segment assembler driver that lowers token-lines into data bytes
// and an ordered primitive instruction stream (spec §3, §4.2-§4.4).
package asm

import (
	"github.com/lookbusy1344/mipsgo/isa"
	"github.com/lookbusy1344/mipsgo/token"
)

// Segment identifies which of the two implicit regions a Symbol lives in.
type Segment int

const (
	SegText Segment = iota
	SegData
)

func (s Segment) String() string {
	if s == SegData {
		return "Data"
	}
	return "Text"
}

// Symbol is the address+segment pair a label resolves to (spec §3).
// References is carried purely for the --symbols diagnostic dump
// (SPEC_FULL.md), generalized from lookbusy1344's parser/symbols.go
// Symbol.References; it never affects resolution.
type Symbol struct {
	Address    isa.Address
	Segment    Segment
	References []token.Position
}

// SymbolTable maps label names to their resolved Symbol. One-pass and
// define-only: spec §4.2/§9 explicitly keep this revision without forward
// references, so there is no relocation/undefined-symbol machinery here,
// unlike the teacher's fuller parser/symbols.go.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Define records name -> (addr, seg). Redefinition overwrites, matching
// the one-pass driver's "insert on every label declaration" behavior.
func (st *SymbolTable) Define(name string, addr isa.Address, seg Segment) {
	st.symbols[name] = &Symbol{Address: addr, Segment: seg}
}

// Lookup returns the symbol registered under name, recording this lookup
// as a reference for the --symbols dump.
func (st *SymbolTable) Lookup(name string, at token.Position) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	if ok {
		sym.References = append(sym.References, at)
	}
	return sym, ok
}

// All returns every defined symbol, sorted by name by the caller as
// needed (used only by the --symbols diagnostic dump).
func (st *SymbolTable) All() map[string]*Symbol {
	return st.symbols
}
