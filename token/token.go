// Package token defines the lexical tokens produced from MIPS-I assembly
// source and the scanner that produces them.
package token

import "fmt"

// Position locates a token in its source file, used only for diagnostics
// (the --tokens dump and error messages); it is never part of token
// equality in assembler logic.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Directive enumerates the directive keywords recognized by the lexer.
type Directive int

const (
	Data Directive = iota
	Text
	Global
	Ascii
	Asciiz
	Byte
	Word
)

var directiveNames = map[string]Directive{
	".data":   Data,
	".text":   Text,
	".globl":  Global,
	".ascii":  Ascii,
	".asciiz": Asciiz,
	".byte":   Byte,
	".word":   Word,
}

func (d Directive) String() string {
	for name, kind := range directiveNames {
		if kind == d {
			return name
		}
	}
	return "UNKNOWN_DIRECTIVE"
}

// Kind enumerates the tagged variants a Token can hold.
type Kind int

const (
	KindDirective Kind = iota
	KindRegister
	KindLabel
	KindNumber
	KindOperator
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindDirective:
		return "DIRECTIVE"
	case KindRegister:
		return "REGISTER"
	case KindLabel:
		return "LABEL"
	case KindNumber:
		return "NUMBER"
	case KindOperator:
		return "OPERATOR"
	case KindText:
		return "TEXT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is the tagged-variant lexical unit described in spec §3.
type Token struct {
	Kind Kind
	Pos  Position

	Directive Directive // valid when Kind == KindDirective
	Name      string    // Register/Label name, or Operator mnemonic
	Decl      bool      // valid when Kind == KindLabel: true iff declaration site
	Number    int32     // valid when Kind == KindNumber
	Text      string    // valid when Kind == KindText, escapes already decoded
}

func (t Token) String() string {
	switch t.Kind {
	case KindDirective:
		return t.Directive.String()
	case KindRegister:
		return fmt.Sprintf("Register(%s)", t.Name)
	case KindLabel:
		return fmt.Sprintf("Label(%s, decl=%v)", t.Name, t.Decl)
	case KindNumber:
		return fmt.Sprintf("Number(%d)", t.Number)
	case KindOperator:
		return fmt.Sprintf("Operator(%s)", t.Name)
	case KindText:
		return fmt.Sprintf("Text(%q)", t.Text)
	default:
		return "Token(?)"
	}
}

// Line is an ordered sequence of tokens lexed from a single source line.
type Line []Token
