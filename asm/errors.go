package asm

import (
	"fmt"

	"github.com/lookbusy1344/mipsgo/token"
)

// ErrorKind categorizes a fatal assembly-time failure, mirroring spec §7's
// "Assembly" taxonomy. Grounded on original_source/src/assembler.rs's
// thiserror AssemblerError enum, translated to a Go error type per the
// teacher's parser.Error style.
type ErrorKind int

const (
	ErrInvalidToken ErrorKind = iota
	ErrEntrypointMissing
	ErrInvalidInstruction
	ErrInvalidRegister
	ErrInvalidLabel
	ErrInvalidString
	ErrInvalidImmediateValue
	ErrInvalidByteValue
	ErrUnknownDirective
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidToken:
		return "InvalidToken"
	case ErrEntrypointMissing:
		return "EntrypointMissing"
	case ErrInvalidInstruction:
		return "InvalidInstruction"
	case ErrInvalidRegister:
		return "InvalidRegister"
	case ErrInvalidLabel:
		return "InvalidLabel"
	case ErrInvalidString:
		return "InvalidString"
	case ErrInvalidImmediateValue:
		return "InvalidImmediateValue"
	case ErrInvalidByteValue:
		return "InvalidByteValue"
	case ErrUnknownDirective:
		return "UnknownDirective"
	default:
		return "UnknownAssemblerError"
	}
}

// AssemblerError is a fatal error raised while assembling token-lines.
type AssemblerError struct {
	Kind   ErrorKind
	Pos    token.Position
	Detail string
}

func (e *AssemblerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Detail)
}

func newErr(kind ErrorKind, pos token.Position, detail string) error {
	return &AssemblerError{Kind: kind, Pos: pos, Detail: detail}
}
