package vm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lookbusy1344/mipsgo/isa"
)

// Syscall numbers dispatched on $v0, per spec §4.8. Grounded on
// lookbusy1344's vm/syscall.go constant-table-plus-switch shape.
const (
	syscallPrintInt = 1
	syscallPrintStr = 4
	syscallReadInt  = 5
	syscallExit     = 10
	syscallExit2    = 17
	syscallTimeMs   = 30
)

// Syscall dispatches on R[$v0], per spec §4.8. Supplemented from
// original_source/src/simulator.rs's handle_syscall, which is
// authoritative for syscall 4's BaseDataAddr-relative offset, syscall
// 30's low/high millisecond split, and syscall 5's unsigned-decimal
// parse.
func (s *Simulator) Syscall() error {
	v0 := s.regs.Get(isa.V0)
	switch v0 {
	case syscallPrintInt:
		// $a0 prints as unsigned decimal, matching
		// original_source/src/simulator.rs's handle_syscall case 1 (Rust's
		// "{}" on the u32 RegFile.get return, no signed reinterpretation).
		fmt.Fprintf(s.out, "%d", s.regs.Get(isa.A0))
		return nil

	case syscallPrintStr:
		addr := isa.Address(s.regs.Get(isa.A0))
		if addr < isa.BaseDataAddr {
			return newRuntimeErr(ErrInvalidAddress, addr.String())
		}
		raw := s.mem.ReadCString(addr)
		str := raw
		if !utf8.Valid(raw) {
			str = []byte(strings.ToValidUTF8(string(raw), string(utf8.RuneError)))
		}
		s.out.Write(str)
		s.out.Flush()
		return nil

	case syscallReadInt:
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			return newRuntimeErr(ErrIO, err.Error())
		}
		line = strings.TrimRight(line, " \t\r\n")
		v, parseErr := strconv.ParseUint(line, 10, 32)
		if parseErr != nil {
			return newRuntimeErr(ErrWrongInputType, line)
		}
		s.regs.Set(isa.V0, uint32(v))
		return nil

	case syscallExit:
		return &Exit{Code: 0}

	case syscallExit2:
		return &Exit{Code: s.regs.Get(isa.A0)}

	case syscallTimeMs:
		now := s.clock()
		millis := uint64(now.UnixMilli())
		s.regs.Set(isa.A0, uint32(millis))
		s.regs.Set(isa.A1, uint32(millis>>32))
		return nil

	default:
		return newRuntimeErr(ErrUnknownSyscall, fmt.Sprintf("%d", v0))
	}
}
