package vm

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/lookbusy1344/mipsgo/isa"
)

// Simulator is the register file + addressable byte memory + program
// counter + fetch/execute loop + syscall handler described in spec §4.5.
// Grounded on original_source/src/simulator.rs's Simulator struct
// (authoritative fetch-by-exact-pc-key loop shape) and lookbusy1344's
// vm/executor.go OutputWriter io.Writer indirection, generalized from a
// debug hook into the simulator's sole output sink so tests can capture
// it.
type Simulator struct {
	regs RegisterFile
	mem  *Memory
	text map[isa.Address]isa.Instruction
	pc   isa.Address

	out   *bufio.Writer
	in    *bufio.Reader
	clock func() time.Time

	maxSteps uint64 // 0 means unbounded
	steps    uint64
}

// New constructs a Simulator from an Assembler Result: the ordered text
// image keyed by address, the assembled memory, and the resolved entry
// point. pc is set to entry (spec §4.5's construction contract).
func New(text []isa.Instruction, memory map[isa.Address]byte, entry isa.Address, stdout io.Writer, stdin io.Reader) *Simulator {
	textByAddr := make(map[isa.Address]isa.Instruction, len(text))
	for i, ins := range text {
		textByAddr[isa.BaseTextAddr.Add(uint32(i)*4)] = ins
	}
	return &Simulator{
		mem:   NewMemory(memory),
		text:  textByAddr,
		pc:    entry,
		out:   bufio.NewWriter(stdout),
		in:    bufio.NewReader(stdin),
		clock: time.Now,
	}
}

// Get implements isa.Simulator.
func (s *Simulator) Get(r isa.Register) uint32 { return s.regs.Get(r) }

// Set implements isa.Simulator.
func (s *Simulator) Set(r isa.Register, v uint32) { s.regs.Set(r, v) }

// Step implements the fetch/execute/advance contract of spec §4.5:
// 1. look up pc in the text image, erroring NoMoreInstructions on a miss;
// 2. execute the instruction (any syscall-originated error propagates);
// 3. advance pc by 4.
func (s *Simulator) Step() error {
	if s.maxSteps != 0 && s.steps >= s.maxSteps {
		return newRuntimeErr(ErrStepLimitExceeded, fmt.Sprintf("%d", s.maxSteps))
	}
	ins, ok := s.text[s.pc]
	if !ok {
		return NoMoreInstructions{}
	}
	if err := ins.Execute(s); err != nil {
		return err
	}
	s.steps++
	s.pc = s.pc.Add(4)
	return nil
}

// Run loops Step until a terminal or fatal error is returned, flushing
// stdout unconditionally at the end (spec §5's flush-on-newline-or-exit
// allowance). It returns the process exit code and the terminating
// condition: a nil error for a normal Exit(k), a NoMoreInstructions value
// for the dropped-off-bottom case (exit code 0, but the driver still
// wants to print the notice), or any other error for a fatal runtime
// failure (spec §4.5's driver contract).
func (s *Simulator) Run() (int, error) {
	defer s.out.Flush()
	for {
		err := s.Step()
		if err == nil {
			continue
		}
		switch e := err.(type) {
		case *Exit:
			return int(e.Code), nil
		case NoMoreInstructions:
			return 0, e
		default:
			return 2, err
		}
	}
}

// PC returns the current program counter, for the --memory/--instructions
// diagnostic dumps.
func (s *Simulator) PC() isa.Address { return s.pc }

// SetClock overrides the wall-clock source syscall 30 reads from; tests
// use this to make time_ms deterministic.
func (s *Simulator) SetClock(clock func() time.Time) { s.clock = clock }

// SetMaxSteps bounds the fetch/execute loop, a runaway guard not in
// spec.md's scope but a natural ambient safety net (config.Config's
// Execution.MaxSteps knob). 0 (the zero value) means unbounded.
func (s *Simulator) SetMaxSteps(n uint64) { s.maxSteps = n }

// Memory exposes the underlying store for the --memory diagnostic dump.
func (s *Simulator) Memory() *Memory { return s.mem }
