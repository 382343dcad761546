// Command mipsgo lexes, assembles, and simulates a subset of MIPS-I
// assembly (spec.md §1). This is the external CLI driver: spec.md
// explicitly keeps argument parsing, help/version printing, and
// diagnostic dumping out of the core four packages (token/asm/isa/vm),
// so it lives here, built on urfave/cli/v2 in the style of the pack's
// chriskillpack-bbcdisasm CLI tool.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/lookbusy1344/mipsgo/asm"
	"github.com/lookbusy1344/mipsgo/config"
	"github.com/lookbusy1344/mipsgo/isa"
	"github.com/lookbusy1344/mipsgo/token"
	"github.com/lookbusy1344/mipsgo/vm"
)

var (
	// Version is overridable at build time with
	// go build -ldflags "-X main.Version=v1.2.3", in the teacher's style.
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("%s version %s (%s)\n", c.App.Name, c.App.Version, Commit)
	}

	app := &cli.App{
		Name:      "mipsgo",
		Usage:     "lex, assemble, and simulate a subset of MIPS-I assembly",
		ArgsUsage: "<file>",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "args", Aliases: []string{"a"}, Usage: "dump parsed CLI arguments"},
			&cli.BoolFlag{Name: "tokens", Aliases: []string{"t"}, Usage: "dump the lexer's token-lines"},
			&cli.BoolFlag{Name: "instructions", Aliases: []string{"i"}, Usage: "dump the ordered primitive instruction list"},
			&cli.BoolFlag{Name: "memory", Aliases: []string{"m"}, Usage: "dump the assembled data-segment memory map"},
			&cli.BoolFlag{Name: "symbols", Usage: "dump the resolved symbol table"},
			&cli.StringFlag{Name: "config", Usage: "path to a .mipsgo.toml config file (default: next to <file>)"},
		},
		Action: run,
	}

	app.Run(os.Args)
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("a source file argument is required", 1)
	}
	path := c.Args().First()

	if c.Bool("args") {
		dumpArgs(c, path)
	}

	cfgPath := c.String("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath(path)
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config: %v", err), 1)
	}

	lines, err := token.Lex(path)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.Bool("tokens") {
		dumpTokens(lines)
	}

	result, err := asm.New().Assemble(lines)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.Bool("instructions") {
		dumpInstructions(result.Text, cfg.Display.NumberFormat)
	}
	if c.Bool("memory") {
		dumpMemory(result.Memory, cfg.Display.NumberFormat)
	}
	if c.Bool("symbols") {
		dumpSymbols(result.Symbols)
	}

	sim := vm.New(result.Text, result.Memory, result.Entry, os.Stdout, os.Stdin)
	sim.SetMaxSteps(cfg.Execution.MaxSteps)

	code, runErr := sim.Run()
	switch e := runErr.(type) {
	case nil:
		os.Exit(code)
	case vm.NoMoreInstructions:
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(code)
	default:
		return cli.Exit(runErr.Error(), 2)
	}
	return nil
}

func dumpArgs(c *cli.Context, path string) {
	fmt.Printf("file=%s tokens=%v instructions=%v memory=%v symbols=%v\n",
		path, c.Bool("tokens"), c.Bool("instructions"), c.Bool("memory"), c.Bool("symbols"))
}

func dumpTokens(lines []token.Line) {
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		fmt.Printf("%4d:", i+1)
		for _, tok := range line {
			fmt.Printf(" %s", tok)
		}
		fmt.Println()
	}
}

func dumpInstructions(text []isa.Instruction, numberFormat string) {
	for i, ins := range text {
		addr := isa.BaseTextAddr.Add(uint32(i) * 4)
		fmt.Printf("%s  %s  %s\n", addr, formatWord(ins.Encode(), numberFormat), ins)
	}
}

func dumpMemory(memory map[isa.Address]byte, numberFormat string) {
	addrs := make([]isa.Address, 0, len(memory))
	for a := range memory {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for _, a := range addrs {
		fmt.Printf("%s: %s\n", a, formatWord(uint32(memory[a]), numberFormat))
	}
}

// formatWord renders a word per the config.Config Display.NumberFormat
// knob ("hex", "dec", or "both"); unrecognized values fall back to hex,
// matching DefaultConfig's default.
func formatWord(w uint32, numberFormat string) string {
	switch numberFormat {
	case "dec":
		return fmt.Sprintf("%d", w)
	case "both":
		return fmt.Sprintf("%08X (%d)", w, w)
	default:
		return fmt.Sprintf("%08X", w)
	}
}

func dumpSymbols(symbols *asm.SymbolTable) {
	all := symbols.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sym := all[name]
		fmt.Printf("%-20s %s  %s  refs=%d\n", name, sym.Address, sym.Segment, len(sym.References))
	}
}
