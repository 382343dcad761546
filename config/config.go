// Package config loads the optional .mipsgo.toml file that overrides the
// two ambient knobs this toolchain exposes beyond spec.md's hard-coded
// defaults: a runaway-step guard and the number format used by the
// --instructions/--memory diagnostic dumps. Grounded on lookbusy1344's
// config/config.go DefaultConfig()+struct-of-sections shape, narrowed
// sharply: spec.md §3 is explicit that entry-point-missing behavior
// defaults to BASE_TEXT_ADDR, so there is no config knob that could
// contradict it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the two overridable ambient knobs.
type Config struct {
	Execution struct {
		// MaxSteps bounds the fetch/execute loop (spec.md's core has no
		// runaway guard; this is a natural ambient safety net modeled on
		// the teacher's DefaultMaxCycles). 0 means unbounded.
		MaxSteps uint64 `toml:"max_steps"`
	} `toml:"execution"`

	Display struct {
		// NumberFormat controls how addresses/words print in the
		// --instructions/--memory dumps: "hex", "dec", or "both".
		NumberFormat string `toml:"number_format"`
	} `toml:"display"`
}

// DefaultConfig returns the configuration used when no .mipsgo.toml is
// present, matching spec.md's behavior exactly.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.MaxSteps = 1_000_000
	cfg.Display.NumberFormat = "hex"
	return cfg
}

// LoadFrom loads configuration from path, falling back to DefaultConfig
// when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns the conventional per-source-file config name,
// ".mipsgo.toml" next to the assembly source (spec.md has no notion of a
// project directory, so this mirrors the teacher's GetConfigPath in
// spirit but stays local to the source rather than a user config dir).
func DefaultPath(sourcePath string) string {
	return filepath.Join(filepath.Dir(sourcePath), ".mipsgo.toml")
}
