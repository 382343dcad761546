package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Execution.MaxSteps != 1_000_000 {
		t.Errorf("MaxSteps = %d, want 1000000", cfg.Execution.MaxSteps)
	}
	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("NumberFormat = %q, want hex", cfg.Display.NumberFormat)
	}
}

func TestLoadFromNonExistent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "nonexistent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom should not error on a missing file: %v", err)
	}
	if cfg.Execution.MaxSteps != 1_000_000 {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadFromOverridesKnobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mipsgo.toml")
	contents := "[execution]\nmax_steps = 42\n\n[display]\nnumber_format = \"dec\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Execution.MaxSteps != 42 {
		t.Errorf("MaxSteps = %d, want 42", cfg.Execution.MaxSteps)
	}
	if cfg.Display.NumberFormat != "dec" {
		t.Errorf("NumberFormat = %q, want dec", cfg.Display.NumberFormat)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[execution]\nmax_steps = \"nope\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error loading invalid TOML")
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/tmp/prog/hello.asm")
	want := filepath.Join("/tmp/prog", ".mipsgo.toml")
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
