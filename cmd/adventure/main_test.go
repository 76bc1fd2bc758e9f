package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// Flags are package globals; reset the ones tests touch
	flagConfig, flagLevelsDir, flagDifficulty, flagLogFile = "", "", "", ""
	flagVerbose, flagInit, flagForce, flagShowHash = false, false, false, false
	flagSimLevel, flagTicks, flagScript = "meadow", 0, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	for _, want := range []string{"meadow", "causeway", "10x10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--level", "causeway", "--script", "W200", "--ticks", "30", "--hash")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	for _, want := range []string{"30 ticks", "hash:", "causeway", "Result"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	first := out
	again, err := execute(t, "sim", "--level", "causeway", "--script", "W200", "--ticks", "30", "--hash")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	if hashLine(first) != hashLine(again) {
		t.Errorf("replays diverged: %q vs %q", hashLine(first), hashLine(again))
	}
}

func hashLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "hash:") {
			return line
		}
	}
	return ""
}

func TestSimCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad script", []string{"sim", "--script", "Z3"}},
		{"unknown level", []string{"sim", "--level", "nowhere"}},
		{"bad difficulty", []string{"sim", "--difficulty", "brutal"}},
		{"negative ticks", []string{"sim", "--ticks", "-1"}},
		{"missing config", []string{"sim", "--config", "missing.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "# source: embedded") || !strings.Contains(out, "lives: 1") {
		t.Errorf("unexpected config output:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "cfg", "adventure.yaml")
	out, err = execute(t, "config", "--init", "--config", path)
	if err != nil {
		t.Fatalf("config --init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("init output = %q", out)
	}
	if _, err := execute(t, "config", "--init", "--config", path); err == nil {
		t.Error("second --init without --force should fail")
	}
}
