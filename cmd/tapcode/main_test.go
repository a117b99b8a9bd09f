package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/danmuck/tapcode/internal/testutil/testlog"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	testlog.Start(t)

	// Flag values live in package state; reset them between runs.
	configPath, alphabetFlag, markerFlag, gridFileFlag = "", "", "", ""
	for _, name := range []string{"config", "alphabet", "marker", "grid-file"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			f.Changed = false
		}
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tapcode.toml")
	if err := os.WriteFile(cfgPath, []byte("grid_file = \""+filepath.ToSlash(filepath.Join(dir, "grid.txt"))+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := execute(t, "", "encode", "sos")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.TrimSpace(out) != ".... ... ... .... .... ..." {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDecodeCommandReadsStdin(t *testing.T) {
	out, err := execute(t, ". . . .. |. ... . ....\n", "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(out) != "ab cd" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEncodeCommandMarkerOverride(t *testing.T) {
	out, err := execute(t, "", "--marker", "*", "encode", "a")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.TrimSpace(out) != "* *" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEncodeCommandRejectsUnknownCharacter(t *testing.T) {
	_, err := execute(t, "", "encode", "jam")
	if !errors.Is(err, tapcode.ErrCharacterNotInGrid) {
		t.Fatalf("expected ErrCharacterNotInGrid, got %v", err)
	}
}

func TestBadMarkerRejected(t *testing.T) {
	if _, err := execute(t, "", "--marker", "|", "encode", "a"); err == nil {
		t.Fatalf("expected marker validation error")
	}
}

func TestGridCommand(t *testing.T) {
	out, err := execute(t, "", "--alphabet", "zyxwvutsrqponmlkihgfedcba", "grid")
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if !strings.Contains(out, "1 | z y x w v") {
		t.Fatalf("unexpected grid output:\n%s", out)
	}
}

func TestInteractiveDefault(t *testing.T) {
	out, err := execute(t, "1\nhello\n7\n")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "Encoded Tapcode: ") || !strings.Contains(out, "Goodbye!") {
		t.Fatalf("unexpected interactive output:\n%s", out)
	}
}

func TestInteractiveAlphabetOverride(t *testing.T) {
	out, err := execute(t, "1\na\n7\n", "--alphabet", "zyxwvutsrqponmlkihgfedcba")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "Encoded Tapcode: ..... .....") {
		t.Fatalf("root flag override not applied:\n%s", out)
	}
}
