// CLI tests exercising the cobra command end to end.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/codeclub/cccards/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// -----------------------------------------------------------------------------
// Help and Version
// -----------------------------------------------------------------------------

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("--help failed: %v", err)
	}
	for _, want := range []string{"FRONT_CSV", "--output", "--wildcards", "--delimiter"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version %q in output, got %q", version, out)
	}
}

func TestNoArgs(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Fatal("expected error when FRONT_CSV is missing")
	}
}

// -----------------------------------------------------------------------------
// Generation Runs
// -----------------------------------------------------------------------------

func TestRun_SingleSided(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "print,2\neval,1\n")
	out := filepath.Join(dir, "cards.pdf")

	if _, err := execute(t, front, "-o", out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output PDF: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("output is not a PDF document")
	}
}

func TestRun_DoubleSided_WithFlags(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "strudel;4\n")
	back := writeFile(t, dir, "back.csv", "hydra;2\n")
	out := filepath.Join(dir, "deck.pdf")

	args := []string{front, back, "--output", out, "--wildcards", "2", "--delimiter", ";"}
	if _, err := execute(t, args...); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output PDF: %v", err)
	}
}

func TestRun_ConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "go,1\n")
	out := filepath.Join(dir, "from-config.pdf")
	cfgPath := writeFile(t, dir, "cccards.yaml", "output: "+out+"\nwildcards: 0\n")

	if _, err := execute(t, front, "--config", cfgPath); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output at config-file path: %v", err)
	}
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cccards.yaml")

	out, err := execute(t, "--init-config", "--config", cfgPath)
	if err != nil {
		t.Fatalf("--init-config failed: %v", err)
	}
	if !strings.Contains(out, cfgPath) {
		t.Errorf("expected confirmation naming %q, got %q", cfgPath, out)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

// -----------------------------------------------------------------------------
// Failure Modes
// -----------------------------------------------------------------------------

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, filepath.Join(dir, "absent.csv"), "-o", filepath.Join(dir, "cards.pdf"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !cerrors.IsCode(err, cerrors.ErrInputNotFound) {
		t.Errorf("expected INPUT_NOT_FOUND, got %v", err)
	}
}

func TestRun_NegativeWildcards(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "x,1\n")

	_, err := execute(t, front, "-o", filepath.Join(dir, "cards.pdf"), "-w", "-3")
	if err == nil {
		t.Fatal("expected error for negative wildcard count")
	}
	if !cerrors.IsCode(err, cerrors.ErrInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRun_NonNumericWildcards(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "x,1\n")

	if _, err := execute(t, front, "-w", "abc"); err == nil {
		t.Fatal("expected flag parse error for non-numeric wildcard count")
	}
}

func TestRun_BadDelimiter(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "x,1\n")

	_, err := execute(t, front, "-o", filepath.Join(dir, "cards.pdf"), "-d", "ab")
	if err == nil {
		t.Fatal("expected error for multi-character delimiter")
	}
	if !cerrors.IsCode(err, cerrors.ErrInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRun_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "card,abc\n")
	out := filepath.Join(dir, "cards.pdf")

	_, err := execute(t, front, "-o", out)
	if err == nil {
		t.Fatal("expected error for malformed CSV")
	}
	if !cerrors.IsCode(err, cerrors.ErrBadWeight) {
		t.Errorf("expected BAD_WEIGHT, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no output file may be written on a failed run")
	}
}
