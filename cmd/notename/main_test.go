package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args against a missing config
// path, so built-in defaults apply regardless of the host environment.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	missingConfig := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", missingConfig}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestSanitizeCommandArgs(t *testing.T) {
	out, err := runCLI(t, "", "sanitize", "Meeting Notes", "Meeting Notes")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2 (%q)", len(lines), out)
	}
	if lines[0] != "Meeting Notes.md" {
		t.Errorf("first = %q, want %q", lines[0], "Meeting Notes.md")
	}
	if lines[1] != "Meeting Notes-v2.md" {
		t.Errorf("second = %q, want %q", lines[1], "Meeting Notes-v2.md")
	}
}

func TestSanitizeCommandStdin(t *testing.T) {
	out, err := runCLI(t, "a/b:c*d\n", "sanitize")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	got := strings.TrimSpace(out)
	if got != "a b c d.md" {
		t.Errorf("output = %q, want %q", got, "a b c d.md")
	}
}

func TestSanitizeCommandHyphens(t *testing.T) {
	out, err := runCLI(t, "", "sanitize", "--hyphens", "--ext", ".txt", "Meeting Notes")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got := strings.TrimSpace(out); got != "Meeting-Notes.txt" {
		t.Errorf("output = %q, want %q", got, "Meeting-Notes.txt")
	}
}

func TestPlanCommandTSV(t *testing.T) {
	source := t.TempDir()
	if err := os.WriteFile(filepath.Join(source, "meeting_notes.html"), []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "", "plan", "--source", source)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "Meeting Notes.md") {
		t.Errorf("plan output %q missing generated filename", out)
	}
}

func TestPlanCommandJSON(t *testing.T) {
	source := t.TempDir()
	if err := os.WriteFile(filepath.Join(source, "note.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "", "plan", "--source", source, "--json")
	if err != nil {
		t.Fatalf("plan --json: %v", err)
	}
	if !strings.Contains(out, `"filename": "Note.md"`) {
		t.Errorf("json output %q missing filename field", out)
	}
}

func TestExportCommand(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(source, "trip-plans.md"), []byte("# trip"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "", "export", "--source", source, "--dest", dest)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 1 notes") {
		t.Errorf("output = %q, want export summary", out)
	}
	if _, err := os.Stat(filepath.Join(dest, "Trip Plans.md")); err != nil {
		t.Errorf("renamed note missing: %v", err)
	}
}

func TestConfigPathCommand(t *testing.T) {
	out, err := runCLI(t, "", "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(out, "notename") {
		t.Errorf("output = %q, want default config location", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("output = %q, want target path", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("sample config not written: %v", err)
	}
}
