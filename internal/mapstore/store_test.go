package mapstore

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRecordAndReadRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "manifest.db"))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	mappings := []Mapping{
		{RunID: "run-1", Original: "A Note.md", Filename: "A Note.md"},
		{RunID: "run-1", Original: "A Note.md", Filename: "A Note-v2.md"},
		{RunID: "run-2", Original: "Other.md", Filename: "Other.md"},
	}
	if err := store.RecordRun(context.Background(), mappings); err != nil {
		t.Fatalf("RecordRun() = %v", err)
	}

	got, err := store.RunMappings(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("RunMappings() = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Filename != "A Note-v2.md" {
		t.Errorf("second row filename = %q, want %q", got[1].Filename, "A Note-v2.md")
	}
}

func TestRecordRunEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "manifest.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.RecordRun(context.Background(), nil); err != nil {
		t.Errorf("RecordRun(nil) = %v, want nil", err)
	}
}
