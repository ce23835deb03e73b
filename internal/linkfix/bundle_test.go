package linkfix

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBundlerEmbedsLocalImage(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	if err := os.WriteFile(filepath.Join(dir, "pic.png"), payload, 0o644); err != nil {
		t.Fatal(err)
	}

	b := &Bundler{BaseDir: dir}
	got := b.Rewrite(`<p><img src="pic.png" alt="x"></p>`)

	wantData := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
	if !strings.Contains(got, wantData) {
		t.Errorf("Rewrite() = %q, want embedded data URL", got)
	}
	if strings.Contains(got, `src="pic.png"`) {
		t.Errorf("Rewrite() = %q, original src still present", got)
	}
}

func TestBundlerLeavesMissingResource(t *testing.T) {
	b := &Bundler{BaseDir: t.TempDir()}
	in := `<img src="missing.png">`
	if got := b.Rewrite(in); got != in {
		t.Errorf("Rewrite() = %q, want unmodified markup on failure", got)
	}
}

func TestBundlerSkipsRemoteAndDataSources(t *testing.T) {
	b := &Bundler{BaseDir: t.TempDir()}
	inputs := []string{
		`<img src="https://example.com/pic.png">`,
		`<img src="data:image/png;base64,AAAA">`,
	}
	for _, in := range inputs {
		if got := b.Rewrite(in); got != in {
			t.Errorf("Rewrite(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestBundlerSkipsNonImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "doc.bin"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := &Bundler{BaseDir: dir}
	in := `<img src="doc.bin">`
	if got := b.Rewrite(in); got != in {
		t.Errorf("Rewrite() = %q, want unchanged for non-image resource", got)
	}
}
