package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"notename/internal/config"
	"notename/internal/filename"
	"notename/internal/linkfix"
)

// noteExtensions lists source files treated as notes.
var noteExtensions = map[string]struct{}{
	".html": {},
	".htm":  {},
	".md":   {},
	".txt":  {},
}

// lockFileName is created inside the output directory for the run lock.
const lockFileName = ".notename.lock"

// ErrLocked is returned when another run holds the output directory.
var ErrLocked = errors.New("output directory is locked by another export run")

// Entry records the outcome for one note.
type Entry struct {
	Source   string
	Title    string
	Filename string
}

// Result summarizes an export run.
type Result struct {
	RunID   string
	Entries []Entry
}

// Runner performs export runs for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner constructs a runner. The configuration must already be
// validated; the logger must not be nil.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("export runner requires config and logger")
	}
	if cfg.Paths.SourceDir == "" {
		return nil, errors.New("paths.source_dir must be set")
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Plan computes the title-to-filename mapping without touching the
// output directory.
func (r *Runner) Plan(ctx context.Context) (*Result, error) {
	return r.run(ctx, true)
}

// Export performs the full run: names every note, copies it to the
// output directory with links rewritten, and returns the mapping.
func (r *Runner) Export(ctx context.Context) (*Result, error) {
	if r.cfg.Paths.OutputDir == "" {
		return nil, errors.New("paths.output_dir must be set")
	}
	return r.run(ctx, false)
}

func (r *Runner) run(ctx context.Context, dryRun bool) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	if !dryRun {
		if err := os.MkdirAll(r.cfg.Paths.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure output directory: %w", err)
		}
		lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, lockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !locked {
			return nil, ErrLocked
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	sources, err := r.collectNotes()
	if err != nil {
		return nil, err
	}
	logger.Info("export run started", "source", r.cfg.Paths.SourceDir, "notes", len(sources), "dry_run", dryRun)

	manager, err := filename.NewManager(filename.Options{
		MaxBaseLen: r.cfg.Naming.MaxBaseLen,
		UseHyphens: !r.cfg.Naming.UseSpaces,
	})
	if err != nil {
		return nil, err
	}

	// First pass issues every name so link rewriting can see the full
	// rename table.
	result := &Result{RunID: runID}
	renames := make(map[string]string, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		title := DeriveTitle(src)
		name := manager.SanitizedName(title, r.cfg.Naming.Extension)
		result.Entries = append(result.Entries, Entry{Source: src, Title: title, Filename: name})
		renames[filepath.Base(src)] = name
	}

	if dryRun {
		return result, nil
	}

	bundler := &linkfix.Bundler{BaseDir: r.cfg.Paths.SourceDir, Logger: logger}
	resolve := func(target string) string {
		if mapped, ok := renames[target]; ok {
			return mapped
		}
		return target
	}

	for _, entry := range result.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.writeNote(entry, bundler, resolve); err != nil {
			return nil, fmt.Errorf("write %s: %w", entry.Filename, err)
		}
	}

	logger.Info("export run finished", "notes", len(result.Entries))
	return result, nil
}

// collectNotes walks the source tree in lexical order and returns note
// file paths.
func (r *Runner) collectNotes() ([]string, error) {
	var sources []string
	err := filepath.WalkDir(r.cfg.Paths.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := noteExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source directory: %w", err)
	}
	return sources, nil
}

func (r *Runner) writeNote(entry Entry, bundler *linkfix.Bundler, resolve func(string) string) error {
	data, err := os.ReadFile(entry.Source)
	if err != nil {
		return err
	}

	if isHTML(entry.Source) {
		content := string(data)
		if r.cfg.Links.Rewrite {
			content = linkfix.RewriteLinks(content, entry.Filename, resolve)
		}
		if r.cfg.Links.BundleResources {
			content = bundler.Rewrite(content)
		}
		data = []byte(content)
	}

	return os.WriteFile(filepath.Join(r.cfg.Paths.OutputDir, entry.Filename), data, 0o644)
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
