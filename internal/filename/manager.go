package filename

import (
	"fmt"
	"strings"
	"sync"
)

// Options configures a Manager.
type Options struct {
	// MaxBaseLen is the length budget for the name portion before the
	// extension. Zero selects DefaultMaxBaseLen.
	MaxBaseLen int
	// UseHyphens joins tokens with hyphens instead of spaces. The zero
	// value keeps the default space-joined style.
	UseHyphens bool
}

// Manager issues unique filenames for one export session. It owns the set
// of already-issued names (case-folded) and a mapping from original title
// to final filename, both held in memory for the manager's lifetime.
//
// A manager is intended to be owned by a single sequential export run.
// Methods are mutex-guarded so accidental concurrent use cannot corrupt
// the issued set, but interleaved callers share one name space.
type Manager struct {
	mu         sync.Mutex
	maxBaseLen int
	useSpaces  bool
	issued     map[string]struct{}
	mappings   map[string]string
}

// NewManager constructs a manager. A negative MaxBaseLen is rejected: the
// shortening cascade's termination argument assumes a non-negative budget.
func NewManager(opts Options) (*Manager, error) {
	if opts.MaxBaseLen < 0 {
		return nil, fmt.Errorf("filename: max base length must not be negative, got %d", opts.MaxBaseLen)
	}
	maxBaseLen := opts.MaxBaseLen
	if maxBaseLen == 0 {
		maxBaseLen = DefaultMaxBaseLen
	}
	return &Manager{
		maxBaseLen: maxBaseLen,
		useSpaces:  !opts.UseHyphens,
		issued:     make(map[string]struct{}),
		mappings:   make(map[string]string),
	}, nil
}

// SanitizedName returns a safe, unique filename for title+extension and
// records it. The extension must begin with a dot or be empty. Requesting
// the same title twice yields two distinct filenames; the mapping keeps
// the most recent one (last write wins).
func (m *Manager) SanitizedName(title, extension string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := resolveUnique(title, extension, m.issued, m.maxBaseLen, m.useSpaces)
	m.issued[strings.ToLower(name)] = struct{}{}
	m.mappings[title+extension] = name
	return name
}

// Mapping returns the filename recorded for originalFilename (the title
// with its extension appended), or originalFilename unchanged when no
// entry exists. Absence is an expected case, not an error: link targets
// outside the export simply pass through.
func (m *Manager) Mapping(originalFilename string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name, ok := m.mappings[originalFilename]; ok {
		return name
	}
	return originalFilename
}

// Issued reports how many unique filenames the manager has handed out.
func (m *Manager) Issued() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.issued)
}
