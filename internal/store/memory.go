// internal/store/memory.go
//
// Journal of hint runs.
//
// A Run records what one invocation was asked and what it recommended. The
// journal is write-mostly: the hinter never reads runs back to compute a score,
// it only lists them for the `history` command.
//
// Implementations:
//   - memory (this file): map-backed, lost on exit; Open returns it when no
//     journal path is configured.
//   - sqlite (sqlite.go): durable, one row per run.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for unknown run IDs.
var ErrNotFound = errors.New("store: run not found")

// Run is one journaled hint request and its result.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Constraints  []string  `json:"constraints"` // entries in WORD:RESULT syntax
	Easy         bool      `json:"easy"`
	Strict       bool      `json:"strict"`
	Strategy     string    `json:"strategy"`
	Fingerprint  string    `json:"fingerprint"` // solution-list snapshot the scores refer to
	Solutions    int       `json:"solutions"`   // solutions left after filtering
	Guesses      int       `json:"guesses"`     // guesses left after filtering
	Outcome      string    `json:"outcome"`
	Best         string    `json:"best,omitempty"`
	BestScore    float64   `json:"bestScore,omitempty"`
	BestSolution string    `json:"bestSolution,omitempty"`
}

// Store defines the persistence interface for the run journal.
type Store interface {
	// Save persists a run, replacing any run with the same ID.
	Save(ctx context.Context, r *Run) error

	// Get retrieves a run by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// Recent returns up to limit runs (20 when limit <= 0), newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)

	// Close releases backing resources.
	Close() error
}

// Open returns the SQLite journal at path, or a memory store when path is empty.
func Open(path string) (Store, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex    // guards runs
	runs map[string]*Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*Run)}
}

func (m *memory) Save(ctx context.Context, r *Run) error {
	cp := *r
	cp.Constraints = slices.Clone(r.Constraints)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = &cp
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Run, error) {
	m.mu.RLock()
	out := make([]Run, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, *r)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Run) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if limit <= 0 {
		limit = 20
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
