package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jolin0223/vibefolio/pkg/vibefolio/models"
	"github.com/natefinch/atomic"
)

// ErrCorrupt is returned when the catalog file exists but cannot be parsed.
// A missing file is not an error: it loads as an empty catalog.
var ErrCorrupt = errors.New("catalog file is corrupt")

// Store owns the on-disk catalog: a single pretty-printed JSON array of
// projects. All mutations go through a whole-file load-mutate-save cycle
// serialized behind one mutex, so concurrent in-process writers cannot
// lose updates. Writes are atomic (temp file + rename).
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the JSON file at path.
// The file does not need to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns every project in storage order.
func (s *Store) Load() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the whole catalog.
func (s *Store) Save(projects []models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(projects)
}

// Mutate runs fn against the current catalog and persists the slice it
// returns. If fn returns an error nothing is written. This is the only
// entry point the catalog service uses for writes.
func (s *Store) Mutate(fn func(projects []models.Project) ([]models.Project, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return err
	}

	updated, err := fn(projects)
	if err != nil {
		return err
	}

	return s.save(updated)
}

func (s *Store) load() ([]models.Project, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Project{}, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return projects, nil
}

func (s *Store) save(projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	return nil
}
