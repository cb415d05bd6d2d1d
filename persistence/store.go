// Package persistence keeps the best score across sessions
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Store loads and saves the best score. Load of a store that was never saved returns 0
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// bestDTO is the on-disk record
type bestDTO struct {
	BestScore int       `toml:"best_score"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStore persists the best score as TOML
type FileStore struct {
	path string
}

// NewFileStore creates a store at path; the parent directory is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// FilePath returns the backing file path
func (s *FileStore) FilePath() string { return s.path }

// Exists checks if a record has been written
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the best score. A missing file is 0 with no error; a malformed one is 0 with an error
func (s *FileStore) Load() (int, error) {
	var dto bestDTO

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}

	if _, err := toml.Decode(string(data), &dto); err != nil {
		return 0, fmt.Errorf("parse best score %s: %w", s.path, err)
	}
	if dto.BestScore < 0 {
		return 0, fmt.Errorf("parse best score %s: negative value %d", s.path, dto.BestScore)
	}
	return dto.BestScore, nil
}

// Save writes best through a temp file and rename
func (s *FileStore) Save(best int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}

	var buf bytes.Buffer
	dto := bestDTO{BestScore: best, UpdatedAt: time.Now().UTC().Truncate(time.Second)}
	if err := toml.NewEncoder(&buf).Encode(dto); err != nil {
		return fmt.Errorf("encode best score: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write best score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace best score: %w", err)
	}
	return nil
}

// MemoryStore is a Store for tests and the headless simulator
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saves int
	// Err, when set, is returned by both Load and Save
	Err error
}

func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.best, nil
}

func (m *MemoryStore) Save(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.best = best
	m.saves++
	return nil
}

// Saves counts successful Save calls
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
