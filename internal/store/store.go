package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/terraincognita07/breathe/internal/models"
)

// Store persists the entry log as a single pretty-printed JSON array.
// Every Load reads the whole file and every Save rewrites it; there is no
// locking, so concurrent writers can lose appends.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns all entries in append order, creating an empty log file
// if none exists yet.
func (s *Store) Load() ([]models.Entry, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read entry log: %w", err)
	}

	entries := make([]models.Entry, 0)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode entry log: %w", err)
	}
	return entries, nil
}

// Save overwrites the log with the given entries in the given order.
func (s *Store) Save(entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entry log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, encoded, 0o644); err != nil {
		return fmt.Errorf("write entry log: %w", err)
	}
	return nil
}

func (s *Store) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat entry log: %w", err)
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create entry log: %w", err)
	}
	return nil
}
