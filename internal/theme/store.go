// Package theme persists the light/dark preference between sessions.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Preference is the persisted colour scheme choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Valid reports whether p is one of the two known preferences.
func (p Preference) Valid() bool {
	return p == Light || p == Dark
}

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

// String returns the string representation of the preference.
func (p Preference) String() string {
	return string(p)
}

type storeFile struct {
	Version string     `json:"version"`
	Theme   Preference `json:"theme"`
}

// Store persists the theme preference to a JSON file. Storage failures are
// swallowed: losing the preference must never break a lookup, so every
// write path fails silently and the in-memory value stays authoritative.
type Store struct {
	path    string
	mu      sync.RWMutex
	current Preference
}

// NewStore creates a Store backed by the file at path and loads any
// previously persisted preference. An empty path disables persistence.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return
	}
	if file.Theme.Valid() {
		s.current = file.Theme
	}
}

// Initial returns the persisted preference if one exists, otherwise the
// system hint, otherwise Dark.
func (s *Store) Initial(systemHint Preference) Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.Valid() {
		return s.current
	}
	if systemHint.Valid() {
		return systemHint
	}
	return Dark
}

// Current returns the active preference, Dark when nothing has been applied.
func (s *Store) Current() Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.current.Valid() {
		return Dark
	}
	return s.current
}

// Apply records p as the active preference and persists it.
func (s *Store) Apply(p Preference) {
	if !p.Valid() {
		return
	}
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()

	s.save()
}

// Toggle flips the active preference, applies it and returns the result.
func (s *Store) Toggle() Preference {
	next := s.Current().Opposite()
	s.Apply(next)
	return next
}

// save writes the preference to disk atomically via a temp file rename.
func (s *Store) save() {
	if s.path == "" {
		return
	}

	s.mu.RLock()
	file := storeFile{Version: "1.0", Theme: s.current}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
	}
}

// DefaultPath returns the per-user location of the preference file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "atlas", "theme.json"), nil
}
