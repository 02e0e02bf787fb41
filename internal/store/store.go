package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ndot/ndot-clock/internal/model"
)

// File constants
const (
	DeckFileName    = "deck.json"
	TempFileSuffix  = ".tmp"
	FilePermissions = 0644
	FormatVersion   = 1
)

// Snapshot is the persisted unit: the deck plus the global display
// settings, under a format version tag
type Snapshot struct {
	Version int                   `json:"version"`
	Deck    *model.Deck           `json:"deck"`
	Display model.DisplaySettings `json:"display"`
}

// DefaultSnapshot returns the first-run state: one clock slide and default
// appearance
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Version: FormatVersion,
		Deck:    model.DefaultDeck(),
		Display: model.DefaultDisplaySettings(),
	}
}

// Store reads and writes the deck file
type Store struct {
	path string
}

// New creates a store writing to deck.json inside the given directory
func New(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, DeckFileName),
	}
}

// Path returns the deck file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the deck file. A missing or unreadable or corrupt file yields
// the default snapshot; load never fails. Loaded decks are normalized so
// position and focus invariants hold regardless of what was on disk.
func (s *Store) Load() *Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read deck file %s: %v", s.path, err)
		}
		return DefaultSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Deck file %s is corrupt, falling back to defaults: %v", s.path, err)
		return DefaultSnapshot()
	}
	if snap.Deck == nil || snap.Deck.Len() == 0 {
		log.Printf("Deck file %s holds no slides, falling back to defaults", s.path)
		return DefaultSnapshot()
	}

	snap.Deck.Normalize()
	snap.Display.Normalize()
	if snap.Version == 0 {
		snap.Version = FormatVersion
	}
	return &snap
}

// Save writes the snapshot atomically: marshal, write a temp file next to
// the target, then rename over it so a crash never leaves a truncated deck
// file behind.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}

	tmpPath := s.path + TempFileSuffix
	if err := os.WriteFile(tmpPath, data, FilePermissions); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
