package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/listd/internal/model"
)

var ErrCorruptData = errors.New("storage: corrupt data file")

// Store maps a Document to a JSON file on disk. The file is owned
// exclusively by the running process; concurrent instances writing the same
// path are not handled.
type Store struct {
	Path string
	// SeedFirstRun pre-creates a starter list when no data file exists
	// yet, mirroring the original desktop app's first-run experience.
	SeedFirstRun bool
}

func NewStore(path string) *Store {
	return &Store{Path: path, SeedFirstRun: true}
}

// Load reads the document from disk. A missing file is not an error: it
// yields a fresh document, seeded per SeedFirstRun. A file that exists but
// cannot be read as a valid document fails with ErrCorruptData so the caller
// can surface the choice between aborting and starting over; user data is
// never discarded silently.
func (s *Store) Load() (*model.Document, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			if s.SeedFirstRun {
				return SeedDocument(), nil
			}
			return model.NewDocument(), nil
		}
		return nil, fmt.Errorf("storage: read data file: %w", err)
	}

	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var rec documentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if rec.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("%w: schema_version %d is newer than supported %d", ErrCorruptData, rec.SchemaVersion, schemaVersion)
	}

	doc := toDocument(rec)
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return doc, nil
}

// Save serializes the full document and atomically replaces the data file:
// the payload goes to a temporary file in the same directory which is then
// renamed over the target, so a crash mid-write never leaves a half-written
// file as the visible state.
func (s *Store) Save(doc *model.Document) error {
	dir := filepath.Dir(s.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create data dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(toRecord(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal document: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("storage: write data file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("storage: replace data file: %w", err)
	}
	return nil
}

// SeedDocument is the first-run document: one starter list with a few
// example tasks, already selected.
func SeedDocument() *model.Document {
	doc := model.NewDocument()
	listID, err := doc.CreateList("Getting Started")
	if err != nil {
		return doc
	}
	starters := []string{
		"Welcome to listd!",
		"Press space to check off a task",
		"Press ? to see every key binding",
	}
	for _, text := range starters {
		_, _ = doc.AddItem(listID, text)
	}
	_ = doc.SetActiveList(listID)
	return doc
}
