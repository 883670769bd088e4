// Package session pairs the in-memory document with its on-disk store.
// Every mutating call runs the pure model operation first and then performs
// the persistence write as an explicit second step, so the model stays
// testable without a filesystem. When the model call fails nothing is
// written. When the write fails the in-memory edit is kept — the user's
// change is not lost — and ErrNotSaved is reported so the caller can warn
// that the change is not durable yet.
package session

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/listd/internal/model"
)

var ErrNotSaved = errors.New("session: change applied but not saved")

// Saver is the slice of the store the session needs.
type Saver interface {
	Save(doc *model.Document) error
}

type Session struct {
	doc   *model.Document
	store Saver
}

func New(doc *model.Document, store Saver) *Session {
	return &Session{doc: doc, store: store}
}

// Document exposes the current state for rendering. Callers must treat it
// as read-only and mutate only through session methods.
func (s *Session) Document() *model.Document {
	return s.doc
}

func (s *Session) CreateList(name string) (string, error) {
	id, err := s.doc.CreateList(name)
	if err != nil {
		return "", err
	}
	return id, s.persist()
}

func (s *Session) RenameList(listID, newName string) error {
	if err := s.doc.RenameList(listID, newName); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) DeleteList(listID string) error {
	if err := s.doc.DeleteList(listID); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) AddItem(listID, text string) (string, error) {
	id, err := s.doc.AddItem(listID, text)
	if err != nil {
		return "", err
	}
	return id, s.persist()
}

func (s *Session) RenameItem(listID, itemID, newText string) error {
	if err := s.doc.RenameItem(listID, itemID, newText); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) ToggleItem(listID, itemID string) error {
	if err := s.doc.ToggleItem(listID, itemID); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) DeleteItem(listID, itemID string) error {
	if err := s.doc.DeleteItem(listID, itemID); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) SetActiveList(listID string) error {
	if err := s.doc.SetActiveList(listID); err != nil {
		return err
	}
	return s.persist()
}

func (s *Session) Progress(listID string) (completed, total int, err error) {
	return s.doc.Progress(listID)
}

func (s *Session) persist() error {
	if err := s.store.Save(s.doc); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}
