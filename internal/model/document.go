package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("model: invalid input")
	ErrNotFound   = errors.New("model: not found")
)

// now is swapped out by tests that need fixed timestamps.
var now = func() time.Time { return time.Now().UTC() }

var newID = uuid.NewString

// Document is the full in-memory state: every task list plus the pointer to
// the currently selected one. ActiveListID is a weak reference; the empty
// string means no selection. All mutations go through the methods below,
// which either complete fully or leave the document untouched. Persistence
// is not triggered here; see the session package.
type Document struct {
	Lists        []TaskList
	ActiveListID string
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Lists))
	for _, list := range d.Lists {
		if err := list.Validate(); err != nil {
			return err
		}
		if seen[list.ID] {
			return errors.New("model: duplicate list id " + list.ID)
		}
		seen[list.ID] = true
	}
	if d.ActiveListID != "" && !seen[d.ActiveListID] {
		return errors.New("model: active list id references no list")
	}
	return nil
}

// CreateList appends a new empty list and returns its id. The new list is
// not made active; the caller decides selection. List names are unique
// case-insensitively, matching the original desktop behavior.
func (d *Document) CreateList(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: list name is empty", ErrValidation)
	}
	if d.findListByName(trimmed) != nil {
		return "", fmt.Errorf("%w: list named %q already exists", ErrValidation, trimmed)
	}
	list := TaskList{
		ID:        newID(),
		Name:      trimmed,
		CreatedAt: now(),
	}
	d.Lists = append(d.Lists, list)
	return list.ID, nil
}

func (d *Document) RenameList(listID, newName string) error {
	list, err := d.list(listID)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return fmt.Errorf("%w: list name is empty", ErrValidation)
	}
	if existing := d.findListByName(trimmed); existing != nil && existing.ID != listID {
		return fmt.Errorf("%w: list named %q already exists", ErrValidation, trimmed)
	}
	list.Name = trimmed
	return nil
}

// DeleteList removes the list and all of its items. If the deleted list was
// active, selection moves to the first remaining list, or clears when none
// remain, so the active pointer never dangles.
func (d *Document) DeleteList(listID string) error {
	idx := -1
	for i := range d.Lists {
		if d.Lists[i].ID == listID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: list %s", ErrNotFound, listID)
	}
	d.Lists = append(d.Lists[:idx], d.Lists[idx+1:]...)
	if d.ActiveListID == listID {
		if len(d.Lists) > 0 {
			d.ActiveListID = d.Lists[0].ID
		} else {
			d.ActiveListID = ""
		}
	}
	return nil
}

func (d *Document) AddItem(listID, text string) (string, error) {
	list, err := d.list(listID)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("%w: item text is empty", ErrValidation)
	}
	item := Item{
		ID:        newID(),
		Text:      trimmed,
		CreatedAt: now(),
	}
	list.Items = append(list.Items, item)
	return item.ID, nil
}

func (d *Document) RenameItem(listID, itemID, newText string) error {
	item, err := d.item(listID, itemID)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return fmt.Errorf("%w: item text is empty", ErrValidation)
	}
	item.Text = trimmed
	return nil
}

// ToggleItem flips completion. CompletedAt is stamped on the incomplete to
// complete transition and cleared on the way back.
func (d *Document) ToggleItem(listID, itemID string) error {
	item, err := d.item(listID, itemID)
	if err != nil {
		return err
	}
	if item.Completed {
		item.Completed = false
		item.CompletedAt = nil
		return nil
	}
	item.Completed = true
	ts := now()
	item.CompletedAt = &ts
	return nil
}

func (d *Document) DeleteItem(listID, itemID string) error {
	list, err := d.list(listID)
	if err != nil {
		return err
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %s", ErrNotFound, itemID)
}

// SetActiveList selects a list. The empty string clears the selection.
func (d *Document) SetActiveList(listID string) error {
	if listID == "" {
		d.ActiveListID = ""
		return nil
	}
	if _, err := d.list(listID); err != nil {
		return err
	}
	d.ActiveListID = listID
	return nil
}

func (d *Document) ActiveList() (*TaskList, bool) {
	if d.ActiveListID == "" {
		return nil, false
	}
	list, err := d.list(d.ActiveListID)
	if err != nil {
		return nil, false
	}
	return list, true
}

func (d *Document) Progress(listID string) (completed, total int, err error) {
	list, err := d.list(listID)
	if err != nil {
		return 0, 0, err
	}
	completed, total = list.Progress()
	return completed, total, nil
}

// Totals reports document-wide item counts across all lists.
func (d *Document) Totals() (completed, total int) {
	for _, list := range d.Lists {
		c, t := list.Progress()
		completed += c
		total += t
	}
	return completed, total
}

func (d *Document) list(listID string) (*TaskList, error) {
	for i := range d.Lists {
		if d.Lists[i].ID == listID {
			return &d.Lists[i], nil
		}
	}
	return nil, fmt.Errorf("%w: list %s", ErrNotFound, listID)
}

func (d *Document) item(listID, itemID string) (*Item, error) {
	list, err := d.list(listID)
	if err != nil {
		return nil, err
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return &list.Items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
}

func (d *Document) findListByName(name string) *TaskList {
	for i := range d.Lists {
		if strings.EqualFold(d.Lists[i].Name, name) {
			return &d.Lists[i]
		}
	}
	return nil
}
