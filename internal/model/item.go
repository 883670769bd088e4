package model

import (
	"errors"
	"strings"
	"time"
)

type Item struct {
	ID          string
	Text        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(i.Text) == "" {
		return errors.New("model: item text is required")
	}
	if i.CreatedAt.IsZero() {
		return errors.New("model: item created_at is required")
	}
	if i.Completed && i.CompletedAt == nil {
		return errors.New("model: completed_at is required when item is completed")
	}
	if !i.Completed && i.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when item is not completed")
	}
	return nil
}
