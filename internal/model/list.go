package model

import (
	"errors"
	"strings"
	"time"
)

type TaskList struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Items     []Item
}

func (l TaskList) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("model: list id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("model: list name is required")
	}
	if l.CreatedAt.IsZero() {
		return errors.New("model: list created_at is required")
	}
	seen := make(map[string]bool, len(l.Items))
	for _, item := range l.Items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ID] {
			return errors.New("model: duplicate item id " + item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// Progress reports how many items are checked off. An empty list counts
// as zero completion.
func (l TaskList) Progress() (completed, total int) {
	for _, item := range l.Items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(l.Items)
}

// CompletionRatio returns completion in [0, 1], 0 for an empty list.
func (l TaskList) CompletionRatio() float64 {
	completed, total := l.Progress()
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}
