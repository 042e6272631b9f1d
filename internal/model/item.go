package model

import (
	"errors"
	"strings"
	"time"

	"github.com/ashwink/habitd/internal/calendar"
)

// ChecklistItem is a tracked habit or task. Scheduling state is never
// stored on the item; whether it is due on a day is derived from
// Recurrence, and completion lives in the ledger keyed by (id, day).
type ChecklistItem struct {
	ID         string
	Title      string
	Notes      string
	Recurrence Recurrence
	CreatedAt  time.Time
}

func (i ChecklistItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(i.Title) == "" {
		return errors.New("model: item title is required")
	}
	if i.CreatedAt.IsZero() {
		return errors.New("model: item created_at is required")
	}
	return i.Recurrence.Validate()
}

// IsDueOn forwards to the item's recurrence rule.
func (i ChecklistItem) IsDueOn(day calendar.Day) bool {
	return i.Recurrence.IsDueOn(day)
}
