package model

import (
	"testing"
	"time"

	"github.com/ashwink/habitd/internal/calendar"
)

func TestItemValidate(t *testing.T) {
	valid := ChecklistItem{
		ID:        "item-1",
		Title:     "Stretch",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Recurrence: Recurrence{
			Kind:  RecurrenceDaily,
			Start: calendar.Date(2024, time.January, 1),
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	missingTitle := valid
	missingTitle.Title = "   "
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("expected title error")
	}

	missingID := valid
	missingID.ID = ""
	if err := missingID.Validate(); err == nil {
		t.Fatalf("expected id error")
	}

	badRule := valid
	badRule.Recurrence.Kind = RecurrenceKind("nope")
	if err := badRule.Validate(); err == nil {
		t.Fatalf("expected recurrence error")
	}
}

func TestItemIsDueOnForwards(t *testing.T) {
	item := ChecklistItem{
		ID:        "item-1",
		Title:     "Run",
		CreatedAt: time.Now(),
		Recurrence: Recurrence{
			Kind:  RecurrenceWeekends,
			Start: calendar.Date(2024, time.January, 1),
		},
	}
	sat := calendar.Date(2024, time.January, 6)
	if !item.IsDueOn(sat) {
		t.Fatalf("weekend item not due on Saturday")
	}
	if item.IsDueOn(sat.AddDays(2)) {
		t.Fatalf("weekend item due on Monday")
	}
}
