package storage

import "time"

// Item is the persisted form of a checklist item. Recurrence weekdays
// are stored as a comma-separated list of weekday indices (Sun=0) and
// the start day as a YYYY-MM-DD string.
type Item struct {
	ID             string
	Title          string
	Notes          string
	RecurrenceKind string
	Weekdays       string
	IntervalDays   int
	StartDay       string
	CreatedAt      time.Time
}

// Completion records that an item's occurrence on Day (YYYY-MM-DD) was
// marked done.
type Completion struct {
	ItemID string
	Day    string
}

type ItemListFilter struct {
	RecurrenceKind string
	Limit          int
	Offset         int
}

type CompletionListFilter struct {
	ItemID string
	Day    string
	Limit  int
	Offset int
}
