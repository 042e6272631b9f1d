// Package schedule derives the Today, Upcoming and Overdue views from
// an item list and a completion ledger. Everything here is a pure
// function over an in-memory snapshot; nothing derived is stored.
package schedule

import (
	"sort"

	"github.com/ashwink/habitd/internal/calendar"
)

// CompletionRecord marks that the occurrence of an item due on Day was
// completed. Records exist only when the user toggled them.
type CompletionRecord struct {
	ItemID string
	Day    calendar.Day
}

// Ledger is the set of completed (item, day) occurrences. It does not
// validate due-ness; toggling an arbitrary day is permitted.
type Ledger struct {
	done map[string]map[string]bool
}

func NewLedger() *Ledger {
	return &Ledger{done: make(map[string]map[string]bool)}
}

func NewLedgerFromRecords(records []CompletionRecord) *Ledger {
	l := NewLedger()
	for _, rec := range records {
		l.set(rec.ItemID, rec.Day, true)
	}
	return l
}

// Completed reports membership of (itemID, day).
func (l *Ledger) Completed(itemID string, day calendar.Day) bool {
	return l.done[itemID][day.Key()]
}

// Toggle flips membership of (itemID, day) and returns the new state.
func (l *Ledger) Toggle(itemID string, day calendar.Day) bool {
	now := !l.Completed(itemID, day)
	l.set(itemID, day, now)
	return now
}

// Forget drops every record for an item (used when the item is
// deleted).
func (l *Ledger) Forget(itemID string) {
	delete(l.done, itemID)
}

// Records returns the ledger contents sorted by item id then day, for
// stable persistence.
func (l *Ledger) Records() []CompletionRecord {
	out := make([]CompletionRecord, 0)
	for itemID, days := range l.done {
		for key, present := range days {
			if !present {
				continue
			}
			day, err := calendar.ParseDay(key)
			if err != nil {
				continue
			}
			out = append(out, CompletionRecord{ItemID: itemID, Day: day})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

func (l *Ledger) set(itemID string, day calendar.Day, v bool) {
	if !v {
		if days, ok := l.done[itemID]; ok {
			delete(days, day.Key())
			if len(days) == 0 {
				delete(l.done, itemID)
			}
		}
		return
	}
	days, ok := l.done[itemID]
	if !ok {
		days = make(map[string]bool)
		l.done[itemID] = days
	}
	days[day.Key()] = true
}
