package schedule

import (
	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/model"
)

// OverdueLookbackDays bounds the backward scan of the Overdue view.
// Occurrences missed longer ago than this age out silently.
const OverdueLookbackDays = 30

// Occurrence pairs an item with a day it is due.
type Occurrence struct {
	Item model.ChecklistItem
	Day  calendar.Day
}

// TodayView returns the items due today, in item list order.
func TodayView(items []model.ChecklistItem, today calendar.Day) []model.ChecklistItem {
	out := make([]model.ChecklistItem, 0)
	for _, item := range items {
		if item.IsDueOn(today) {
			out = append(out, item)
		}
	}
	return out
}

// UpcomingView scans forward from tomorrow through Dec 31 of today's
// year and emits each item once, at its next occurrence. Output is
// chronological; within a day, item list order. When today is Dec 31
// the window is empty; the scan never wraps into the next year.
func UpcomingView(items []model.ChecklistItem, today calendar.Day) []Occurrence {
	return scanWindow(items, forwardDays(today.AddDays(1), today.EndOfYear()), func(model.ChecklistItem, calendar.Day) bool {
		return true
	})
}

// OverdueView scans backward from yesterday through the lookback bound,
// newest day first, and emits each item once at its latest miss. An
// item that also recurs today is excluded entirely; Today surfaces it.
func OverdueView(items []model.ChecklistItem, ledger *Ledger, today calendar.Day) []Occurrence {
	return scanWindow(items, backwardDays(today, OverdueLookbackDays), func(item model.ChecklistItem, day calendar.Day) bool {
		if item.IsDueOn(today) {
			return false
		}
		return !ledger.Completed(item.ID, day)
	})
}

// scanWindow is the shared windowed scan: walk the day sequence, find
// due items per day, and emit each item id at most once (first
// occurrence in scan order wins). The traversal direction of days is
// what turns the same primitive into "next occurrence" for Upcoming
// and "latest miss" for Overdue.
func scanWindow(items []model.ChecklistItem, days []calendar.Day, keep func(model.ChecklistItem, calendar.Day) bool) []Occurrence {
	seen := make(map[string]bool, len(items))
	out := make([]Occurrence, 0)
	for _, day := range days {
		for _, item := range items {
			if seen[item.ID] || !item.IsDueOn(day) || !keep(item, day) {
				continue
			}
			// Only emission marks the id: a filtered-out occurrence
			// (e.g. a completed day) must not hide an earlier miss.
			seen[item.ID] = true
			out = append(out, Occurrence{Item: item, Day: day})
		}
	}
	return out
}

func forwardDays(from, until calendar.Day) []calendar.Day {
	out := make([]calendar.Day, 0)
	for cursor := from; !cursor.After(until); cursor = cursor.AddDays(1) {
		out = append(out, cursor)
	}
	return out
}

func backwardDays(today calendar.Day, lookback int) []calendar.Day {
	out := make([]calendar.Day, 0, lookback)
	for i := 1; i <= lookback; i++ {
		out = append(out, today.AddDays(-i))
	}
	return out
}
