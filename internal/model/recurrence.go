package model

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ashwink/habitd/internal/calendar"
)

type RecurrenceKind string

const (
	RecurrenceOnce         RecurrenceKind = "once"
	RecurrenceDaily        RecurrenceKind = "daily"
	RecurrenceWeekdays     RecurrenceKind = "weekdays"
	RecurrenceWeekends     RecurrenceKind = "weekends"
	RecurrenceSpecificDays RecurrenceKind = "specific_days"
	RecurrenceEveryNDays   RecurrenceKind = "every_n_days"
)

var (
	ErrInvalidRecurrenceKind = errors.New("model: invalid recurrence kind")
	ErrInvalidInterval       = errors.New("model: every_n_days interval must be at least 2")
)

func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekdays, RecurrenceWeekends, RecurrenceSpecificDays, RecurrenceEveryNDays:
		return true
	default:
		return false
	}
}

// Recurrence is the rule deciding which calendar days an item is due.
// Weekdays is meaningful only for specific_days, IntervalDays only for
// every_n_days; Normalize clears whichever the kind does not own.
type Recurrence struct {
	Kind         RecurrenceKind
	Weekdays     []time.Weekday
	IntervalDays int
	Start        calendar.Day
}

func (r Recurrence) Validate() error {
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrenceKind, r.Kind)
	}
	if r.Start.IsZero() {
		return errors.New("model: recurrence start day is required")
	}
	switch r.Kind {
	case RecurrenceEveryNDays:
		if r.IntervalDays < 2 {
			return fmt.Errorf("%w: %d", ErrInvalidInterval, r.IntervalDays)
		}
	case RecurrenceSpecificDays:
		s := make([]int, 0, len(r.Weekdays))
		for _, d := range r.Weekdays {
			s = append(s, int(d))
		}
		sort.Ints(s)
		for i := 1; i < len(s); i++ {
			if s[i] == s[i-1] {
				return errors.New("model: duplicate weekday in recurrence")
			}
		}
	}
	return nil
}

// Normalize drops parameters left over from a previous kind so the
// predicate never reads a stale field after an edit.
func (r Recurrence) Normalize() Recurrence {
	if r.Kind != RecurrenceSpecificDays {
		r.Weekdays = nil
	}
	if r.Kind != RecurrenceEveryNDays {
		r.IntervalDays = 0
	}
	return r
}

// IsDueOn reports whether the rule makes an item due on the given day.
// The predicate is total: malformed rules (unknown kind, non-positive
// interval, empty weekday set) are never due rather than an error.
func (r Recurrence) IsDueOn(day calendar.Day) bool {
	switch r.Kind {
	case RecurrenceOnce:
		return day.Equal(r.Start)
	case RecurrenceDaily:
		return true
	case RecurrenceWeekdays:
		wd := day.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case RecurrenceWeekends:
		wd := day.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case RecurrenceSpecificDays:
		wd := day.Weekday()
		for _, allowed := range r.Weekdays {
			if allowed == wd {
				return true
			}
		}
		return false
	case RecurrenceEveryNDays:
		if r.IntervalDays <= 0 {
			return false
		}
		diff := calendar.DaysBetween(r.Start, day)
		return diff >= 0 && diff%r.IntervalDays == 0
	default:
		return false
	}
}
