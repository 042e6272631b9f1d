package model

import (
	"errors"
	"testing"
	"time"

	"github.com/ashwink/habitd/internal/calendar"
)

func TestDailyAlwaysDue(t *testing.T) {
	rule := Recurrence{Kind: RecurrenceDaily, Start: calendar.Date(2024, time.January, 1)}
	day := calendar.Date(2023, time.June, 15)
	for i := 0; i < 400; i++ {
		if !rule.IsDueOn(day) {
			t.Fatalf("daily not due on %s", day)
		}
		day = day.AddDays(1)
	}
}

func TestOnceDueOnlyOnStart(t *testing.T) {
	start := calendar.Date(2024, time.March, 10)
	rule := Recurrence{Kind: RecurrenceOnce, Start: start}
	if !rule.IsDueOn(start) {
		t.Fatalf("once not due on its start day")
	}
	if rule.IsDueOn(start.AddDays(1)) || rule.IsDueOn(start.AddDays(-1)) {
		t.Fatalf("once due off its start day")
	}
}

func TestWeekdaysAndWeekendsComplement(t *testing.T) {
	weekdayRule := Recurrence{Kind: RecurrenceWeekdays, Start: calendar.Date(2024, time.January, 1)}
	weekendRule := Recurrence{Kind: RecurrenceWeekends, Start: calendar.Date(2024, time.January, 1)}
	day := calendar.Date(2024, time.January, 1) // Monday
	for i := 0; i < 14; i++ {
		onWeekday := weekdayRule.IsDueOn(day)
		onWeekend := weekendRule.IsDueOn(day)
		if onWeekday == onWeekend {
			t.Fatalf("weekday/weekend not complementary on %s (%s)", day, day.Weekday())
		}
		wantWeekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
		if onWeekend != wantWeekend {
			t.Fatalf("weekend rule wrong on %s (%s)", day, day.Weekday())
		}
		day = day.AddDays(1)
	}
}

func TestSpecificDaysMembership(t *testing.T) {
	rule := Recurrence{
		Kind:     RecurrenceSpecificDays,
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		Start:    calendar.Date(2024, time.January, 1),
	}
	mon := calendar.Date(2024, time.January, 1)
	if !rule.IsDueOn(mon) || !rule.IsDueOn(mon.AddDays(2)) {
		t.Fatalf("specific days missed Monday/Wednesday")
	}
	if rule.IsDueOn(mon.AddDays(1)) || rule.IsDueOn(mon.AddDays(5)) {
		t.Fatalf("specific days due on Tuesday/Saturday")
	}
}

func TestSpecificDaysEmptySetNeverDue(t *testing.T) {
	rule := Recurrence{Kind: RecurrenceSpecificDays, Start: calendar.Date(2024, time.January, 1)}
	day := calendar.Date(2024, time.January, 1)
	for i := 0; i < 7; i++ {
		if rule.IsDueOn(day) {
			t.Fatalf("empty specific days due on %s", day)
		}
		day = day.AddDays(1)
	}
}

func TestEveryNDaysModulus(t *testing.T) {
	start := calendar.Date(2024, time.January, 1)
	rule := Recurrence{Kind: RecurrenceEveryNDays, IntervalDays: 3, Start: start}

	if !rule.IsDueOn(start) {
		t.Fatalf("every_n_days not due on start day")
	}
	dueKeys := map[string]bool{"2024-01-01": true, "2024-01-04": true, "2024-01-07": true}
	day := start
	for i := 0; i < 7; i++ {
		if got := rule.IsDueOn(day); got != dueKeys[day.Key()] {
			t.Fatalf("every 3 days on %s: got %v", day.Key(), got)
		}
		day = day.AddDays(1)
	}
	for k := 1; k <= 10; k++ {
		if rule.IsDueOn(start.AddDays(-k)) {
			t.Fatalf("due %d days before start", k)
		}
	}
}

func TestEveryNDaysInvalidIntervalNeverDue(t *testing.T) {
	start := calendar.Date(2024, time.January, 1)
	for _, interval := range []int{0, -1} {
		rule := Recurrence{Kind: RecurrenceEveryNDays, IntervalDays: interval, Start: start}
		if rule.IsDueOn(start) || rule.IsDueOn(start.AddDays(4)) {
			t.Fatalf("interval %d should never be due", interval)
		}
	}
}

func TestUnknownKindNeverDue(t *testing.T) {
	rule := Recurrence{Kind: RecurrenceKind("fortnightly"), Start: calendar.Date(2024, time.January, 1)}
	if rule.IsDueOn(calendar.Date(2024, time.January, 1)) {
		t.Fatalf("unknown kind should never be due")
	}
}

func TestValidateRejectsBadRules(t *testing.T) {
	start := calendar.Date(2024, time.January, 1)

	err := Recurrence{Kind: RecurrenceKind("bogus"), Start: start}.Validate()
	if !errors.Is(err, ErrInvalidRecurrenceKind) {
		t.Fatalf("expected ErrInvalidRecurrenceKind, got %v", err)
	}

	err = Recurrence{Kind: RecurrenceEveryNDays, IntervalDays: 1, Start: start}.Validate()
	if !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}

	err = Recurrence{
		Kind:     RecurrenceSpecificDays,
		Weekdays: []time.Weekday{time.Monday, time.Monday},
		Start:    start,
	}.Validate()
	if err == nil {
		t.Fatalf("expected duplicate weekday error")
	}

	if err := (Recurrence{Kind: RecurrenceDaily}).Validate(); err == nil {
		t.Fatalf("expected missing start error")
	}
}

func TestNormalizeClearsStaleParams(t *testing.T) {
	rule := Recurrence{
		Kind:         RecurrenceDaily,
		Weekdays:     []time.Weekday{time.Monday},
		IntervalDays: 4,
		Start:        calendar.Date(2024, time.January, 1),
	}
	norm := rule.Normalize()
	if norm.Weekdays != nil || norm.IntervalDays != 0 {
		t.Fatalf("normalize left stale params: %#v", norm)
	}

	keep := Recurrence{
		Kind:         RecurrenceEveryNDays,
		Weekdays:     []time.Weekday{time.Friday},
		IntervalDays: 4,
		Start:        calendar.Date(2024, time.January, 1),
	}.Normalize()
	if keep.IntervalDays != 4 || keep.Weekdays != nil {
		t.Fatalf("normalize mangled every_n_days: %#v", keep)
	}
}
