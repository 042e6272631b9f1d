// Package calendar provides the calendar-day primitive the scheduling
// core works in: dates with time-of-day stripped, compared and stepped
// in whole-day units in the local location.
package calendar

import (
	"fmt"
	"time"
)

// KeyLayout is the stable string form used for map keys and storage.
const KeyLayout = "2006-01-02"

// Day is a calendar date normalized to midnight. The zero value is the
// zero time and reports IsZero.
type Day struct {
	t time.Time
}

// DayOf strips the time-of-day from t, keeping its location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// Date constructs a day directly from calendar components.
func Date(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDay parses the YYYY-MM-DD key format.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(KeyLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("calendar: parse day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

func (d Day) IsZero() bool { return d.t.IsZero() }

// Time exposes the underlying midnight instant.
func (d Day) Time() time.Time { return d.t }

func (d Day) Year() int                 { return d.t.Year() }
func (d Day) Month() time.Month         { return d.t.Month() }
func (d Day) DayOfMonth() int           { return d.t.Day() }
func (d Day) Weekday() time.Weekday     { return d.t.Weekday() }

// AddDays steps n whole calendar days (n may be negative). Stepping via
// AddDate keeps the result on a midnight boundary regardless of DST.
func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

func (d Day) Equal(other Day) bool {
	y1, m1, d1 := d.t.Date()
	y2, m2, d2 := other.t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Day) Before(other Day) bool {
	if d.Equal(other) {
		return false
	}
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return other.Before(d)
}

// EndOfYear returns Dec 31 of the day's year.
func (d Day) EndOfYear() Day {
	return Day{t: time.Date(d.t.Year(), time.December, 31, 0, 0, 0, 0, d.t.Location())}
}

// String formats the day as its YYYY-MM-DD key.
func (d Day) String() string {
	return d.t.Format(KeyLayout)
}

// Key is an alias of String, named for its use as a map/storage key.
func (d Day) Key() string { return d.String() }

// DaysBetween returns the signed whole-day count from a to b. It counts
// calendar steps rather than dividing a duration, so results stay exact
// across DST transitions.
func DaysBetween(a, b Day) int {
	if a.Equal(b) {
		return 0
	}
	if b.Before(a) {
		return -DaysBetween(b, a)
	}
	// Coarse estimate first, then settle by single-day steps.
	n := int(b.t.Sub(a.t) / (24 * time.Hour))
	probe := a.AddDays(n)
	for probe.Before(b) {
		probe = probe.AddDays(1)
		n++
	}
	for b.Before(probe) {
		probe = probe.AddDays(-1)
		n--
	}
	return n
}
