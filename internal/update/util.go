package update

import (
	"fmt"
	"strings"

	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/schedule"
)

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func occurrenceRows(occurrences []schedule.Occurrence) []OccurrenceRow {
	rows := make([]OccurrenceRow, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, OccurrenceRow{
			ID:         occ.Item.ID,
			Title:      occ.Item.Title,
			Day:        occ.Day,
			Recurrence: recurrenceSummary(occ.Item.Recurrence),
		})
	}
	return rows
}

// recurrenceSummary is the short rule label shown next to an item.
func recurrenceSummary(rec model.Recurrence) string {
	switch rec.Kind {
	case model.RecurrenceOnce:
		return "once"
	case model.RecurrenceDaily:
		return "daily"
	case model.RecurrenceWeekdays:
		return "weekdays"
	case model.RecurrenceWeekends:
		return "weekends"
	case model.RecurrenceSpecificDays:
		if len(rec.Weekdays) == 0 {
			return "no days"
		}
		parts := make([]string, 0, len(rec.Weekdays))
		for _, wd := range rec.Weekdays {
			parts = append(parts, wd.String()[:3])
		}
		return strings.Join(parts, ",")
	case model.RecurrenceEveryNDays:
		return fmt.Sprintf("every %d days", rec.IntervalDays)
	default:
		return string(rec.Kind)
	}
}
