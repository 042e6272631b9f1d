package tracker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/storage"
)

func itemToStorage(item model.ChecklistItem) storage.Item {
	return storage.Item{
		ID:             item.ID,
		Title:          item.Title,
		Notes:          item.Notes,
		RecurrenceKind: string(item.Recurrence.Kind),
		Weekdays:       encodeWeekdays(item.Recurrence.Weekdays),
		IntervalDays:   item.Recurrence.IntervalDays,
		StartDay:       item.Recurrence.Start.Key(),
		CreatedAt:      item.CreatedAt,
	}
}

func itemFromStorage(row storage.Item) (model.ChecklistItem, error) {
	start, err := calendar.ParseDay(row.StartDay)
	if err != nil {
		return model.ChecklistItem{}, err
	}
	weekdays, err := decodeWeekdays(row.Weekdays)
	if err != nil {
		return model.ChecklistItem{}, err
	}
	return model.ChecklistItem{
		ID:    row.ID,
		Title: row.Title,
		Notes: row.Notes,
		Recurrence: model.Recurrence{
			Kind:         model.RecurrenceKind(row.RecurrenceKind),
			Weekdays:     weekdays,
			IntervalDays: row.IntervalDays,
			Start:        start,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

// encodeWeekdays stores a weekday set as comma-separated indices
// (Sun=0), e.g. "1,3" for Monday and Wednesday.
func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(raw string) ([]time.Weekday, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("tracker: bad weekday %q: %w", part, err)
		}
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("tracker: weekday index out of range: %d", n)
		}
		out = append(out, time.Weekday(n))
	}
	return out, nil
}
