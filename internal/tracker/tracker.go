// Package tracker is the mutation and query surface the UI talks to.
// It owns the persisted item list and completion ledger; every
// scheduling answer is derived on demand from that snapshot.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/schedule"
	"github.com/ashwink/habitd/internal/storage"
)

// Draft carries the editor fields for a new item. A zero Start anchors
// the recurrence on the creation day.
type Draft struct {
	Title      string
	Notes      string
	Recurrence model.Recurrence
}

type Tracker struct {
	repo   storage.Repository
	items  []model.ChecklistItem
	ledger *schedule.Ledger
	now    func() time.Time
}

func New(repo storage.Repository) *Tracker {
	return &Tracker{
		repo:   repo,
		items:  make([]model.ChecklistItem, 0),
		ledger: schedule.NewLedger(),
		now:    time.Now,
	}
}

// Load replaces the in-memory snapshot with the persisted state.
func (t *Tracker) Load(ctx context.Context) error {
	rows, err := t.repo.ListItems(ctx, storage.ItemListFilter{})
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	items := make([]model.ChecklistItem, 0, len(rows))
	for _, row := range rows {
		item, decodeErr := itemFromStorage(row)
		if decodeErr != nil {
			return fmt.Errorf("decode item %s: %w", row.ID, decodeErr)
		}
		items = append(items, item)
	}

	completions, err := t.repo.ListCompletions(ctx, storage.CompletionListFilter{})
	if err != nil {
		return fmt.Errorf("load completions: %w", err)
	}
	records := make([]schedule.CompletionRecord, 0, len(completions))
	for _, c := range completions {
		day, parseErr := calendar.ParseDay(c.Day)
		if parseErr != nil {
			return fmt.Errorf("decode completion for %s: %w", c.ItemID, parseErr)
		}
		records = append(records, schedule.CompletionRecord{ItemID: c.ItemID, Day: day})
	}

	t.items = items
	t.ledger = schedule.NewLedgerFromRecords(records)
	return nil
}

// AddItem assigns an id and creation time, anchors the recurrence, and
// persists the item.
func (t *Tracker) AddItem(ctx context.Context, draft Draft) (model.ChecklistItem, error) {
	now := t.now()
	rec := draft.Recurrence
	if rec.Start.IsZero() {
		rec.Start = calendar.DayOf(now)
	}
	item := model.ChecklistItem{
		ID:         uuid.NewString(),
		Title:      draft.Title,
		Notes:      draft.Notes,
		Recurrence: rec.Normalize(),
		CreatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return model.ChecklistItem{}, err
	}
	if err := t.repo.CreateItem(ctx, itemToStorage(item)); err != nil {
		return model.ChecklistItem{}, fmt.Errorf("create item: %w", err)
	}
	t.items = append(t.items, item)
	return item, nil
}

// UpdateItem edits an item in place. The recurrence is normalized
// first, so switching kinds clears the parameter the new kind does not
// own.
func (t *Tracker) UpdateItem(ctx context.Context, item model.ChecklistItem) error {
	item.Recurrence = item.Recurrence.Normalize()
	if err := item.Validate(); err != nil {
		return err
	}
	idx := t.indexOf(item.ID)
	if idx < 0 {
		return storage.ErrNotFound
	}
	item.CreatedAt = t.items[idx].CreatedAt
	if err := t.repo.UpdateItem(ctx, itemToStorage(item)); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	t.items[idx] = item
	return nil
}

// DeleteItem removes the item and its completion records.
func (t *Tracker) DeleteItem(ctx context.Context, id string) error {
	idx := t.indexOf(id)
	if idx < 0 {
		return storage.ErrNotFound
	}
	if err := t.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	t.ledger.Forget(id)
	return nil
}

// ToggleCompletion flips the (item, day) completion and mirrors the
// change in storage. It returns the new completion state.
func (t *Tracker) ToggleCompletion(ctx context.Context, itemID string, day calendar.Day) (bool, error) {
	if t.indexOf(itemID) < 0 {
		return false, storage.ErrNotFound
	}
	nowDone := t.ledger.Toggle(itemID, day)
	var err error
	if nowDone {
		err = t.repo.AddCompletion(ctx, storage.Completion{ItemID: itemID, Day: day.Key()})
	} else {
		err = t.repo.DeleteCompletion(ctx, itemID, day.Key())
	}
	if err != nil {
		// Roll the in-memory toggle back so snapshot and storage agree.
		t.ledger.Toggle(itemID, day)
		return !nowDone, fmt.Errorf("persist completion: %w", err)
	}
	return nowDone, nil
}

func (t *Tracker) IsCompleted(itemID string, day calendar.Day) bool {
	return t.ledger.Completed(itemID, day)
}

// Items returns the item list in insertion order.
func (t *Tracker) Items() []model.ChecklistItem {
	out := make([]model.ChecklistItem, len(t.items))
	copy(out, t.items)
	return out
}

func (t *Tracker) GetItem(id string) (model.ChecklistItem, bool) {
	idx := t.indexOf(id)
	if idx < 0 {
		return model.ChecklistItem{}, false
	}
	return t.items[idx], true
}

// GetItemsForDate returns the items due on the given day, in insertion
// order.
func (t *Tracker) GetItemsForDate(day calendar.Day) []model.ChecklistItem {
	return schedule.TodayView(t.items, day)
}

func (t *Tracker) TodayOccurrences(today calendar.Day) []model.ChecklistItem {
	return schedule.TodayView(t.items, today)
}

func (t *Tracker) UpcomingOccurrences(today calendar.Day) []schedule.Occurrence {
	return schedule.UpcomingView(t.items, today)
}

func (t *Tracker) OverdueOccurrences(today calendar.Day) []schedule.Occurrence {
	return schedule.OverdueView(t.items, t.ledger, today)
}

func (t *Tracker) indexOf(id string) int {
	for i, item := range t.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
