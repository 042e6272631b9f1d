package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestItemCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2024-03-01T09:00:00Z")

	item := Item{
		ID:             "item-1",
		Title:          "Morning stretch",
		Notes:          "5 minutes is enough",
		RecurrenceKind: "daily",
		StartDay:       "2024-03-01",
		CreatedAt:      created,
	}
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Title != item.Title || got.RecurrenceKind != "daily" || got.StartDay != "2024-03-01" {
		t.Fatalf("unexpected item get result: %#v", got)
	}

	item.Title = "Morning stretch v2"
	item.RecurrenceKind = "every_n_days"
	item.IntervalDays = 3
	if err := repo.UpdateItem(ctx, item); err != nil {
		t.Fatalf("update item: %v", err)
	}

	everyN, err := repo.ListItems(ctx, ItemListFilter{RecurrenceKind: "every_n_days"})
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(everyN) != 1 || everyN[0].ID != item.ID || everyN[0].IntervalDays != 3 {
		t.Fatalf("unexpected filtered list: %#v", everyN)
	}

	if err := repo.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	_, err = repo.GetItem(ctx, item.ID)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestListItemsKeepsInsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := Item{ID: "a", Title: "First", RecurrenceKind: "daily", StartDay: "2024-03-01", CreatedAt: parseRFC3339(t, "2024-03-01T08:00:00Z")}
	second := Item{ID: "b", Title: "Second", RecurrenceKind: "daily", StartDay: "2024-03-01", CreatedAt: parseRFC3339(t, "2024-03-01T09:00:00Z")}
	if err := repo.CreateItem(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if err := repo.CreateItem(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	list, err := repo.ListItems(ctx, ItemListFilter{})
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected order: %#v", list)
	}
}

func TestCompletionLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	item := Item{ID: "item-c", Title: "Meditate", RecurrenceKind: "daily", StartDay: "2024-03-01", CreatedAt: parseRFC3339(t, "2024-03-01T08:00:00Z")}
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	done := Completion{ItemID: item.ID, Day: "2024-03-02"}
	if err := repo.AddCompletion(ctx, done); err != nil {
		t.Fatalf("add completion: %v", err)
	}
	// Re-adding the same pair is a no-op, not an error.
	if err := repo.AddCompletion(ctx, done); err != nil {
		t.Fatalf("re-add completion: %v", err)
	}

	list, err := repo.ListCompletions(ctx, CompletionListFilter{ItemID: item.ID})
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(list) != 1 || list[0].Day != "2024-03-02" {
		t.Fatalf("unexpected completions: %#v", list)
	}

	if err := repo.DeleteCompletion(ctx, item.ID, "2024-03-02"); err != nil {
		t.Fatalf("delete completion: %v", err)
	}
	if err := repo.DeleteCompletion(ctx, item.ID, "2024-03-02"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestDeleteItemCascadesCompletions(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	item := Item{ID: "item-d", Title: "Journal", RecurrenceKind: "daily", StartDay: "2024-03-01", CreatedAt: parseRFC3339(t, "2024-03-01T08:00:00Z")}
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	for _, day := range []string{"2024-03-02", "2024-03-03"} {
		if err := repo.AddCompletion(ctx, Completion{ItemID: item.ID, Day: day}); err != nil {
			t.Fatalf("add completion %s: %v", day, err)
		}
	}

	if err := repo.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	left, err := repo.ListCompletions(ctx, CompletionListFilter{ItemID: item.ID})
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("completions not cascaded: %#v", left)
	}
}

func TestMigrateDownRemovesTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "habitd-migrate.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	row := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('checklist_items', 'completions')`)
	var count int
	if err := row.Scan(&count); err != nil {
		t.Fatalf("inspect schema: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected tables dropped, found %d", count)
	}
}
