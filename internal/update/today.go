package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
		m.syncSelectedItemToCursor()
	case "down", "j":
		if m.Today.Cursor < len(m.Today.Rows)-1 {
			m.Today.Cursor++
		}
		m.syncSelectedItemToCursor()
	case " ", "enter":
		m = m.toggleTodayRow()
	case "e":
		if row, ok := m.currentTodayRow(); ok {
			m = m.openEditorForItem(row.ID)
		}
	case "d":
		if row, ok := m.currentTodayRow(); ok {
			m = m.deleteItem(row.ID, row.Title)
		}
	}
	return m
}

func (m Model) toggleTodayRow() Model {
	row, ok := m.currentTodayRow()
	if !ok {
		return m
	}
	done, err := m.Tracker.ToggleCompletion(context.Background(), row.ID, m.today())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	if done {
		m.Status = StatusBar{Text: fmt.Sprintf("done: %s", row.Title), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("not done: %s", row.Title), IsError: false}
	}
	m.refreshScreens()
	return m
}

func (m Model) deleteItem(id, title string) Model {
	if err := m.Tracker.DeleteItem(context.Background(), id); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", title), IsError: false}
	if m.SelectedItemID == id {
		m.SelectedItemID = ""
	}
	m.refreshScreens()
	return m
}

func (m Model) currentTodayRow() (TodayRow, bool) {
	if len(m.Today.Rows) == 0 {
		return TodayRow{}, false
	}
	if m.Today.Cursor < 0 || m.Today.Cursor >= len(m.Today.Rows) {
		return TodayRow{}, false
	}
	return m.Today.Rows[m.Today.Cursor], true
}
