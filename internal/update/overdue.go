package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleOverdueKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Overdue.Cursor > 0 {
			m.Overdue.Cursor--
		}
		m.syncSelectedItemToCursor()
	case "down", "j":
		if m.Overdue.Cursor < len(m.Overdue.Rows)-1 {
			m.Overdue.Cursor++
		}
		m.syncSelectedItemToCursor()
	case " ", "enter":
		m = m.resolveOverdueRow()
	case "e":
		if row, ok := m.currentOverdueRow(); ok {
			m = m.openEditorForItem(row.ID)
		}
	case "d":
		if row, ok := m.currentOverdueRow(); ok {
			m = m.deleteItem(row.ID, row.Title)
		}
	}
	return m
}

// resolveOverdueRow marks the missed occurrence done on its own day,
// which removes the row and may surface an older miss for the item.
func (m Model) resolveOverdueRow() Model {
	row, ok := m.currentOverdueRow()
	if !ok {
		return m
	}
	if _, err := m.Tracker.ToggleCompletion(context.Background(), row.ID, row.Day); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("done on %s: %s", row.Day.Key(), row.Title), IsError: false}
	m.refreshScreens()
	return m
}

func (m Model) currentOverdueRow() (OccurrenceRow, bool) {
	if len(m.Overdue.Rows) == 0 {
		return OccurrenceRow{}, false
	}
	if m.Overdue.Cursor < 0 || m.Overdue.Cursor >= len(m.Overdue.Rows) {
		return OccurrenceRow{}, false
	}
	return m.Overdue.Rows[m.Overdue.Cursor], true
}
