package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleUpcomingKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Upcoming.Cursor > 0 {
			m.Upcoming.Cursor--
		}
		m.syncSelectedItemToCursor()
	case "down", "j":
		if m.Upcoming.Cursor < len(m.Upcoming.Rows)-1 {
			m.Upcoming.Cursor++
		}
		m.syncSelectedItemToCursor()
	case "e":
		if row, ok := m.currentUpcomingRow(); ok {
			m = m.openEditorForItem(row.ID)
		}
	case "d":
		if row, ok := m.currentUpcomingRow(); ok {
			m = m.deleteItem(row.ID, row.Title)
		}
	}
	return m
}

func (m Model) currentUpcomingRow() (OccurrenceRow, bool) {
	if len(m.Upcoming.Rows) == 0 {
		return OccurrenceRow{}, false
	}
	if m.Upcoming.Cursor < 0 || m.Upcoming.Cursor >= len(m.Upcoming.Rows) {
		return OccurrenceRow{}, false
	}
	return m.Upcoming.Rows[m.Upcoming.Cursor], true
}
