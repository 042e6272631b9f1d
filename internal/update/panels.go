package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ashwink/habitd/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.todayList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.todayList.Title = "Today (list)"
	m.todayList.SetShowHelp(false)
	m.todayList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Title", Width: 28},
		{Title: "Repeats", Width: 16},
	}
	m.upcomingTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 42

	m.intervalInput = textinput.New()
	m.intervalInput.Prompt = "every> "
	m.intervalInput.CharLimit = 4
	m.intervalInput.Width = 8

	m.startInput = textinput.New()
	m.startInput.Prompt = "start> "
	m.startInput.Placeholder = "YYYY-MM-DD"
	m.startInput.CharLimit = 10
	m.startInput.Width = 14

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Item notes (markdown)"

	m.helpModel = help.New()
	m.previewViewport = viewport.New(54, 12)
}

// refreshScreens recomputes every screen from the tracker snapshot and
// clamps each cursor into the new row range.
func (m *Model) refreshScreens() {
	if m.Tracker == nil {
		return
	}
	today := m.today()

	due := m.Tracker.TodayOccurrences(today)
	todayRows := make([]TodayRow, 0, len(due))
	for _, item := range due {
		todayRows = append(todayRows, TodayRow{
			ID:         item.ID,
			Title:      item.Title,
			Recurrence: recurrenceSummary(item.Recurrence),
			Done:       m.Tracker.IsCompleted(item.ID, today),
		})
	}
	m.Today.Rows = todayRows
	m.Today.Cursor = clampCursor(m.Today.Cursor, len(todayRows))

	m.Upcoming.Rows = occurrenceRows(m.Tracker.UpcomingOccurrences(today))
	m.Upcoming.Cursor = clampCursor(m.Upcoming.Cursor, len(m.Upcoming.Rows))

	m.Overdue.Rows = occurrenceRows(m.Tracker.OverdueOccurrences(today))
	m.Overdue.Cursor = clampCursor(m.Overdue.Cursor, len(m.Overdue.Rows))

	m.syncSelectedItemToCursor()
	m.syncBubbleData()
}

func (m *Model) syncBubbleData() {
	listWidth, listHeight, tableHeight, notesHeight, viewportHeight := densityDimensions(m.uiDensity)
	m.todayList.SetSize(listWidth, listHeight)
	m.upcomingTable.SetHeight(tableHeight)
	m.notesArea.SetHeight(notesHeight)
	m.previewViewport.Height = viewportHeight

	todayItems := make([]list.Item, 0, len(m.Today.Rows))
	for _, row := range m.Today.Rows {
		desc := row.Recurrence
		if row.Done {
			desc += " | done"
		}
		todayItems = append(todayItems, listItem{title: row.Title, description: desc})
	}
	m.todayList.SetItems(todayItems)
	if len(todayItems) > 0 {
		m.todayList.Select(m.Today.Cursor)
	}

	rows := make([]table.Row, 0, len(m.Upcoming.Rows))
	for _, row := range m.Upcoming.Rows {
		rows = append(rows, table.Row{row.Day.Key(), row.Title, row.Recurrence})
	}
	m.upcomingTable.SetRows(rows)
	if len(rows) > 0 && m.Upcoming.Cursor < len(rows) {
		m.upcomingTable.SetCursor(m.Upcoming.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Editor.Active {
		m.previewViewport.SetContent(views.RenderMarkdown(m.notesArea.Value()))
	}
}

func (m *Model) syncSelectedItemToCursor() {
	switch m.CurrentScreen {
	case ScreenToday:
		if row, ok := m.currentTodayRow(); ok {
			m.SelectedItemID = row.ID
		}
	case ScreenUpcoming:
		if row, ok := m.currentUpcomingRow(); ok {
			m.SelectedItemID = row.ID
		}
	case ScreenOverdue:
		if row, ok := m.currentOverdueRow(); ok {
			m.SelectedItemID = row.ID
		}
	}
}

// restoreCursorFromSelection moves the active screen's cursor to the
// previously selected item, if it still has a row.
func (m *Model) restoreCursorFromSelection() {
	if m.SelectedItemID == "" {
		return
	}
	switch m.CurrentScreen {
	case ScreenToday:
		for i, row := range m.Today.Rows {
			if row.ID == m.SelectedItemID {
				m.Today.Cursor = i
				return
			}
		}
	case ScreenUpcoming:
		for i, row := range m.Upcoming.Rows {
			if row.ID == m.SelectedItemID {
				m.Upcoming.Cursor = i
				return
			}
		}
	case ScreenOverdue:
		for i, row := range m.Overdue.Rows {
			if row.ID == m.SelectedItemID {
				m.Overdue.Cursor = i
				return
			}
		}
	}
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > 3 {
		m.uiDensity = 1
	}
}

func (m Model) renderTodayScreen() string {
	rows := make([]views.TodayRowData, 0, len(m.Today.Rows))
	for _, row := range m.Today.Rows {
		rows = append(rows, views.TodayRowData{
			ID:         row.ID,
			Title:      row.Title,
			Recurrence: row.Recurrence,
			Done:       row.Done,
		})
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		Date:       m.today().Key(),
		ListView:   m.todayList.View(),
		Rows:       rows,
		SelectedID: m.selectedRowID(ScreenToday),
	})
}

func (m Model) renderUpcomingScreen() string {
	return views.RenderUpcomingPanel(views.UpcomingPanelData{
		TableView:  m.upcomingTable.View(),
		Rows:       occurrenceRowData(m.Upcoming.Rows),
		SelectedID: m.selectedRowID(ScreenUpcoming),
	})
}

func (m Model) renderOverdueScreen() string {
	return views.RenderOverduePanel(views.OverduePanelData{
		Rows:       occurrenceRowData(m.Overdue.Rows),
		SelectedID: m.selectedRowID(ScreenOverdue),
	})
}

func (m Model) selectedRowID(screen Screen) string {
	switch screen {
	case ScreenToday:
		if row, ok := m.currentTodayRow(); ok {
			return row.ID
		}
	case ScreenUpcoming:
		if row, ok := m.currentUpcomingRow(); ok {
			return row.ID
		}
	case ScreenOverdue:
		if row, ok := m.currentOverdueRow(); ok {
			return row.ID
		}
	}
	return ""
}

func occurrenceRowData(rows []OccurrenceRow) []views.OccurrenceRowData {
	out := make([]views.OccurrenceRowData, 0, len(rows))
	for _, row := range rows {
		out = append(out, views.OccurrenceRowData{
			ID:         row.ID,
			Title:      row.Title,
			Date:       row.Day.Key(),
			Recurrence: row.Recurrence,
		})
	}
	return out
}

func densityDimensions(level int) (listWidth int, listHeight int, tableHeight int, notesHeight int, viewportHeight int) {
	switch level {
	case 2:
		return 60, 14, 12, 10, 14
	case 3:
		return 64, 16, 14, 12, 16
	default:
		return 56, 12, 10, 8, 12
	}
}
