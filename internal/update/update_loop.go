package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashwink/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			next.syncBubbleData()
			return next, nil
		}

		if m.Editor.Active {
			next := m.handleEditorKey(typed)
			next.syncBubbleData()
			return next, nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Today:
			m.CurrentScreen = ScreenToday
			m.syncSelectedItemToCursor()
			return m, nil
		case m.Keys.Upcoming:
			m.CurrentScreen = ScreenUpcoming
			m.syncSelectedItemToCursor()
			return m, nil
		case m.Keys.Overdue:
			m.CurrentScreen = ScreenOverdue
			m.syncSelectedItemToCursor()
			return m, nil
		case m.Keys.Add:
			m = m.openEditorForNew()
			m.syncBubbleData()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "D":
			m.cycleDensity()
			m.syncBubbleData()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			if err := m.persistScreenState(); err != nil {
				m.LastError = err
			}
			return m, tea.Quit
		}

		var next Model
		switch m.CurrentScreen {
		case ScreenToday:
			next = m.handleTodayKey(typed)
		case ScreenUpcoming:
			next = m.handleUpcomingKey(typed)
		case ScreenOverdue:
			next = m.handleOverdueKey(typed)
		default:
			next = m
		}
		next.syncBubbleData()
		return next, nil
	case SwitchScreenMsg:
		if isKnownScreen(typed.Screen) {
			m.CurrentScreen = typed.Screen
			m.syncSelectedItemToCursor()
			m.syncBubbleData()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case RefreshMsg:
		m.refreshScreens()
		m.syncBubbleData()
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.CurrentScreen {
	case ScreenToday:
		body = m.renderTodayScreen()
	case ScreenUpcoming:
		body = m.renderUpcomingScreen()
	case ScreenOverdue:
		body = m.renderOverdueScreen()
	}

	overlay := ""
	if m.Editor.Active {
		overlay = m.renderEditor()
	} else if m.Palette.Active {
		overlay = views.RenderCommandPalette(true, m.Palette.Input)
	}
	if m.HelpVisible {
		if overlay != "" {
			overlay += "\n\n"
		}
		overlay += m.renderHelpView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitd | screen: %s | %s", m.CurrentScreen, m.today().Key()),
		Body:       body,
		Overlay:    overlay,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: %s today | %s upcoming | %s overdue | %s add | / cmd | %s help | %s quit", m.Keys.Today, m.Keys.Upcoming, m.Keys.Overdue, m.Keys.Add, m.Keys.Help, m.Keys.Quit),
	})
}
