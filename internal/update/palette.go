package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/commands"
	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/tracker"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	ctx := context.Background()
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			item, addErr := m.Tracker.AddItem(ctx, tracker.Draft{
				Title:      a.Title,
				Recurrence: model.Recurrence{Kind: m.quickAddKind},
			})
			if addErr != nil {
				return commands.Result{}, addErr
			}
			m.SelectedItemID = item.ID
			return commands.Result{Message: fmt.Sprintf("added: %s", item.Title)}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			id, day, title, ok := m.rowAt(d.Position)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no row %d on %s", d.Position, m.CurrentScreen)}
			}
			done, toggleErr := m.Tracker.ToggleCompletion(ctx, id, day)
			if toggleErr != nil {
				return commands.Result{}, toggleErr
			}
			if done {
				return commands.Result{Message: fmt.Sprintf("done on %s: %s", day.Key(), title)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("not done on %s: %s", day.Key(), title)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			id, _, title, ok := m.rowAt(d.Position)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no row %d on %s", d.Position, m.CurrentScreen)}
			}
			if delErr := m.Tracker.DeleteItem(ctx, id); delErr != nil {
				return commands.Result{}, delErr
			}
			return commands.Result{Message: fmt.Sprintf("deleted: %s", title)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Screen {
			case "today":
				m.CurrentScreen = ScreenToday
			case "upcoming":
				m.CurrentScreen = ScreenUpcoming
			case "overdue":
				m.CurrentScreen = ScreenOverdue
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", s.Screen)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.refreshScreens()
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// rowAt resolves a 1-based row number on the active screen to the item
// it names and the day a done command should apply to.
func (m Model) rowAt(position int) (id string, day calendar.Day, title string, ok bool) {
	idx := position - 1
	switch m.CurrentScreen {
	case ScreenToday:
		if idx < 0 || idx >= len(m.Today.Rows) {
			return "", calendar.Day{}, "", false
		}
		row := m.Today.Rows[idx]
		return row.ID, m.today(), row.Title, true
	case ScreenUpcoming:
		if idx < 0 || idx >= len(m.Upcoming.Rows) {
			return "", calendar.Day{}, "", false
		}
		row := m.Upcoming.Rows[idx]
		return row.ID, row.Day, row.Title, true
	case ScreenOverdue:
		if idx < 0 || idx >= len(m.Overdue.Rows) {
			return "", calendar.Day{}, "", false
		}
		row := m.Overdue.Rows[idx]
		return row.ID, row.Day, row.Title, true
	default:
		return "", calendar.Day{}, "", false
	}
}
