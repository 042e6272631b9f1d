package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ashwink/habitd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentScreen: string(m.CurrentScreen),
		Bindings:      plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Today, Action: "switch to Today"},
		{Key: m.Keys.Upcoming, Action: "switch to Upcoming"},
		{Key: m.Keys.Overdue, Action: "switch to Overdue"},
		{Key: m.Keys.Add, Action: "add item"},
		{Key: "/", Action: "open command palette"},
		{Key: "D", Action: "cycle density"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	if m.Editor.Active {
		return []KeyBinding{
			{Key: "tab", Action: "next field"},
			{Key: "enter/ctrl+s", Action: "save item"},
			{Key: "h/l", Action: "cycle kind / move day focus"},
			{Key: "space", Action: "toggle weekday"},
			{Key: "esc", Action: "close editor"},
		}
	}
	switch m.CurrentScreen {
	case ScreenToday:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle done"},
			{Key: "e/d", Action: "edit / delete item"},
		}
	case ScreenUpcoming:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "e/d", Action: "edit / delete item"},
		}
	case ScreenOverdue:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "mark missed day done"},
			{Key: "e/d", Action: "edit / delete item"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
