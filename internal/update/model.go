package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/tracker"
)

type Screen string

const (
	ScreenToday    Screen = "Today"
	ScreenUpcoming Screen = "Upcoming"
	ScreenOverdue  Screen = "Overdue"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today    string
	Upcoming string
	Overdue  string
	Add      string
	Help     string
	Quit     string
}

type RuntimeConfig struct {
	QuickAddKind  string
	UIDensity     int
	StateFilePath string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		QuickAddKind: string(model.RecurrenceDaily),
		UIDensity:    1,
	}
}

// TodayRow is one due item on the today screen.
type TodayRow struct {
	ID         string
	Title      string
	Recurrence string
	Done       bool
}

// OccurrenceRow is one dated occurrence on the upcoming or overdue
// screen.
type OccurrenceRow struct {
	ID         string
	Title      string
	Day        calendar.Day
	Recurrence string
}

type TodayState struct {
	Rows   []TodayRow
	Cursor int
}

type UpcomingState struct {
	Rows   []OccurrenceRow
	Cursor int
}

type OverdueState struct {
	Rows   []OccurrenceRow
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type EditorField string

const (
	FieldTitle    EditorField = "title"
	FieldKind     EditorField = "kind"
	FieldDays     EditorField = "days"
	FieldInterval EditorField = "interval"
	FieldStart    EditorField = "start"
	FieldNotes    EditorField = "notes"
)

type EditorState struct {
	Active       bool
	Creating     bool
	ItemID       string
	CreatedAt    time.Time
	Kind         model.RecurrenceKind
	Weekdays     map[time.Weekday]bool
	WeekdayFocus time.Weekday
	Field        EditorField
	Err          string
}

type Model struct {
	CurrentScreen  Screen
	SelectedItemID string
	Tracker        *tracker.Tracker
	Today          TodayState
	Upcoming       UpcomingState
	Overdue        OverdueState
	Palette        CommandPaletteState
	Editor         EditorState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	quickAddKind   model.RecurrenceKind
	stateFilePath  string
	uiDensity      int
	now            func() time.Time
	// Bubble components used for rich TUI controls
	todayList       list.Model
	upcomingTable   table.Model
	titleInput      textinput.Model
	intervalInput   textinput.Model
	startInput      textinput.Model
	commandInput    textinput.Model
	notesArea       textarea.Model
	helpModel       help.Model
	previewViewport viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchScreenMsg struct {
	Screen Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// RefreshMsg recomputes every screen from the tracker snapshot.
type RefreshMsg struct{}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		CurrentScreen: ScreenToday,
		Tracker:       tr,
		quickAddKind:  model.RecurrenceDaily,
		uiDensity:     1,
		now:           time.Now,
		Keys: GlobalKeyMap{
			Today:    "1",
			Upcoming: "2",
			Overdue:  "3",
			Add:      "a",
			Help:     "?",
			Quit:     "q",
		},
		Editor: EditorState{
			Kind:     model.RecurrenceDaily,
			Weekdays: make(map[time.Weekday]bool),
		},
	}
	m.initBubbleComponents()
	m.refreshScreens()
	return m
}

func NewModelWithConfig(tr *tracker.Tracker, cfg RuntimeConfig) Model {
	m := NewModel(tr)
	if kind := model.RecurrenceKind(cfg.QuickAddKind); kind.IsValid() {
		m.quickAddKind = kind
	}
	if cfg.UIDensity >= 1 && cfg.UIDensity <= 3 {
		m.uiDensity = cfg.UIDensity
	}
	m.stateFilePath = cfg.StateFilePath
	if m.stateFilePath != "" {
		if state, err := loadScreenState(m.stateFilePath); err == nil && isKnownScreen(state.LastScreen) {
			m.CurrentScreen = state.LastScreen
			m.SelectedItemID = state.SelectedItemID
			if state.UIDensity >= 1 && state.UIDensity <= 3 {
				m.uiDensity = state.UIDensity
			}
			m.restoreCursorFromSelection()
		}
	}
	m.syncBubbleData()
	return m
}

func (m Model) today() calendar.Day {
	return calendar.DayOf(m.now())
}

func isKnownScreen(s Screen) bool {
	switch s {
	case ScreenToday, ScreenUpcoming, ScreenOverdue:
		return true
	default:
		return false
	}
}
