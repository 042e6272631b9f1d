package update

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashwink/habitd/internal/calendar"
	"github.com/ashwink/habitd/internal/model"
	"github.com/ashwink/habitd/internal/tracker"
	"github.com/ashwink/habitd/internal/views"
)

var kindCycle = []model.RecurrenceKind{
	model.RecurrenceOnce,
	model.RecurrenceDaily,
	model.RecurrenceWeekdays,
	model.RecurrenceWeekends,
	model.RecurrenceSpecificDays,
	model.RecurrenceEveryNDays,
}

func (m Model) openEditorForNew() Model {
	m.Editor = EditorState{
		Active:       true,
		Creating:     true,
		Kind:         m.quickAddKind,
		Weekdays:     make(map[time.Weekday]bool),
		WeekdayFocus: time.Monday,
		Field:        FieldTitle,
	}
	m.titleInput.SetValue("")
	m.titleInput.Focus()
	m.intervalInput.SetValue("2")
	m.startInput.SetValue(m.today().Key())
	m.notesArea.SetValue("")
	m.Status = StatusBar{Text: "new item", IsError: false}
	return m
}

func (m Model) openEditorForItem(id string) Model {
	item, ok := m.Tracker.GetItem(id)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("no such item: %s", id), IsError: true}
		return m
	}
	weekdays := make(map[time.Weekday]bool, len(item.Recurrence.Weekdays))
	for _, wd := range item.Recurrence.Weekdays {
		weekdays[wd] = true
	}
	m.Editor = EditorState{
		Active:       true,
		ItemID:       item.ID,
		CreatedAt:    item.CreatedAt,
		Kind:         item.Recurrence.Kind,
		Weekdays:     weekdays,
		WeekdayFocus: time.Monday,
		Field:        FieldTitle,
	}
	m.titleInput.SetValue(item.Title)
	m.titleInput.Focus()
	interval := item.Recurrence.IntervalDays
	if interval < 2 {
		interval = 2
	}
	m.intervalInput.SetValue(strconv.Itoa(interval))
	m.startInput.SetValue(item.Recurrence.Start.Key())
	m.notesArea.SetValue(item.Notes)
	m.Status = StatusBar{Text: fmt.Sprintf("editing: %s", item.Title), IsError: false}
	return m
}

func (m Model) handleEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Editor.Active = false
		m.titleInput.Blur()
		m.Status = StatusBar{Text: "editor closed", IsError: false}
		return m
	case "tab":
		m.Editor.Field = m.nextEditorField()
		m.focusEditorField()
		return m
	case "ctrl+s":
		return m.saveEditor()
	case "enter":
		if m.Editor.Field != FieldNotes {
			return m.saveEditor()
		}
	}

	switch m.Editor.Field {
	case FieldTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		_ = cmd
	case FieldKind:
		switch msg.String() {
		case "h", "left":
			m.Editor.Kind = cycleKind(m.Editor.Kind, -1)
		case "l", "right":
			m.Editor.Kind = cycleKind(m.Editor.Kind, 1)
		}
	case FieldDays:
		switch msg.String() {
		case "h", "left":
			m.Editor.WeekdayFocus = (m.Editor.WeekdayFocus + 6) % 7
		case "l", "right":
			m.Editor.WeekdayFocus = (m.Editor.WeekdayFocus + 1) % 7
		case " ":
			if m.Editor.Weekdays[m.Editor.WeekdayFocus] {
				delete(m.Editor.Weekdays, m.Editor.WeekdayFocus)
			} else {
				m.Editor.Weekdays[m.Editor.WeekdayFocus] = true
			}
		}
	case FieldInterval:
		var cmd tea.Cmd
		m.intervalInput, cmd = m.intervalInput.Update(msg)
		_ = cmd
	case FieldStart:
		var cmd tea.Cmd
		m.startInput, cmd = m.startInput.Update(msg)
		_ = cmd
	case FieldNotes:
		var cmd tea.Cmd
		m.notesArea, cmd = m.notesArea.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) saveEditor() Model {
	rec, err := m.editorRecurrence()
	if err != nil {
		m.Editor.Err = err.Error()
		return m
	}
	title := strings.TrimSpace(m.titleInput.Value())
	notes := m.notesArea.Value()
	ctx := context.Background()

	if m.Editor.Creating {
		item, addErr := m.Tracker.AddItem(ctx, tracker.Draft{
			Title:      title,
			Notes:      notes,
			Recurrence: rec,
		})
		if addErr != nil {
			m.Editor.Err = addErr.Error()
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("added: %s", item.Title), IsError: false}
		m.SelectedItemID = item.ID
	} else {
		item := model.ChecklistItem{
			ID:         m.Editor.ItemID,
			Title:      title,
			Notes:      notes,
			Recurrence: rec,
			CreatedAt:  m.Editor.CreatedAt,
		}
		if updErr := m.Tracker.UpdateItem(ctx, item); updErr != nil {
			m.Editor.Err = updErr.Error()
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("updated: %s", title), IsError: false}
	}

	m.Editor.Active = false
	m.Editor.Err = ""
	m.titleInput.Blur()
	m.refreshScreens()
	m.restoreCursorFromSelection()
	return m
}

func (m Model) editorRecurrence() (model.Recurrence, error) {
	rec := model.Recurrence{Kind: m.Editor.Kind}

	if m.Editor.Kind == model.RecurrenceSpecificDays {
		days := make([]time.Weekday, 0, len(m.Editor.Weekdays))
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if m.Editor.Weekdays[wd] {
				days = append(days, wd)
			}
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		rec.Weekdays = days
	}

	if m.Editor.Kind == model.RecurrenceEveryNDays {
		interval, err := strconv.Atoi(strings.TrimSpace(m.intervalInput.Value()))
		if err != nil {
			return model.Recurrence{}, fmt.Errorf("interval must be a number")
		}
		rec.IntervalDays = interval
	}

	if raw := strings.TrimSpace(m.startInput.Value()); raw != "" {
		start, err := calendar.ParseDay(raw)
		if err != nil {
			return model.Recurrence{}, fmt.Errorf("start must be YYYY-MM-DD")
		}
		rec.Start = start
	}
	return rec, nil
}

func (m Model) nextEditorField() EditorField {
	order := []EditorField{FieldTitle, FieldKind}
	switch m.Editor.Kind {
	case model.RecurrenceSpecificDays:
		order = append(order, FieldDays)
	case model.RecurrenceEveryNDays:
		order = append(order, FieldInterval)
	}
	order = append(order, FieldStart, FieldNotes)

	for i, field := range order {
		if field == m.Editor.Field {
			return order[(i+1)%len(order)]
		}
	}
	return FieldTitle
}

func (m *Model) focusEditorField() {
	m.titleInput.Blur()
	m.intervalInput.Blur()
	m.startInput.Blur()
	m.notesArea.Blur()
	switch m.Editor.Field {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldInterval:
		m.intervalInput.Focus()
	case FieldStart:
		m.startInput.Focus()
	case FieldNotes:
		m.notesArea.Focus()
	}
}

func (m Model) renderEditor() string {
	days := make([]time.Weekday, 0, len(m.Editor.Weekdays))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if m.Editor.Weekdays[wd] {
			days = append(days, wd)
		}
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		Creating:     m.Editor.Creating,
		TitleView:    m.titleInput.View(),
		Kind:         string(m.Editor.Kind),
		Weekdays:     days,
		WeekdayFocus: m.Editor.WeekdayFocus,
		IntervalText: m.intervalInput.View(),
		StartDay:     m.startInput.View(),
		NotesView:    m.notesArea.View(),
		NotesPreview: m.previewViewport.View(),
		Field:        string(m.Editor.Field),
		ErrorText:    m.Editor.Err,
	})
}

func cycleKind(current model.RecurrenceKind, step int) model.RecurrenceKind {
	for i, kind := range kindCycle {
		if kind == current {
			next := (i + step + len(kindCycle)) % len(kindCycle)
			return kindCycle[next]
		}
	}
	return kindCycle[0]
}
