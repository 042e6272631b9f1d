package views

import (
	"fmt"
	"strings"
	"time"
)

type TodayRowData struct {
	ID         string
	Title      string
	Recurrence string
	Done       bool
}

type TodayPanelData struct {
	Date       string
	ListView   string
	Rows       []TodayRowData
	SelectedID string
}

type OccurrenceRowData struct {
	ID         string
	Title      string
	Date       string
	Recurrence string
}

type UpcomingPanelData struct {
	TableView  string
	Rows       []OccurrenceRowData
	SelectedID string
}

type OverduePanelData struct {
	Rows       []OccurrenceRowData
	SelectedID string
}

type EditorPanelData struct {
	Creating     bool
	TitleView    string
	Kind         string
	Weekdays     []time.Weekday
	WeekdayFocus time.Weekday
	IntervalText string
	StartDay     string
	NotesView    string
	NotesPreview string
	Field        string
	ErrorText    string
}

type HelpPanelData struct {
	CurrentScreen string
	Bindings      []string
	HelpView      string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today %s:\n", data.Date))
	b.WriteString("actions: [j/k]move [space]toggle [a]add [e]edit [d]delete\n")
	if data.ListView != "" {
		b.WriteString(data.ListView + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("(nothing due today)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if data.SelectedID == row.ID {
			cursor = ">"
		}
		box := "[ ]"
		title := row.Title
		if row.Done {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%s)\n", cursor, box, title, row.Recurrence))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderUpcomingPanel(data UpcomingPanelData) string {
	var b strings.Builder
	b.WriteString("upcoming:\n")
	b.WriteString("actions: [j/k]move [e]edit [d]delete\n")
	if data.TableView != "" {
		b.WriteString(data.TableView + "\n")
	}
	writeOccurrenceRows(&b, data.Rows, data.SelectedID, "(nothing upcoming this year)")
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderOverduePanel(data OverduePanelData) string {
	var b strings.Builder
	b.WriteString("overdue:\n")
	b.WriteString("actions: [j/k]move [space]mark done [e]edit [d]delete\n")
	writeOccurrenceRows(&b, data.Rows, data.SelectedID, "(nothing overdue)")
	return strings.TrimSuffix(b.String(), "\n")
}

func writeOccurrenceRows(b *strings.Builder, rows []OccurrenceRowData, selectedID string, empty string) {
	if len(rows) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	lastDate := ""
	for _, row := range rows {
		if row.Date != lastDate {
			b.WriteString(fmt.Sprintf("\n%s:\n", row.Date))
			lastDate = row.Date
		}
		cursor := " "
		if selectedID == row.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, row.Title, row.Recurrence))
	}
}

func RenderEditorPanel(data EditorPanelData) string {
	var b strings.Builder
	if data.Creating {
		b.WriteString("new item:\n")
	} else {
		b.WriteString("edit item:\n")
	}
	b.WriteString("keys: [tab]field [enter]save [esc]cancel\n")
	b.WriteString(fieldLine(data.Field, "title", data.TitleView))
	b.WriteString(fieldLine(data.Field, "kind", data.Kind+" ([h/l]cycle)"))
	switch data.Kind {
	case "specific_days":
		b.WriteString(fieldLine(data.Field, "days", renderWeekdayPicker(data.Weekdays, data.WeekdayFocus, data.Field == "days")))
	case "every_n_days":
		b.WriteString(fieldLine(data.Field, "interval", data.IntervalText))
	}
	b.WriteString(fieldLine(data.Field, "start", data.StartDay))
	b.WriteString(fieldLine(data.Field, "notes", data.NotesView))
	if data.NotesPreview != "" {
		b.WriteString("preview:\n" + data.NotesPreview + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s screen:\n%s\n%s",
		strings.ToLower(data.CurrentScreen),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func fieldLine(focused, name, value string) string {
	cursor := " "
	if focused == name {
		cursor = ">"
	}
	return fmt.Sprintf("%s %s: %s\n", cursor, name, value)
}

func renderWeekdayPicker(selected []time.Weekday, focus time.Weekday, active bool) string {
	chosen := make(map[time.Weekday]bool, len(selected))
	for _, wd := range selected {
		chosen[wd] = true
	}
	parts := make([]string, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		label := wd.String()[:2]
		if chosen[wd] {
			label = strings.ToUpper(label)
		} else {
			label = strings.ToLower(label)
		}
		if active && wd == focus {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
