// Package weekgrid renders the weekly calendar: seven day columns by the
// planning hours of the day, with tasks projected onto the slots they cover.
package weekgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

const (
	// FirstHour is the earliest slot shown on the grid.
	FirstHour = 6
	// LastHour bounds the grid; the final slot runs until this hour.
	LastHour = 22
)

var dayNames = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// Model holds the calendar state. The cursor addresses one day/hour slot.
type Model struct {
	id    events.ComponentID
	theme theme.GridTheme

	weekStart time.Time
	today     string
	tasks     map[string][]task.Task

	cursorDay  int
	cursorHour int

	width   int
	focused bool
}

// New creates a grid showing the week containing now.
func New(id events.ComponentID, th theme.GridTheme, now time.Time) *Model {
	m := &Model{
		id:         id,
		theme:      th,
		tasks:      make(map[string][]task.Task),
		cursorHour: FirstHour,
	}
	m.today = timeutil.Today(now)
	m.SetWeek(now)
	m.cursorDay = int(now.Weekday()+6) % 7
	if h := now.Hour(); h >= FirstHour && h < LastHour {
		m.cursorHour = h
	}
	return m
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID {
	return m.id
}

// SetWeek moves the grid to the week containing on.
func (m *Model) SetWeek(on time.Time) {
	m.weekStart = timeutil.StartOfWeek(on)
}

// ShiftWeek moves the grid by n weeks.
func (m *Model) ShiftWeek(n int) {
	m.weekStart = m.weekStart.AddDate(0, 0, 7*n)
}

// WeekStart exposes the Monday currently shown.
func (m *Model) WeekStart() time.Time {
	return m.weekStart
}

// SetWidth sets the total rendering width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetFocused toggles cursor rendering.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetTasks replaces the projected task list. Tasks outside the shown week are
// kept; projection is by date at render time.
func (m *Model) SetTasks(tasks []task.Task) {
	byDate := make(map[string][]task.Task, len(tasks))
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	m.tasks = byDate
}

// CursorDate returns the ISO date under the cursor.
func (m *Model) CursorDate() string {
	return m.weekStart.AddDate(0, 0, m.cursorDay).Format(timeutil.LayoutISO)
}

// CursorStart returns the HH:MM start of the slot under the cursor.
func (m *Model) CursorStart() string {
	return fmt.Sprintf("%02d:00", m.cursorHour)
}

// TaskAt returns the task covering the given day column and hour row, if any.
// A task covers the slots from its start hour up to, but not including, its
// end hour; a task ending on a half hour still occupies that final slot.
func (m *Model) TaskAt(day, hour int) (task.Task, bool) {
	date := m.weekStart.AddDate(0, 0, day).Format(timeutil.LayoutISO)
	for _, t := range m.tasks[date] {
		start, err := timeutil.ParseClock(t.Start)
		if err != nil {
			continue
		}
		end, err := timeutil.ParseClock(t.End)
		if err != nil {
			continue
		}
		lastHour := end.Hour
		if end.Minute == 0 {
			lastHour--
		}
		if hour >= start.Hour && hour <= lastHour {
			return t, true
		}
	}
	return task.Task{}, false
}

// Update handles cursor movement and slot activation.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		if m.cursorDay > 0 {
			m.cursorDay--
		} else {
			m.cursorDay = 6
			m.ShiftWeek(-1)
		}
	case "right", "l":
		if m.cursorDay < 6 {
			m.cursorDay++
		} else {
			m.cursorDay = 0
			m.ShiftWeek(1)
		}
	case "up", "k":
		if m.cursorHour > FirstHour {
			m.cursorHour--
		}
	case "down", "j":
		if m.cursorHour < LastHour-1 {
			m.cursorHour++
		}
	case "[":
		m.ShiftWeek(-1)
	case "]":
		m.ShiftWeek(1)
	case "t":
		now := time.Now()
		m.SetWeek(now)
		m.cursorDay = int(now.Weekday()+6) % 7
	case "enter":
		if t, ok := m.TaskAt(m.cursorDay, m.cursorHour); ok {
			return m, events.TaskSelectCmd(m.id, t)
		}
		return m, events.DateSelectCmd(m.id, m.CursorDate(), m.CursorStart())
	}
	return m, nil
}

// View renders the grid.
func (m *Model) View() string {
	cellWidth := m.cellWidth()

	var b strings.Builder
	b.WriteString(m.renderHeader(cellWidth))
	b.WriteString("\n")

	for hour := FirstHour; hour < LastHour; hour++ {
		b.WriteString(m.theme.HourLabel.Render(fmt.Sprintf("%02d:00", hour)))
		b.WriteString(" ")
		for day := 0; day < 7; day++ {
			b.WriteString(m.renderCell(day, hour, cellWidth))
			if day < 6 {
				b.WriteString(" ")
			}
		}
		if hour < LastHour-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderHeader(cellWidth int) string {
	var cols []string
	cols = append(cols, strings.Repeat(" ", len("06:00")))
	for day := 0; day < 7; day++ {
		date := m.weekStart.AddDate(0, 0, day)
		label := fmt.Sprintf("%s %d", dayNames[day], date.Day())
		style := m.theme.DayHeader
		if date.Format(timeutil.LayoutISO) == m.today {
			style = m.theme.TodayHeader
		}
		cols = append(cols, style.Render(pad(label, cellWidth)))
	}
	return strings.Join(cols, " ")
}

func (m *Model) renderCell(day, hour, cellWidth int) string {
	underCursor := m.focused && day == m.cursorDay && hour == m.cursorHour

	t, ok := m.TaskAt(day, hour)
	if !ok {
		content := pad("·", cellWidth)
		if underCursor {
			return m.theme.Cursor.Render(content)
		}
		return m.theme.EmptyCell.Render(content)
	}

	start, _ := timeutil.ParseClock(t.Start)
	var content string
	if hour == start.Hour {
		content = pad(t.Title, cellWidth)
	} else {
		content = pad("│", cellWidth)
	}
	style := theme.TagStyle(t.Tag)
	if underCursor {
		style = style.Reverse(true)
	}
	return style.Render(content)
}

func (m *Model) cellWidth() int {
	labels := len("06:00") + 7 // hour label plus the gaps
	w := (m.width - labels) / 7
	if w < 6 {
		w = 6
	}
	if w > 18 {
		w = 18
	}
	return w
}

// pad clips or space-fills s to width, rune aware.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
