// Package taskform implements the create-task form: title, description, date,
// start and end times, a tag selector, and an optional image path.
//
// The form self-corrects instead of rejecting: a start time already in the
// past (for today) snaps forward to now, and an end time less than an hour
// after the start snaps to start plus one hour. Submission with missing
// required fields is silently ignored; the form simply stays open.
package taskform

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldStart
	fieldEnd
	fieldTag
	fieldImage
	fieldCount
)

const (
	defaultStart = "09:00"
	defaultEnd   = "10:00"
)

// Model holds the form state.
type Model struct {
	id    events.ComponentID
	theme theme.ModalTheme
	now   func() time.Time

	inputs []textinput.Model
	focus  int
	tagIdx int
}

// New constructs a form. now is injectable so corrections are testable.
func New(id events.ComponentID, th theme.ModalTheme, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Título"
	inputs[fieldDescription].Placeholder = "Descripción (opcional)"
	inputs[fieldDate].Placeholder = timeutil.LayoutISO
	inputs[fieldStart].Placeholder = defaultStart
	inputs[fieldEnd].Placeholder = defaultEnd
	inputs[fieldImage].Placeholder = "ruta de imagen (opcional)"

	return &Model{
		id:     id,
		theme:  th,
		now:    now,
		inputs: inputs,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID {
	return m.id
}

// Open resets every field to its default, preset to the given slot. An empty
// date means today; an empty start keeps the default.
func (m *Model) Open(date, start string) {
	now := m.now()
	if date == "" {
		date = timeutil.Today(now)
	}
	if start == "" {
		start = defaultStart
	}

	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldDate].SetValue(date)
	m.inputs[fieldStart].SetValue(start)
	m.tagIdx = 0

	m.applyCorrections()
	m.setFocus(fieldTitle)
}

// Draft builds the current (corrected) draft from the form fields.
func (m *Model) Draft() task.Draft {
	d := task.Draft{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Date:        strings.TrimSpace(m.inputs[fieldDate].Value()),
		Start:       strings.TrimSpace(m.inputs[fieldStart].Value()),
		End:         strings.TrimSpace(m.inputs[fieldEnd].Value()),
		Tag:         tag.All()[m.tagIdx],
	}
	return m.corrected(d)
}

// ImagePath returns the optional local image path.
func (m *Model) ImagePath() string {
	return strings.TrimSpace(m.inputs[fieldImage].Value())
}

// Update handles form key events.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		if m.focus != fieldImage && m.focus != fieldEnd {
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		}
		return m, m.submit()
	case "ctrl+s":
		return m, m.submit()
	}

	if m.focus == fieldTag {
		switch key.String() {
		case "left", "h":
			m.tagIdx = (m.tagIdx + len(tag.All()) - 1) % len(tag.All())
		case "right", "l", " ":
			m.tagIdx = (m.tagIdx + 1) % len(tag.All())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.focus == fieldDate || m.focus == fieldStart || m.focus == fieldEnd {
		m.applyCorrections()
	}
	return m, cmd
}

// submit emits the draft, or nothing when required fields are missing.
func (m *Model) submit() tea.Cmd {
	d := m.Draft()
	if err := d.Validate(); err != nil {
		// Incomplete forms are silently held open rather than alerting.
		return nil
	}
	return events.TaskSubmitCmd(m.id, d, m.ImagePath())
}

// applyCorrections rewrites the time fields in place so the user sees the
// snapped values while still editing.
func (m *Model) applyCorrections() {
	d := task.Draft{
		Date:  strings.TrimSpace(m.inputs[fieldDate].Value()),
		Start: strings.TrimSpace(m.inputs[fieldStart].Value()),
		End:   strings.TrimSpace(m.inputs[fieldEnd].Value()),
	}
	c := m.corrected(d)
	if c.Start != d.Start {
		m.inputs[fieldStart].SetValue(c.Start)
	}
	if c.End != d.End {
		m.inputs[fieldEnd].SetValue(c.End)
	}
}

func (m *Model) corrected(d task.Draft) task.Draft {
	now := m.now()

	if d.Date == timeutil.Today(now) {
		if c, err := timeutil.ParseClock(d.Start); err == nil {
			nc := timeutil.ClockOf(now)
			if c.Before(nc) {
				d.Start = nc.String()
			}
		}
	}

	if s, err := timeutil.ParseClock(d.Start); err == nil {
		e, err := timeutil.ParseClock(d.End)
		if err != nil || e.Minutes() < s.Minutes()+timeutil.MinTaskMinutes {
			d.End = s.AddMinutes(timeutil.MinTaskMinutes).String()
		}
	}
	return d
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// View renders the form as a modal.
func (m *Model) View() string {
	label := m.theme.Label.Render

	rows := []string{
		m.theme.Title.Render("Nueva tarea"),
		"",
		label("Título      ") + m.inputs[fieldTitle].View(),
		label("Descripción ") + m.inputs[fieldDescription].View(),
		label("Fecha       ") + m.inputs[fieldDate].View(),
		label("Inicio      ") + m.inputs[fieldStart].View(),
		label("Fin         ") + m.inputs[fieldEnd].View(),
		label("Etiqueta    ") + m.renderTags(),
		label("Imagen      ") + m.inputs[fieldImage].View(),
		"",
		m.theme.Label.Render("enter/ctrl+s guardar · esc cancelar"),
	}
	return m.theme.Frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderTags() string {
	var cols []string
	for i, t := range tag.All() {
		name := " " + t.String() + " "
		if i == m.tagIdx {
			style := theme.TagStyle(t).Bold(true)
			if m.focus == fieldTag {
				style = style.Underline(true)
			}
			cols = append(cols, style.Render(name))
		} else {
			cols = append(cols, m.theme.Label.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
