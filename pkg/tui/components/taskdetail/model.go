// Package taskdetail renders a read-only view of one task with an inline
// delete confirmation.
package taskdetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

// Model holds the task being shown and the confirmation state.
type Model struct {
	id    events.ComponentID
	theme theme.ModalTheme

	task       task.Task
	confirming bool
}

// New constructs a detail model.
func New(id events.ComponentID, th theme.ModalTheme) *Model {
	return &Model{id: id, theme: th}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID {
	return m.id
}

// Open shows the given task and resets any pending confirmation.
func (m *Model) Open(t task.Task) {
	m.task = t
	m.confirming = false
}

// Task exposes the task currently shown.
func (m *Model) Task() task.Task {
	return m.task
}

// Confirming reports whether the delete confirmation is pending.
func (m *Model) Confirming() bool {
	return m.confirming
}

// Update handles detail keys. Esc is left to the root model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch key.String() {
		case "y", "Y", "enter":
			m.confirming = false
			return m, events.TaskDeleteCmd(m.id, m.task.ID)
		case "n", "N":
			m.confirming = false
		}
		return m, nil
	}

	switch key.String() {
	case "d", "x":
		m.confirming = true
	}
	return m, nil
}

// View renders the task as a modal.
func (m *Model) View() string {
	label := m.theme.Label.Render
	value := m.theme.Value.Render

	chip := theme.TagStyle(m.task.Tag).Render(" " + m.task.Tag.String() + " ")

	rows := []string{
		m.theme.Title.Render(m.task.Title),
		"",
		label("Fecha    ") + value(m.task.Date),
		label("Horario  ") + value(fmt.Sprintf("%s - %s", m.task.Start, m.task.End)),
		label("Etiqueta ") + chip,
	}
	if m.task.Description != "" {
		rows = append(rows, label("Detalle  ")+value(m.task.Description))
	}
	if m.task.ImageURL != "" {
		rows = append(rows, label("Imagen   ")+value(m.task.ImageURL))
	}
	rows = append(rows, "")
	if m.confirming {
		rows = append(rows, m.theme.Title.Render("¿Eliminar esta tarea? (y/n)"))
	} else {
		rows = append(rows, label("d eliminar · esc volver"))
	}
	return m.theme.Frame.Render(strings.Join(rows, "\n"))
}
