// Package authform implements the login and signup forms.
package authform

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldClave
	fieldConfirm
	fieldCount
)

// Model holds the form state for either auth variant.
type Model struct {
	id    events.ComponentID
	theme theme.ModalTheme

	mode   events.AuthMode
	inputs []textinput.Model
	focus  int
}

// New constructs an auth form in login mode.
func New(id events.ComponentID, th theme.ModalTheme) *Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldName].Placeholder = "Nombre"
	inputs[fieldEmail].Placeholder = "Email"
	inputs[fieldPhone].Placeholder = "Teléfono (opcional)"
	inputs[fieldClave].Placeholder = "Contraseña"
	inputs[fieldClave].EchoMode = textinput.EchoPassword
	inputs[fieldConfirm].Placeholder = "Confirmar contraseña"
	inputs[fieldConfirm].EchoMode = textinput.EchoPassword

	return &Model{id: id, theme: th, inputs: inputs}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID {
	return m.id
}

// Mode reports which variant is open.
func (m *Model) Mode() events.AuthMode {
	return m.mode
}

// Open resets the form for the given variant.
func (m *Model) Open(mode events.AuthMode) {
	m.mode = mode
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	if mode == events.AuthSignup {
		m.setFocus(fieldName)
	} else {
		m.setFocus(fieldEmail)
	}
}

// fields returns the focusable field order for the current mode.
func (m *Model) fields() []int {
	if m.mode == events.AuthSignup {
		return []int{fieldName, fieldEmail, fieldPhone, fieldClave, fieldConfirm}
	}
	return []int{fieldEmail, fieldClave}
}

// Update handles form key events.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	order := m.fields()
	pos := 0
	for i, f := range order {
		if f == m.focus {
			pos = i
			break
		}
	}

	switch key.String() {
	case "tab", "down":
		m.setFocus(order[(pos+1)%len(order)])
		return m, nil
	case "shift+tab", "up":
		m.setFocus(order[(pos+len(order)-1)%len(order)])
		return m, nil
	case "enter":
		if pos < len(order)-1 {
			m.setFocus(order[pos+1])
			return m, nil
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates and emits the credentials, or an error alert.
func (m *Model) submit() tea.Cmd {
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	clave := m.inputs[fieldClave].Value()

	if m.mode == events.AuthSignup {
		name := strings.TrimSpace(m.inputs[fieldName].Value())
		if name == "" || email == "" || clave == "" {
			return events.AlertCmd(m.id, events.AlertError, "Completa los campos obligatorios")
		}
		if clave != m.inputs[fieldConfirm].Value() {
			return events.AlertCmd(m.id, events.AlertError, "Las contraseñas no coinciden")
		}
		phone := strings.TrimSpace(m.inputs[fieldPhone].Value())
		return events.AuthSubmitCmd(m.id, events.AuthSignup, name, email, phone, clave)
	}

	if email == "" || clave == "" {
		return events.AlertCmd(m.id, events.AlertError, "Completa email y contraseña")
	}
	return events.AuthSubmitCmd(m.id, events.AuthLogin, "", email, "", clave)
}

// View renders the form as a modal.
func (m *Model) View() string {
	label := m.theme.Label.Render

	title := "Iniciar sesión"
	if m.mode == events.AuthSignup {
		title = "Crear cuenta"
	}

	rows := []string{m.theme.Title.Render(title), ""}
	if m.mode == events.AuthSignup {
		rows = append(rows,
			label("Nombre     ")+m.inputs[fieldName].View(),
			label("Email      ")+m.inputs[fieldEmail].View(),
			label("Teléfono   ")+m.inputs[fieldPhone].View(),
			label("Contraseña ")+m.inputs[fieldClave].View(),
			label("Confirmar  ")+m.inputs[fieldConfirm].View(),
		)
	} else {
		rows = append(rows,
			label("Email      ")+m.inputs[fieldEmail].View(),
			label("Contraseña ")+m.inputs[fieldClave].View(),
		)
	}
	rows = append(rows, "", label("enter continuar · esc volver"))
	return m.theme.Frame.Render(strings.Join(rows, "\n"))
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
