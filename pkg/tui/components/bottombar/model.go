// Package bottombar renders the footer line that carries contextual help, the
// latest alert, and the session segment. It is the single surface through
// which operation outcomes reach the user.
package bottombar

import (
	"strings"

	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

// Model tracks footer rendering state.
type Model struct {
	theme theme.FooterTheme

	helpLine   string
	alertLevel events.AlertLevel
	alertText  string
	session    string
}

// New returns a footer model styled with the given theme.
func New(th theme.FooterTheme) Model {
	return Model{theme: th}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetAlert replaces the visible alert. Later alerts overwrite earlier ones,
// read or not.
func (m *Model) SetAlert(level events.AlertLevel, text string) {
	m.alertLevel = level
	m.alertText = text
}

// ClearAlert removes the visible alert.
func (m *Model) ClearAlert() {
	m.alertText = ""
	m.alertLevel = events.AlertInfo
}

// SetSession sets the session segment, typically the user's name. An empty
// value hides the segment.
func (m *Model) SetSession(name string) {
	m.session = name
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	return 1
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	var segments []string
	if m.alertText != "" {
		style := m.theme.Status
		switch m.alertLevel {
		case events.AlertSuccess:
			style = m.theme.Success
		case events.AlertError:
			style = m.theme.Error
		}
		segments = append(segments, style.Render(m.alertText))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Help.Render(m.helpLine))
	}
	if m.session != "" {
		segments = append(segments, m.theme.Session.Render(m.session))
	}
	if len(segments) == 0 {
		return " ", 1
	}
	return strings.Join(segments, " │ "), 1
}
