// Package events defines the typed messages exchanged between TUI components
// and the root model.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/semana/pkg/task"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// AlertLevel classifies a transient user-facing notification.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertSuccess
	AlertError
)

func (l AlertLevel) String() string {
	switch l {
	case AlertSuccess:
		return "success"
	case AlertError:
		return "error"
	default:
		return "info"
	}
}

// AlertMsg carries a transient notification for the status bar. Every surface
// reports outcomes through this single message type.
type AlertMsg struct {
	Component ComponentID
	Level     AlertLevel
	Text      string
}

// Describe renders the alert in a human-friendly format for logs.
func (m AlertMsg) Describe() string {
	return fmt.Sprintf(`level:%q text:%q`, m.Level, m.Text)
}

// AlertCmd wraps AlertMsg in a tea.Cmd helper.
func AlertCmd(component ComponentID, level AlertLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return AlertMsg{Component: component, Level: level, Text: text}
	}
}

// DateSelectMsg is emitted when the user activates an empty calendar slot,
// asking the root model to open the create form preset to that date and hour.
type DateSelectMsg struct {
	Component ComponentID
	Date      string
	Start     string
}

// Describe renders the selection for logs.
func (m DateSelectMsg) Describe() string {
	return fmt.Sprintf(`date:%q start:%q`, m.Date, m.Start)
}

// DateSelectCmd wraps DateSelectMsg in a tea.Cmd helper.
func DateSelectCmd(component ComponentID, date, start string) tea.Cmd {
	return func() tea.Msg {
		return DateSelectMsg{Component: component, Date: date, Start: start}
	}
}

// TaskSelectMsg is emitted when the user activates an occupied calendar slot,
// asking the root model to open the detail view for that task.
type TaskSelectMsg struct {
	Component ComponentID
	Task      task.Task
}

// Describe renders the selection for logs.
func (m TaskSelectMsg) Describe() string {
	return fmt.Sprintf(`id:%d title:%q`, m.Task.ID, m.Task.Title)
}

// TaskSelectCmd wraps TaskSelectMsg in a tea.Cmd helper.
func TaskSelectCmd(component ComponentID, t task.Task) tea.Cmd {
	return func() tea.Msg {
		return TaskSelectMsg{Component: component, Task: t}
	}
}

// TaskSubmitMsg is emitted when the create form is submitted with a valid
// draft. ImagePath is a local file to upload before saving, or empty.
type TaskSubmitMsg struct {
	Component ComponentID
	Draft     task.Draft
	ImagePath string
}

// Describe renders the submission for logs.
func (m TaskSubmitMsg) Describe() string {
	return fmt.Sprintf(`title:%q date:%q %s-%s tag:%q`,
		m.Draft.Title, m.Draft.Date, m.Draft.Start, m.Draft.End, m.Draft.Tag)
}

// TaskSubmitCmd wraps TaskSubmitMsg in a tea.Cmd helper.
func TaskSubmitCmd(component ComponentID, d task.Draft, imagePath string) tea.Cmd {
	return func() tea.Msg {
		return TaskSubmitMsg{Component: component, Draft: d, ImagePath: imagePath}
	}
}

// TaskDeleteMsg is emitted when the user confirms deletion in the detail view.
type TaskDeleteMsg struct {
	Component ComponentID
	ID        int
}

// Describe renders the deletion for logs.
func (m TaskDeleteMsg) Describe() string {
	return fmt.Sprintf(`id:%d`, m.ID)
}

// TaskDeleteCmd wraps TaskDeleteMsg in a tea.Cmd helper.
func TaskDeleteCmd(component ComponentID, id int) tea.Cmd {
	return func() tea.Msg {
		return TaskDeleteMsg{Component: component, ID: id}
	}
}

// AuthMode distinguishes the two auth form variants.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthSignup
)

func (m AuthMode) String() string {
	if m == AuthSignup {
		return "signup"
	}
	return "login"
}

// AuthSubmitMsg is emitted when an auth form is submitted with complete
// fields. For AuthLogin only Email and Clave are set.
type AuthSubmitMsg struct {
	Component ComponentID
	Mode      AuthMode
	Name      string
	Email     string
	Phone     string
	Clave     string
}

// Describe renders the submission for logs without leaking the password.
func (m AuthSubmitMsg) Describe() string {
	return fmt.Sprintf(`mode:%q email:%q`, m.Mode, m.Email)
}

// AuthSubmitCmd wraps AuthSubmitMsg in a tea.Cmd helper.
func AuthSubmitCmd(component ComponentID, mode AuthMode, name, email, phone, clave string) tea.Cmd {
	return func() tea.Msg {
		return AuthSubmitMsg{
			Component: component,
			Mode:      mode,
			Name:      name,
			Email:     email,
			Phone:     phone,
			Clave:     clave,
		}
	}
}
