package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/semana/pkg/tag"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Footer FooterTheme
	Grid   GridTheme
	Modal  ModalTheme
}

// HeaderTheme styles the top navigation bar.
type HeaderTheme struct {
	Bar    lipgloss.Style
	Brand  lipgloss.Style
	Phrase lipgloss.Style
	Avatar lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Session lipgloss.Style
}

// GridTheme styles the weekly calendar surface.
type GridTheme struct {
	HourLabel   lipgloss.Style
	DayHeader   lipgloss.Style
	TodayHeader lipgloss.Style
	EmptyCell   lipgloss.Style
	Cursor      lipgloss.Style
}

// ModalTheme styles centered overlays (forms, task detail).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Brand:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Phrase: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Avatar: lipgloss.NewStyle().
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("212")).
				Bold(true).
				Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Session: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Grid: GridTheme{
			HourLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			DayHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Underline(true),
			TodayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
			EmptyCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Cursor:      lipgloss.NewStyle().Reverse(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value: lipgloss.NewStyle(),
		},
	}
}

// TagStyle renders text on the tag's background color.
func TagStyle(t tag.Tag) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Text())).
		Background(lipgloss.Color(t.Background()))
}

// TagBorderStyle colors a border with the tag's derived border color.
func TagBorderStyle(t tag.Tag) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border()))
}
