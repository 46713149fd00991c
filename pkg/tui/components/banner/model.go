// Package banner renders the header greeting with a rotating phrase.
package banner

import (
	"math/rand"

	"tableflip.dev/semana/pkg/tui/theme"
)

var phrases = []string{
	"Organiza tu semana, conquista tus metas",
	"Un día a la vez",
	"Hoy es un buen día para empezar",
	"Pequeños pasos, grandes logros",
	"Tu tiempo, tus reglas",
	"Planifica hoy, disfruta mañana",
}

// Model holds the phrase chosen for this session.
type Model struct {
	theme  theme.HeaderTheme
	phrase string
}

// New picks a random phrase for the lifetime of the model.
func New(th theme.HeaderTheme) Model {
	return Model{
		theme:  th,
		phrase: phrases[rand.Intn(len(phrases))],
	}
}

// Phrase exposes the chosen phrase.
func (m Model) Phrase() string {
	return m.phrase
}

// View renders the styled phrase.
func (m Model) View() string {
	return m.theme.Phrase.Render(m.phrase)
}
