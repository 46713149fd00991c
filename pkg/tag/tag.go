// Package tag defines the fixed task categories and their display colors.
package tag

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tag is one of the fixed category labels used to color-code tasks.
type Tag string

const (
	Trabajo  Tag = "Trabajo"
	Personal Tag = "Personal"
	Descanso Tag = "Descanso"
	Estudio  Tag = "Estudio"
	Salud    Tag = "Salud"
)

// Info carries the presentation data for a tag. Background and Text are hex
// colors; Border is derived from Background (see DeriveBorder).
type Info struct {
	Background string
	Text       string
	Symbol     string
	Aliases    []string
}

// All returns every tag in display order.
func All() []Tag {
	return []Tag{Trabajo, Personal, Descanso, Estudio, Salud}
}

// Default is the tag preselected on a fresh task form.
func Default() Tag {
	return Trabajo
}

// DefaultInfos maps each tag to its presentation data.
func DefaultInfos() map[Tag]Info {
	return map[Tag]Info{
		Trabajo:  {Background: "#4CAF50", Text: "#FFFFFF", Symbol: "◼", Aliases: []string{"trabajo", "work", "t"}},
		Personal: {Background: "#2196F3", Text: "#FFFFFF", Symbol: "◼", Aliases: []string{"personal", "p"}},
		Descanso: {Background: "#FFC107", Text: "#000000", Symbol: "◼", Aliases: []string{"descanso", "rest", "d"}},
		Estudio:  {Background: "#9C27B0", Text: "#FFFFFF", Symbol: "◼", Aliases: []string{"estudio", "study", "e"}},
		Salud:    {Background: "#F44336", Text: "#FFFFFF", Symbol: "◼", Aliases: []string{"salud", "health", "s"}},
	}
}

// Info returns the presentation data for t, falling back to a neutral slate
// color for unknown tags so stray server values still render.
func (t Tag) Info() Info {
	if info, ok := DefaultInfos()[t]; ok {
		return info
	}
	return Info{Background: "#607D8B", Text: "#FFFFFF", Symbol: "◼"}
}

// Background returns the tag's background hex color.
func (t Tag) Background() string {
	return t.Info().Background
}

// Border returns the border hex color paired with the tag background.
func (t Tag) Border() string {
	return DeriveBorder(t.Info().Background)
}

// Text returns the foreground hex color readable on the tag background.
func (t Tag) Text() string {
	return t.Info().Text
}

func (t Tag) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	_, ok := DefaultInfos()[t]
	return ok
}

// Parse resolves a tag from its canonical name or one of its aliases.
func Parse(s string) (Tag, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return "", fmt.Errorf("tag is required")
	}
	for t, info := range DefaultInfos() {
		if strings.ToLower(string(t)) == needle {
			return t, nil
		}
		for _, alias := range info.Aliases {
			if alias == needle {
				return t, nil
			}
		}
	}
	return "", fmt.Errorf("unknown tag %q", s)
}

// DeriveBorder darkens a background hex color into its border pair. Invalid
// input yields the input unchanged.
func DeriveBorder(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l -= 0.12
	if l < 0 {
		l = 0
	}
	return colorful.Hsl(h, s, l).Hex()
}
