package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1234  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" tarea")
	default:
		_, _ = c.Println(" tareas")
	}
}

// Tasks prints one line per task: start-end, a tag marker, title, and a faint
// description when one exists.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, e := range tasks {
		if pp.ShowID {
			id := fmt.Sprintf("%d", e.ID)
			_, _ = y.Print(id)
			if pad := len(spacing) - len(id); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s-%s ", e.Start, e.End)
		_, _ = tagColor(e.Tag).Print(e.Tag.Info().Symbol)
		_, _ = t.Printf(" %s", e.Title)
		if e.Description != "" {
			_, _ = d.Printf("  %s", e.Description)
		}
		if e.ImageURL != "" {
			_, _ = d.Print("  [img]")
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// tagColor maps a tag to the closest terminal color; hex fidelity belongs to
// the TUI, the CLI only needs the family.
func tagColor(tg tag.Tag) *color.Color {
	switch tg {
	case tag.Trabajo:
		return color.New(color.FgGreen)
	case tag.Personal:
		return color.New(color.FgBlue)
	case tag.Descanso:
		return color.New(color.FgYellow)
	case tag.Estudio:
		return color.New(color.FgMagenta)
	case tag.Salud:
		return color.New(color.FgRed)
	}
	return color.New(color.FgWhite)
}
