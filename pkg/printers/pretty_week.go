package printers

import (
	"sort"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
)

var dayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Week prints the seven days starting at the Monday of on's week, each with
// its tasks sorted by start time. Today's heading is bold.
func (pp *PrettyPrint) Week(on time.Time, tasks ...task.Task) {
	start := timeutil.StartOfWeek(on)
	today := on.Format(timeutil.LayoutISO)

	byDate := make(map[string][]task.Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	b := color.New(color.Bold, color.Underline)
	h := color.New(color.Underline)
	f := color.New(color.Faint)

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		iso := day.Format(timeutil.LayoutISO)

		printer := h
		if iso == today {
			printer = b
		}
		if pp.ShowID {
			_, _ = printer.Print(spacing)
		}
		_, _ = printer.Print(dayNames[i])
		_, _ = f.Printf(" %s\n", iso)

		list := byDate[iso]
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].Start < list[b].Start
		})
		pp.Tasks(list...)
	}
}
