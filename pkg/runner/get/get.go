package get

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
)

type Get struct {
	ShowID bool
	On     string
	All    bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	n.Store.RestoreSession()

	res := n.Store.GetTasks(ctx)
	if !res.Success {
		return errors.New(res.Message)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	tasks := n.Store.Tasks()
	if n.All {
		sortTasks(tasks)
		pp.TitleWithCount("Tareas", len(tasks))
		pp.Tasks(tasks...)
		return nil
	}

	on := time.Now()
	if n.On != "" {
		var err error
		on, err = timeutil.ParseDate(n.On)
		if err != nil {
			return err
		}
	}
	pp.Week(on, tasks...)
	return nil
}

func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		return tasks[i].Start < tasks[j].Start
	})
}
