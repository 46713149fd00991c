package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
)

type Add struct {
	Title       string
	Description string
	Date        string
	Start       string
	End         string
	Tag         string
	Image       string

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	n.Store.RestoreSession()

	d, err := n.draft()
	if err != nil {
		return err
	}

	res := n.Store.CreateTask(ctx, d, n.Image)
	if !res.Success {
		return errors.New(res.Message)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(d.Date)
	if all := n.Store.Tasks(); len(all) > 0 {
		pp.Tasks(all[len(all)-1])
	}
	return nil
}

func (n *Add) draft() (task.Draft, error) {
	d := task.Draft{
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		Start:       n.Start,
		End:         n.End,
		Tag:         tag.Default(),
	}
	if d.Date == "" || d.Date == "today" || d.Date == "hoy" {
		d.Date = timeutil.Today(time.Now())
	}
	if n.Tag != "" {
		tg, err := tag.Parse(n.Tag)
		if err != nil {
			return task.Draft{}, err
		}
		d.Tag = tg
	}
	return d, d.Validate()
}
