package delete

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/store"
)

type Delete struct {
	ID int

	Store *store.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}
	if n.ID <= 0 {
		return fmt.Errorf("invalid task id %d", n.ID)
	}
	n.Store.RestoreSession()

	res := n.Store.DeleteTask(ctx, n.ID)
	if !res.Success {
		return errors.New(res.Message)
	}
	_, _ = fmt.Fprintln(color.Output, res.Message)
	return nil
}
