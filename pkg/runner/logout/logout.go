package logout

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/store"
)

type Logout struct {
	Store *store.Store
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not logout, no store")
	}
	n.Store.RestoreSession()

	res := n.Store.Logout()
	if !res.Success {
		return errors.New(res.Message)
	}
	_, _ = fmt.Fprintln(color.Output, res.Message)
	return nil
}
