package ui

import (
	"context"
	"errors"

	"tableflip.dev/semana/pkg/store"
	teaui "tableflip.dev/semana/pkg/tui/app"
)

type UI struct {
	Store *store.Store
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not open the ui, no store")
	}
	return teaui.Run(u.Store)
}
