package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/store"
)

type Login struct {
	Email string
	Clave string

	Store *store.Store
}

func (n *Login) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not login, no store")
	}
	if n.Email == "" || n.Clave == "" {
		return errors.New("email and password are required")
	}

	res := n.Store.Login(ctx, n.Email, n.Clave)
	if !res.Success {
		return errors.New(res.Message)
	}

	if u := n.Store.User(); u != nil {
		_, _ = fmt.Fprintf(color.Output, "Hola, %s\n", color.New(color.Bold).Sprint(u.Name))
	} else {
		_, _ = fmt.Fprintln(color.Output, res.Message)
	}
	return nil
}
