package signup

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/api"
	"tableflip.dev/semana/pkg/store"
)

type Signup struct {
	Name    string
	Email   string
	Phone   string
	Clave   string
	Confirm string

	Store *store.Store
}

func (n *Signup) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not signup, no store")
	}
	if n.Name == "" || n.Email == "" || n.Clave == "" {
		return errors.New("name, email and password are required")
	}
	if n.Confirm != "" && n.Clave != n.Confirm {
		return errors.New("las contraseñas no coinciden")
	}

	res := n.Store.Signup(ctx, api.Profile{
		Name:  n.Name,
		Email: n.Email,
		Phone: n.Phone,
		Clave: n.Clave,
	})
	if !res.Success {
		return errors.New(res.Message)
	}

	_, _ = fmt.Fprintln(color.Output, res.Message)
	_, _ = color.New(color.Faint).Fprintf(color.Output, "semana login -e %s\n", n.Email)
	return nil
}
