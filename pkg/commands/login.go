package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/login"
	"tableflip.dev/semana/pkg/store"
)

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "log in and persist the session",
		Example: `
semana login -e ada@example.com
semana login -e ada@example.com -p secreto
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if co.Email == "" {
				email, err := promptLine("Email")
				if err != nil {
					return err
				}
				co.Email = email
			}
			if co.Clave == "" {
				clave, err := promptSecret("Password")
				if err != nil {
					return err
				}
				co.Clave = clave
			}

			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := login.Login{
				Email: co.Email,
				Clave: co.Clave,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
