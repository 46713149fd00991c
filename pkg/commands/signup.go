package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/signup"
	"tableflip.dev/semana/pkg/store"
)

func addSignup(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "register a new account",
		Example: `
semana signup -n "Ada Lovelace" -e ada@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if po.Name == "" {
				name, err := promptLine("Name")
				if err != nil {
					return err
				}
				po.Name = name
			}
			if po.Email == "" {
				email, err := promptLine("Email")
				if err != nil {
					return err
				}
				po.Email = email
			}
			if po.Clave == "" {
				clave, err := promptSecret("Password")
				if err != nil {
					return err
				}
				confirm, err := promptSecret("Confirm password")
				if err != nil {
					return err
				}
				po.Clave = clave
				po.Confirm = confirm
			}

			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := signup.Signup{
				Name:    po.Name,
				Email:   po.Email,
				Phone:   po.Phone,
				Clave:   po.Clave,
				Confirm: po.Confirm,
				Store:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, po)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
