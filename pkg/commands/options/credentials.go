package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions
type CredentialOptions struct {
	Email string
	Clave string
}

func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email address.")
	cmd.Flags().StringVarP(&o.Clave, "password", "p", "",
		"Account password.")
}

// ProfileOptions
type ProfileOptions struct {
	Name    string
	Email   string
	Phone   string
	Clave   string
	Confirm string
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Full name for the new account.")
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Email address for the new account.")
	cmd.Flags().StringVar(&o.Phone, "phone", "",
		"Optional phone number.")
	cmd.Flags().StringVarP(&o.Clave, "password", "p", "",
		"Password for the new account.")
	cmd.Flags().StringVar(&o.Confirm, "confirm", "",
		"Password confirmation. Must match --password.")
}
