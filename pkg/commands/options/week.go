package options

import (
	"github.com/spf13/cobra"
)

// WeekOptions
type WeekOptions struct {
	On  string
	All bool
}

func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		"Show the week containing this YYYY-MM-DD date. Defaults to today.")
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"List every task instead of a single week.")
}
