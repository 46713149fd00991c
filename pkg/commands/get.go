package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/get"
	"tableflip.dev/semana/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get the week's tasks",
		Long:  "Get the tasks for a week, or every task with --all.",
		Example: `
semana get
semana get --on 2025-06-11
semana get --all --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := get.Get{
				ShowID: io.ShowID,
				On:     wo.On,
				All:    wo.All,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWeekArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
