package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/add"
	"tableflip.dev/semana/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "add a task",
		Example: `
semana add "Reunión de equipo" --date 2025-06-11 --start 09:00 --end 10:00 -t trabajo
semana add Gimnasio --start 18:00 --end 19:00 -t salud --image ./rutina.png
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a task title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := add.Add{
				Title:       strings.Join(args, " "),
				Description: to.Description,
				Date:        to.Date,
				Start:       to.Start,
				End:         to.End,
				Tag:         to.Tag,
				Image:       to.Image,
				Store:       s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
