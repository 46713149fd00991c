package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	del "tableflip.dev/semana/pkg/runner/delete"
	"tableflip.dev/semana/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete a task by id",
		Example: `
semana delete 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one task id, got %d args", len(args))
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := del.Delete{ID: id, Store: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
