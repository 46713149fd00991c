package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "show the tag legend",
		Example: `
semana tags
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := tags.Tags{}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
