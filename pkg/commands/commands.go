package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/semana/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "semana",
		Short: base.Wrap80("Weekly task planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addSignup(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addDelete(topLevel)
	addTags(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
