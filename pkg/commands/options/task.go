package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Description string
	Date        string
	Start       string
	End         string
	Tag         string
	Image       string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional task description.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Task date as YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&o.Start, "start", "09:00",
		"Start time as HH:MM.")
	cmd.Flags().StringVar(&o.End, "end", "10:00",
		"End time as HH:MM.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Task tag or one of its aliases. Defaults to Trabajo.")
	cmd.Flags().StringVar(&o.Image, "image", "",
		"Path to an image to attach to the task.")
}
