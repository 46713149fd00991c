package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/store"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// HandleResult renders a store result. Failures become errors so the process
// exits non-zero; in JSON mode the result is printed as-is instead.
func (o *OutputOptions) HandleResult(res store.Result) error {
	if o.JSON {
		b, err := json.Marshal(map[string]any{
			"success": res.Success,
			"message": res.Message,
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	if res.Success {
		if res.Message != "" {
			_, _ = color.New(color.FgGreen).Fprintln(color.Output, res.Message)
		}
		return nil
	}
	return errors.New(res.Message)
}
