// Package tags provides the CLI legend for task categories.
package tags

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/semana/pkg/tag"
)

// Tags prints the category legend describing each tag and its aliases.
type Tags struct{}

// Do renders the tag key to stdout.
func (k *Tags) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Color"), bold.Sprint("Aliases"))
	for _, t := range tag.All() {
		info := t.Info()
		tbl.AddRow(t.String(), info.Background, strings.Join(info.Aliases, ", "))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
