package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// MenuOptions holds flags for the menu command.
type MenuOptions struct {
	Format string // "text" | "json"
}

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MenuOptions{}

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

func runMenu(cmd *cobra.Command, rootOpts *RootOptions, opts *MenuOptions) error {
	rt, err := loadApp(rootOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	items := rt.catalog.Items()

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "text":
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tCOLOR\tSHAPE\tDISH\tPRICE")
		for _, it := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d TL\n", it.Category, it.Category.Color(), it.Shape, it.Name, it.Price)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("invalid format %q: must be json or text", opts.Format)
	}
}
