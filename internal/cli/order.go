package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/order"
)

// OrderOptions holds flags for the order command.
type OrderOptions struct {
	AnnotatePath string
}

// NewOrderCommand creates the order command.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{}

	cmd := &cobra.Command{
		Use:   "order <image>",
		Short: "Recognize, validate and confirm the order in a photo",
		Long: `Recognize the tokens in a photo, print the order summary and either the
rule violations or a confirmation prompt. The answer is read from stdin;
"yes" confirms, anything else cancels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.AnnotatePath, "annotate", "a", "", "write the photo with dish labels to this file")

	return cmd
}

func runOrder(cmd *cobra.Command, rootOpts *RootOptions, opts *OrderOptions, path string) error {
	rt, err := loadApp(rootOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		rt.logger.Debug("image load failed", "path", path, "error", err)
		fmt.Fprintf(cmd.OutOrStdout(), "Error: Unable to load image from '%s'.\n", path)
		return errReported
	}

	flow := order.NewFlow(rt.catalog, cmd.OutOrStdout(), order.NewLineConfirmer(cmd.InOrStdin()), rt.flowOptions()...)
	res, err := flow.Process(cmd.Context(), rt.regionDetector(), img)
	if err != nil {
		return err
	}

	if opts.AnnotatePath != "" {
		annotated := imaging.Annotate(img, imaging.OrderLabels(res.Order), rt.annotate)
		if err := imaging.Save(annotated, opts.AnnotatePath); err != nil {
			return err
		}
		rt.logger.Info("annotated image written", "path", opts.AnnotatePath, "run_id", res.RunID)
	}
	return nil
}
