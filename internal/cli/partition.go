package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/pipeline"
)

// validateCommand checks that its argument is a partition.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <partition>",
		Short: "Check that a list of parts is a partition",
		Long: `Check that a comma-separated list of positive integers is non-increasing.

Example:
  domino validate 4,2,2,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "%s is a partition", StyleHighlight.Render(p.String()))
			printDetail(w, "%d parts, %d boxes", len(p), p.Size())
			return nil
		},
	}
}

// transposeCommand prints the conjugate partition.
func (c *CLI) transposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <partition>",
		Short: "Print the transposed partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			opts := c.options()
			opts.SetDefaults()
			if err := pipeline.CheckCells(opts.MaxCells, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), partition.Transpose(p))
			return nil
		},
	}
}
