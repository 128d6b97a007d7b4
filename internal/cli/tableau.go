package cli

import (
	"strings"

	"github.com/spf13/cobra"

	tabio "github.com/matzehuels/domino/pkg/io"
	"github.com/matzehuels/domino/pkg/pipeline"
	"github.com/matzehuels/domino/pkg/tableau"
)

var tableauFormats = strings.Join(pipeline.TableauFormats, ", ")

// diagramCommand draws the Young diagram of a partition.
func (c *CLI) diagramCommand() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "diagram <partition>",
		Short: "Draw the Young diagram of a partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd, c.newRunner(nil), tableau.Diagram(p), &flags)
		},
	}
	flags.register(cmd, tableauFormats)
	return cmd
}

// fillCommand tiles a partition with boxes and dominoes.
func (c *CLI) fillCommand() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "fill <partition>",
		Short: "Tile a shape with 2×2 boxes and dominoes",
		Long: `Tile the shape of a partition with fixed 2×2 boxes and dominoes.

The shape must be the shape of a domino tableau: its corners and holes must
pair up. Shapes that do not are reported as not domino-tileable.

Examples:
  domino fill 4,2
  domino fill 6,4,2,2 -f svg --labels -o fill.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			r := c.newRunner(nil)
			res, err := r.Fill(contextOf(cmd), p, c.options())
			if err != nil {
				return err
			}
			if flags.format == pipeline.FormatText {
				printStats(cmd.ErrOrStderr(), res.Boxes, res.Dominoes, res.Stats)
			}
			return c.emit(cmd, r, res.Tableau, &flags)
		},
	}
	flags.register(cmd, tableauFormats)
	return cmd
}

// combineCommand builds the type-D tableau of two diagrams.
func (c *CLI) combineCommand() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "combine <left> <right>",
		Short: "Combine two Young diagrams into a type-D tableau",
		Long: `Combine the diagrams of two partitions into one type-D tableau.

Cells the diagrams share become 2×2 boxes; the rest of each diagram is laid
out as a strip of dominoes along the right (for right) or bottom (for left)
border.

Example:
  domino combine 3,1 2,2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			right, err := pipeline.ParsePartition(args[1])
			if err != nil {
				return err
			}
			r := c.newRunner(nil)
			res, err := r.Combine(contextOf(cmd), left, right, c.options())
			if err != nil {
				return err
			}
			if flags.format == pipeline.FormatText {
				printStats(cmd.ErrOrStderr(), res.Boxes, res.Dominoes, res.Stats)
			}
			return c.emit(cmd, r, res.Tableau, &flags)
		},
	}
	flags.register(cmd, tableauFormats)
	return cmd
}

// renderCommand draws a tableau saved with --format json.
func (c *CLI) renderCommand() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "render <file.json>",
		Short: "Render a saved tableau",
		Long: `Render a tableau saved with --format json.

Example:
  domino fill 4,2 -f json -o fill.json
  domino render fill.json -f svg -o fill.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tabio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd, c.newRunner(nil), t, &flags)
		},
	}
	flags.register(cmd, tableauFormats)
	cmd.Flags().Lookup("format").DefValue = pipeline.FormatSVG
	_ = cmd.Flags().Set("format", pipeline.FormatSVG)
	return cmd
}

// emit renders t as the flags ask and writes the result.
func (c *CLI) emit(cmd *cobra.Command, r *pipeline.Runner, t *tableau.Tableau, flags *outputFlags) error {
	data, err := r.Render(contextOf(cmd), t, flags.apply(c.options()))
	if err != nil {
		return err
	}
	return writeOutput(cmd, data, flags.output)
}
