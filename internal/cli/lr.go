package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/domino/pkg/domino"
	"github.com/matzehuels/domino/pkg/errors"
	tabio "github.com/matzehuels/domino/pkg/io"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/pipeline"
	"github.com/matzehuels/domino/pkg/render"
)

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
)

type lrOpts struct {
	format      string
	fillings    bool
	maxFillings int
	maxBoxes    int
}

// lrCommand prints Littlewood-Richardson coefficients.
func (c *CLI) lrCommand() *cobra.Command {
	var opts lrOpts
	cmd := &cobra.Command{
		Use:   "lr <first> <second>",
		Short: "Littlewood-Richardson coefficients of a product of Schur functions",
		Long: `Expand s_first · s_second into Schur functions.

Every coefficient counts the Littlewood-Richardson fillings of first by the
numbers of second that reach its shape. The search tree grows exponentially
with the size of second, which is capped by limits.max_boxes.

Examples:
  domino lr 2,1 2,1
  domino lr 3,1 2 --fillings
  domino lr 2,1 2,1 -f markdown`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatTable, formatMarkdown, pipeline.FormatJSON); err != nil {
				return err
			}
			first, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			second, err := pipeline.ParsePartition(args[1])
			if err != nil {
				return err
			}

			popts := c.options()
			if opts.maxFillings != 0 {
				popts.MaxFillings = opts.maxFillings
			}
			if opts.maxBoxes != 0 {
				popts.MaxBoxes = opts.maxBoxes
			}

			prog := newProgress(loggerFromContext(contextOf(cmd)))
			stop := startSpinner(contextOf(cmd), cmd.ErrOrStderr(), "Enumerating fillings")
			res, err := c.newRunner(nil).Enumerate(contextOf(cmd), first, second, popts)
			stop()
			if err != nil {
				return err
			}
			prog.done("Enumerated fillings", "total", res.Total, "shapes", len(res.Coefficients))

			w := cmd.OutOrStdout()
			switch opts.format {
			case pipeline.FormatJSON:
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			case formatMarkdown:
				out, err := renderMarkdown(lrMarkdown(res), isTerminal(w))
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, out)
				return err
			}

			fmt.Fprintln(w, StyleTitle.Render(productTitle(res)))
			fmt.Fprintln(w, coefficientTable(res.Coefficients))
			printDetail(w, "%d fillings, %d shapes", res.Total, len(res.Coefficients))
			if opts.fillings {
				if err := printFillings(w, res.Fillings); err != nil {
					return err
				}
				if res.Truncated {
					printWarning(w, "showing %d of %d fillings", len(res.Fillings), res.Total)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table, markdown, json")
	cmd.Flags().BoolVar(&opts.fillings, "fillings", false, "also draw every filling")
	cmd.Flags().IntVar(&opts.maxFillings, "max-fillings", 0, "keep at most this many fillings (default from config)")
	cmd.Flags().IntVar(&opts.maxBoxes, "max-boxes", 0, "largest accepted size of second (default from config)")
	return cmd
}

func productTitle(res *pipeline.LRResult) string {
	return fmt.Sprintf("s(%s) · s(%s)", res.First, res.Second)
}

func printFillings(w io.Writer, fillings []lr.Filling) error {
	for i, f := range fillings {
		tab, err := f.Tableau()
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("#%d", i+1))+" "+StyleHighlight.Render(f.Shape.String()))
		fmt.Fprint(w, render.Text(tab))
	}
	return nil
}

// lrMarkdown formats a result as a markdown document.
func lrMarkdown(res *pipeline.LRResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", productTitle(res))
	b.WriteString("| Shape | Size | Count |\n|---|---:|---:|\n")
	for _, c := range res.Coefficients {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", c.Shape, c.Shape.Size(), c.Count)
	}
	fmt.Fprintf(&b, "\n%d fillings in total.\n", res.Total)
	return b.String()
}

func renderMarkdown(md string, tty bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// treeCommand renders the Remmel-Whitney search tree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format, output string
		detailed       bool
		maxBoxes       int
	)
	cmd := &cobra.Command{
		Use:   "tree <first> <second>",
		Short: "Draw the search tree behind lr",
		Long: `Draw the Remmel-Whitney search tree of first and second.

Each node adds one number of second to the shape; leaves are the
Littlewood-Richardson fillings. DOT output needs no external tools; svg, png
and pdf are rendered with Graphviz.

Examples:
  domino tree 1 2,1
  domino tree 2,1 2,1 -f svg -o tree.svg --detailed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := pipeline.ParsePartition(args[0])
			if err != nil {
				return err
			}
			second, err := pipeline.ParsePartition(args[1])
			if err != nil {
				return err
			}
			opts := c.options()
			opts.Format = format
			opts.Detailed = detailed
			if maxBoxes != 0 {
				opts.MaxBoxes = maxBoxes
			}

			r := c.newRunner(nil)
			stop := startSpinner(contextOf(cmd), cmd.ErrOrStderr(), "Building search tree")
			nodes, err := r.Tree(contextOf(cmd), first, second, opts)
			stop()
			if err != nil {
				return err
			}
			c.Logger.Debug("built search tree", "nodes", len(nodes))
			data, err := r.RenderTree(contextOf(cmd), nodes, opts)
			if err != nil {
				return err
			}
			return writeOutput(cmd, data, output)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: "+strings.Join(pipeline.TreeFormats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with input and output positions")
	cmd.Flags().IntVar(&maxBoxes, "max-boxes", 0, "largest accepted size of second (default from config)")
	return cmd
}

// combineLRCommand combines two sums of shapes term by term.
func (c *CLI) combineLRCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "combine-lr <left-terms> <right-terms>",
		Short: "Combine every pair of terms from two sums of shapes",
		Long: `Combine every left term with every right term.

Terms are separated by semicolons or newlines. A term is a partition,
optionally prefixed with a coefficient and a colon. An argument starting with
@ names a file to read the terms from.

Examples:
  domino combine-lr "2:3,1; 2,2" "1"
  domino combine-lr @left.txt @right.txt -f json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, pipeline.FormatText, pipeline.FormatJSON); err != nil {
				return err
			}
			left, err := readTerms(args[0])
			if err != nil {
				return err
			}
			right, err := readTerms(args[1])
			if err != nil {
				return err
			}
			combined, err := c.newRunner(nil).CombineTerms(contextOf(cmd), left, right, c.options())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == pipeline.FormatJSON {
				return writeCombinedJSON(w, combined)
			}
			for i, ct := range combined {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s %s ⊗ %s %s %s\n",
					StyleNumber.Render(strconv.Itoa(ct.Coefficient)+" ×"),
					ct.Left, ct.Right, StyleDim.Render(iconArrow),
					StyleHighlight.Render(ct.Tableau.Shape().String()))
				fmt.Fprint(w, render.Text(ct.Tableau))
			}
			if len(combined) == 0 {
				printInfo(w, "no terms with a non-zero coefficient")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text, json")
	return cmd
}

// readTerms parses terms from arg, or from the file arg names after an @.
func readTerms(arg string) ([]domino.Term, error) {
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "terms file not found: %s", path)
			}
			return nil, err
		}
		arg = string(data)
	}
	return domino.ParseTerms(arg)
}

type combinedJSON struct {
	Left        []int           `json:"left"`
	Right       []int           `json:"right"`
	Coefficient int             `json:"coefficient"`
	Tableau     json.RawMessage `json:"tableau"`
}

func writeCombinedJSON(w io.Writer, combined []domino.CombinedTerm) error {
	out := make([]combinedJSON, len(combined))
	for i, ct := range combined {
		var buf bytes.Buffer
		if err := tabio.WriteJSON(ct.Tableau, &buf); err != nil {
			return err
		}
		out[i] = combinedJSON{
			Left:        ct.Left,
			Right:       ct.Right,
			Coefficient: ct.Coefficient,
			Tableau:     bytes.TrimSpace(buf.Bytes()),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
