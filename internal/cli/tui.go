package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/pipeline"
	"github.com/matzehuels/domino/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	fieldFocusStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// interactiveCommand starts the terminal UI.
func (c *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Explore Littlewood-Richardson products in a terminal UI",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New(errors.ErrCodeUnsupported, "interactive mode needs a terminal")
			}
			ctx := contextOf(cmd)
			runner := c.newRunner(c.memoryCache())
			defer runner.Close()

			m := NewLRModel(ctx, runner, c.options())
			_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// =============================================================================
// LRModel - Interactive Littlewood-Richardson calculator
// =============================================================================

// lrResultMsg carries a finished computation back to the model.
type lrResultMsg struct {
	result   *pipeline.LRResult
	combined string
	err      error
}

// LRModel is the bubbletea model for the interactive calculator: two
// partition fields, the coefficient list of their product, and the fillings
// of the selected shape.
type LRModel struct {
	Fields [2]string
	Focus  int
	Cursor int
	Result *pipeline.LRResult
	Err    error
	// Combined is the text drawing of the combined tableau of both fields.
	Combined    string
	ShowCombine bool
	Busy        bool

	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options
}

// NewLRModel creates a calculator backed by runner.
func NewLRModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) LRModel {
	return LRModel{ctx: ctx, runner: runner, opts: opts}
}

func (m LRModel) Init() tea.Cmd {
	return nil
}

func (m LRModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lrResultMsg:
		m.Busy = false
		m.Err = msg.err
		m.Result = msg.result
		m.Combined = msg.combined
		m.Cursor = 0
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.Focus = 1 - m.Focus
		case "up":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down":
			if m.Result != nil && m.Cursor < len(m.Result.Coefficients)-1 {
				m.Cursor++
			}
		case "c":
			m.ShowCombine = !m.ShowCombine
		case "backspace":
			if f := m.Fields[m.Focus]; f != "" {
				m.Fields[m.Focus] = f[:len(f)-1]
			}
		case "enter":
			return m.compute()
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				for _, r := range msg.Runes {
					if (r >= '0' && r <= '9') || r == ',' || r == ' ' {
						m.Fields[m.Focus] += string(r)
					}
				}
			}
		}
	}
	return m, nil
}

// compute parses both fields and starts the enumeration.
func (m LRModel) compute() (tea.Model, tea.Cmd) {
	first, err := pipeline.ParsePartition(m.Fields[0])
	if err == nil {
		var second partition.Partition
		second, err = pipeline.ParsePartition(m.Fields[1])
		if err == nil {
			m.Busy = true
			m.Err = nil
			return m, m.run(first, second)
		}
	}
	m.Err = err
	m.Result = nil
	return m, nil
}

func (m LRModel) run(first, second partition.Partition) tea.Cmd {
	ctx, runner, opts := m.ctx, m.runner, m.opts
	return func() tea.Msg {
		res, err := runner.Enumerate(ctx, first, second, opts)
		if err != nil {
			return lrResultMsg{err: err}
		}
		msg := lrResultMsg{result: res}
		if comb, err := runner.Combine(ctx, first, second, opts); err == nil {
			msg.combined = render.Text(comb.Tableau)
		}
		return msg
	}
}

func (m LRModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Littlewood-Richardson"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("tab switch field  ⏎ compute  ↑/↓ select  c combine  q quit"))
	b.WriteString("\n\n")

	for i, label := range []string{"first ", "second"} {
		value := m.Fields[i]
		line := fmt.Sprintf("%s  %s", label, value)
		if i == m.Focus {
			b.WriteString(fieldFocusStyle.Render("▸ " + line + "▏"))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.Busy:
		b.WriteString(listDimStyle.Render("computing..."))
		return b.String()
	case m.Err != nil:
		b.WriteString(StyleError.Render(iconError + " " + errors.UserMessage(m.Err)))
		return b.String()
	case m.Result == nil:
		return b.String()
	}

	if m.ShowCombine {
		b.WriteString(StyleHighlight.Render("combined " + m.Result.First.String() + " ⊗ " + m.Result.Second.String()))
		b.WriteString("\n")
		b.WriteString(m.Combined)
		return b.String()
	}

	for i, c := range m.Result.Coefficients {
		line := fmt.Sprintf("%-12s %d", c.Shape, c.Count)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.Result.Coefficients) > 0 {
		shape := m.Result.Coefficients[m.Cursor].Shape
		b.WriteString("\n")
		for _, f := range fillingsOf(m.Result.Fillings, shape) {
			tab, err := f.Tableau()
			if err != nil {
				b.WriteString(StyleError.Render(iconError+" "+errors.UserMessage(err)) + "\n")
				continue
			}
			b.WriteString(render.Text(tab))
			b.WriteString("\n")
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d fillings, %d shapes]", m.Result.Total, len(m.Result.Coefficients))))
	return b.String()
}

func fillingsOf(fillings []lr.Filling, shape partition.Partition) []lr.Filling {
	var out []lr.Filling
	for _, f := range fillings {
		if f.Shape.Equal(shape) {
			out = append(out, f)
		}
	}
	return out
}
