package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/domino/pkg/buildinfo"
	"github.com/matzehuels/domino/pkg/cache"
	"github.com/matzehuels/domino/pkg/config"
	"github.com/matzehuels/domino/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "domino"

// annotationSkipConfig marks commands that run without loading the config
// file, so they work before it exists.
const annotationSkipConfig = "domino/skip-config"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Domino tableaux and Littlewood-Richardson fillings",
		Long: `Domino computes domino tableaux of partitions, combines pairs of Young
diagrams into type-D tableaux, and enumerates Littlewood-Richardson fillings
with the Remmel-Whitney search tree.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(contextOf(cmd), c.Logger))
			if cmd.Annotations[annotationSkipConfig] != "" {
				return nil
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.Logger.Debug("loaded config", "path", c.configPath, "max_boxes", cfg.Limits.MaxBoxes)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/domino/config.toml)")

	root.AddCommand(c.validateCommand())
	root.AddCommand(c.transposeCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.combineLRCommand())
	root.AddCommand(c.lrCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. One-shot commands gain
// nothing from caching; long-lived ones (interactive) pass a cache.
func (c *CLI) newRunner(ch cache.Cache) *pipeline.Runner {
	r := pipeline.NewRunner(ch, nil, c.Logger)
	if ttl := c.cfg.Server.CacheTTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r
}

// memoryCache creates the result cache for long-lived commands.
func (c *CLI) memoryCache() *cache.MemoryCache {
	return cache.NewMemoryCache(c.cfg.Server.CacheEntries, c.cfg.Server.CacheTTL.Duration)
}

// options converts the loaded config into pipeline options.
func (c *CLI) options() pipeline.Options {
	return pipeline.Options{
		MaxBoxes:    c.cfg.Limits.MaxBoxes,
		MaxFillings: c.cfg.Limits.MaxFillings,
		MaxCells:    c.cfg.Limits.MaxCells,
		Style:       c.cfg.Render.Style,
		CellSize:    c.cfg.Render.CellSize,
		Labels:      c.cfg.Render.Labels,
	}
}

// =============================================================================
// Output Helpers
// =============================================================================

// outputFlags are the flags shared by every command that renders a tableau.
type outputFlags struct {
	format   string
	output   string
	style    string
	cellSize int
	labels   bool
}

func (f *outputFlags) register(cmd *cobra.Command, formats string) {
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.FormatText, "output format: "+formats)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&f.style, "style", "", "SVG style: simple, parity (default from config)")
	cmd.Flags().IntVar(&f.cellSize, "cell-size", 0, "SVG cell size in pixels (default from config)")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "draw piece labels in SVG output")
}

// apply overlays the flags onto opts.
func (f *outputFlags) apply(opts pipeline.Options) pipeline.Options {
	opts.Format = f.format
	if f.style != "" {
		opts.Style = f.style
	}
	if f.cellSize != 0 {
		opts.CellSize = f.cellSize
	}
	opts.Labels = opts.Labels || f.labels
	return opts
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, data []byte, path string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
