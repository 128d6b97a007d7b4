// Package cli implements the domino command-line interface.
//
// The commands compute domino tableaux of partitions, combine pairs of
// diagrams, enumerate Littlewood-Richardson fillings, render the results,
// and serve the same operations over HTTP. The CLI is built using cobra and
// logs through charmbracelet/log.
//
// # Commands
//
//   - validate, transpose: check and transform partitions
//   - diagram, fill, combine: build tableaux and render them
//   - combine-lr: combine two sums of shapes term by term
//   - lr: Littlewood-Richardson coefficients and fillings
//   - tree: the search tree behind lr
//   - render: draw a saved tableau
//   - interactive: terminal UI for lr and combine
//   - serve: HTTP API
//   - config: show the configuration file and its values
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so long computations can report progress.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps carry hundredths of a second
// ("14:32:01.45") so consecutive steps of one command can be told apart.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time as a field, followed by
// keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	fields := append([]any{"elapsed", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, fields...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
