// Package pipeline runs the domino computations behind the CLI and the HTTP
// server.
//
// This package wraps the core packages (partition, domino, lr) with the
// concerns every entry point shares: input parsing and limits, result
// caching, timing, observability hooks, and rendering into output formats.
// Keeping this logic here means `domino fill 4,2` and `POST /v1/fill` behave
// identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(256, 10*time.Minute), nil, logger)
//
//	p, err := pipeline.ParsePartition("4,2")
//	res, err := runner.Fill(ctx, p, pipeline.Options{})
//	out, err := runner.Render(ctx, res.Tableau, pipeline.Options{Format: pipeline.FormatSVG})
//
// # Limits
//
// The Littlewood-Richardson search tree grows exponentially with the size of
// the inserted partition, so [Runner.Enumerate] and [Runner.Tree] reject
// inputs whose second partition has more than [Options.MaxBoxes] cells with
// [errors.ErrCodeLimitExceeded]. [Options.MaxFillings] truncates the list of
// fillings returned (coefficients are always complete).
//
// Tiling and rendering are polynomial but still unbounded in the input, so
// every operation that takes a shape rejects shapes with more than
// [Options.MaxCells] cells, or a bounding box wider or taller than that, with
// the same code. [CheckCells] applies the check to callers outside the
// runner, such as transposition.
//
// # Cancellation
//
// The core algorithms are synchronous and have no cancellation points. The
// runner checks the context before and after each computation, so a
// cancelled request never starts work and never returns a stale result.
//
// [errors.ErrCodeLimitExceeded]: github.com/matzehuels/domino/pkg/errors.ErrCodeLimitExceeded
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/render/sink"
	"github.com/matzehuels/domino/pkg/render/styles"
	"github.com/matzehuels/domino/pkg/tableau"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxBoxes is the largest second partition the enumeration accepts.
	DefaultMaxBoxes = 12

	// DefaultMaxCells is the largest shape the tiling and render operations
	// accept.
	DefaultMaxCells = 1000

	// MaxTermPairs bounds the number of products one CombineTerms call forms.
	MaxTermPairs = 1024

	// DefaultCellSize is the SVG cell edge length.
	DefaultCellSize = sink.DefaultCellSize

	// DefaultStyle is the default SVG style.
	DefaultStyle = styles.NameSimple

	// DefaultTTL is how long computed results stay cached.
	DefaultTTL = 10 * time.Minute
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// TableauFormats are the formats a tableau can be rendered to.
var TableauFormats = []string{FormatText, FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// TreeFormats are the formats a search tree can be rendered to.
var TreeFormats = []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// =============================================================================
// Options
// =============================================================================

// Options contains the per-request settings. It supports JSON for API
// requests; zero values mean defaults.
type Options struct {
	// Limits
	MaxBoxes    int `json:"max_boxes,omitempty"`
	MaxFillings int `json:"max_fillings,omitempty"`
	MaxCells    int `json:"max_cells,omitempty"`

	// Render options
	Format   string  `json:"format,omitempty"`
	Style    string  `json:"style,omitempty"`
	CellSize int     `json:"cell_size,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Detailed bool    `json:"detailed,omitempty"` // tree labels with positions
	Scale    float64 `json:"scale,omitempty"`    // PNG scale factor
}

// SetDefaults fills every zero field with its default.
func (o *Options) SetDefaults() {
	if o.MaxBoxes == 0 {
		o.MaxBoxes = DefaultMaxBoxes
	}
	if o.MaxCells == 0 {
		o.MaxCells = DefaultMaxCells
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = 2.0
	}
}

// Validate checks the limits and style. Formats are checked by the
// operation that uses them.
func (o *Options) Validate() error {
	if o.MaxBoxes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_boxes must not be negative")
	}
	if o.MaxFillings < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_fillings must not be negative")
	}
	if o.MaxCells < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_cells must not be negative")
	}
	if o.CellSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell_size must not be negative")
	}
	return ValidateStyle(o.Style)
}

// ValidateStyle checks that a style exists.
func ValidateStyle(style string) error {
	if !slices.Contains(styles.Names, style) {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style %q (must be one of: %s)", style, strings.Join(styles.Names, ", "))
	}
	return nil
}

// =============================================================================
// Input Parsing
// =============================================================================

// ParsePartition checks and parses partition text. Blank text is the empty
// partition.
func ParsePartition(text string) (partition.Partition, error) {
	if strings.TrimSpace(text) == "" {
		return partition.Partition{}, nil
	}
	if err := errors.ValidatePartitionText(text); err != nil {
		return nil, err
	}
	return partition.Validate(text)
}

// CheckCells reports a limit error if any partition has more than limit
// cells. A partition's parts and its length never exceed its size, so the
// check also bounds the width and height of its diagram. The sum stops at
// the first part past the limit and cannot overflow.
func CheckCells(limit int, ps ...partition.Partition) error {
	for _, p := range ps {
		n := 0
		for _, part := range p {
			if part > limit-n {
				return errors.New(errors.ErrCodeLimitExceeded,
					"partition %s has more than %d cells", abbreviate(p), limit)
			}
			n += part
		}
	}
	return nil
}

// abbreviate shortens long partitions in error messages.
func abbreviate(p partition.Partition) string {
	if len(p) <= 8 {
		return p.String()
	}
	return p[:8].String() + ",..."
}

// =============================================================================
// Results
// =============================================================================

// TableauResult is the outcome of [Runner.Fill] or [Runner.Combine].
type TableauResult struct {
	Tableau  *tableau.Tableau
	Shape    partition.Partition
	Boxes    int
	Dominoes int
	Stats    Stats
}

// LRResult is the outcome of [Runner.Enumerate].
type LRResult struct {
	First        partition.Partition `json:"first"`
	Second       partition.Partition `json:"second"`
	Total        int                 `json:"total"`
	Truncated    bool                `json:"truncated"`
	Fillings     []lr.Filling        `json:"fillings"`
	Coefficients []lr.Coefficient    `json:"coefficients"`
	Stats        Stats               `json:"-"`
}

// Stats contains timing and cache information for one operation.
type Stats struct {
	Duration time.Duration
	CacheHit bool
}

func newTableauResult(t *tableau.Tableau, stats Stats) *TableauResult {
	boxes, dominoes, _ := t.Counts()
	return &TableauResult{
		Tableau:  t,
		Shape:    t.Shape(),
		Boxes:    boxes,
		Dominoes: dominoes,
		Stats:    stats,
	}
}
