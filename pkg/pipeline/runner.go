package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/domino/pkg/cache"
	"github.com/matzehuels/domino/pkg/domino"
	"github.com/matzehuels/domino/pkg/errors"
	tabio "github.com/matzehuels/domino/pkg/io"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/observability"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

// Operation names reported to observability hooks.
const (
	OpFill         = "fill"
	OpCombine      = "combine"
	OpCombineTerms = "combine_terms"
	OpLR           = "lr"
	OpTree         = "tree"
	OpRender       = "render"
)

// Runner executes computations with caching.
// Both CLI and API use it so the caching logic lives in one place.
//
// The Runner holds no results of its own, only the cache and logger.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// =============================================================================
// Tableaux
// =============================================================================

// Fill tiles the shape of p with boxes and dominoes. Shapes above
// opts.MaxCells are rejected.
func (r *Runner) Fill(ctx context.Context, p partition.Partition, opts Options) (*TableauResult, error) {
	opts.SetDefaults()
	if err := CheckCells(opts.MaxCells, p); err != nil {
		return nil, err
	}
	return r.tableau(ctx, OpFill, p.String(), r.Keyer.FillKey(p), func() (*tableau.Tableau, error) {
		return domino.Fill(p)
	})
}

// Combine builds the type-D tableau of the diagrams of left and right. Both
// are subject to opts.MaxCells.
func (r *Runner) Combine(ctx context.Context, left, right partition.Partition, opts Options) (*TableauResult, error) {
	opts.SetDefaults()
	if err := CheckCells(opts.MaxCells, left, right); err != nil {
		return nil, err
	}
	input := left.String() + "|" + right.String()
	return r.tableau(ctx, OpCombine, input, r.Keyer.CombineKey(left, right), func() (*tableau.Tableau, error) {
		return domino.Combine(tableau.Diagram(left), tableau.Diagram(right))
	})
}

func (r *Runner) tableau(ctx context.Context, op, input, key string, compute func() (*tableau.Tableau, error)) (*TableauResult, error) {
	start := time.Now()
	var t *tableau.Tableau
	data, hit, err := r.cached(ctx, op, input, key, func() ([]byte, error) {
		var err error
		if t, err = compute(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := tabio.WriteJSON(t, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tableau")
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	if hit {
		if t, err = tabio.ReadJSON(bytes.NewReader(data)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode cached tableau")
		}
	}
	res := newTableauResult(t, Stats{Duration: time.Since(start), CacheHit: hit})
	r.Logger.Debug("computed tableau", "op", op, "input", input,
		"boxes", res.Boxes, "dominoes", res.Dominoes, "cached", hit, "duration", res.Stats.Duration)
	return res, nil
}

// CombineTerms combines every pair of left and right terms. Results are not
// cached; each pair is a cheap [domino.Combine] call. Every term shape is
// subject to opts.MaxCells and the number of pairs to [MaxTermPairs].
func (r *Runner) CombineTerms(ctx context.Context, left, right []domino.Term, opts Options) ([]domino.CombinedTerm, error) {
	opts.SetDefaults()
	if len(left) > 0 && len(right) > MaxTermPairs/len(left) {
		return nil, errors.New(errors.ErrCodeLimitExceeded,
			"%d×%d term pairs, the limit is %d", len(left), len(right), MaxTermPairs)
	}
	for _, terms := range [][]domino.Term{left, right} {
		for _, t := range terms {
			if err := CheckCells(opts.MaxCells, t.Shape); err != nil {
				return nil, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	input := domino.FormatTerms(left) + "|" + domino.FormatTerms(right)
	start := time.Now()
	observability.Compute().OnComputeStart(ctx, OpCombineTerms, input)
	out, err := domino.CombineTerms(left, right)
	observability.Compute().OnComputeComplete(ctx, OpCombineTerms, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// =============================================================================
// Littlewood-Richardson
// =============================================================================

// Enumerate lists the Littlewood-Richardson fillings of first by second
// together with their coefficients. opts.MaxBoxes bounds the size of second
// and opts.MaxFillings, when positive, truncates the fillings.
func (r *Runner) Enumerate(ctx context.Context, first, second partition.Partition, opts Options) (*LRResult, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkBoxes(second, opts.MaxBoxes); err != nil {
		return nil, err
	}

	start := time.Now()
	input := first.String() + "|" + second.String()
	key := r.Keyer.LRKey(first, second, opts.MaxFillings)
	data, hit, err := r.cached(ctx, OpLR, input, key, func() ([]byte, error) {
		fillings := lr.Enumerate(first, second)
		res := LRResult{
			First:        first,
			Second:       second,
			Total:        len(fillings),
			Fillings:     fillings,
			Coefficients: lr.Coefficients(fillings),
		}
		if opts.MaxFillings > 0 && len(fillings) > opts.MaxFillings {
			res.Fillings = fillings[:opts.MaxFillings]
			res.Truncated = true
		}
		return json.Marshal(res)
	})
	if err != nil {
		return nil, err
	}

	var res LRResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode fillings")
	}
	res.Stats = Stats{Duration: time.Since(start), CacheHit: hit}
	r.Logger.Debug("enumerated fillings", "first", first, "second", second,
		"total", res.Total, "shapes", len(res.Coefficients), "cached", hit, "duration", res.Stats.Duration)
	return &res, nil
}

// Tree returns the full search tree behind [Runner.Enumerate]. It is subject
// to the same opts.MaxBoxes limit and is not cached.
func (r *Runner) Tree(ctx context.Context, first, second partition.Partition, opts Options) ([]lr.TreeNode, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkBoxes(second, opts.MaxBoxes); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Compute().OnComputeStart(ctx, OpTree, first.String()+"|"+second.String())
	nodes := lr.Tree(first, second)
	observability.Compute().OnComputeComplete(ctx, OpTree, time.Since(start), nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

func checkBoxes(second partition.Partition, limit int) error {
	if n := second.Size(); n > limit {
		return errors.New(errors.ErrCodeLimitExceeded,
			"second partition has %d boxes, the limit is %d", n, limit)
	}
	return nil
}

// =============================================================================
// Caching
// =============================================================================

// cached returns the bytes stored under key, or computes and stores them.
// Cache failures are logged and never fail the operation.
func (r *Runner) cached(ctx context.Context, op, input, key string, compute func() ([]byte, error)) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "op", op, "error", err)
	}
	if err == nil && hit {
		observability.Cache().OnCacheHit(ctx, op)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, op)

	start := time.Now()
	observability.Compute().OnComputeStart(ctx, op, input)
	data, err = compute()
	observability.Compute().OnComputeComplete(ctx, op, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "op", op, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, op, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
