package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/domino/pkg/cache"
	"github.com/matzehuels/domino/pkg/errors"
	tabio "github.com/matzehuels/domino/pkg/io"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/observability"
	"github.com/matzehuels/domino/pkg/render"
	"github.com/matzehuels/domino/pkg/render/nodelink"
	"github.com/matzehuels/domino/pkg/render/sink"
	"github.com/matzehuels/domino/pkg/render/styles"
	"github.com/matzehuels/domino/pkg/tableau"
)

// Render draws a tableau in opts.Format. SVG, PNG, and PDF artifacts are
// cached by the tableau's JSON encoding and the render settings. Tableaux
// with more than opts.MaxCells cells, or bounds wider or taller than that,
// are rejected.
func (r *Runner) Render(ctx context.Context, t *tableau.Tableau, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateFormat(opts.Format, TableauFormats...); err != nil {
		return nil, err
	}
	if err := checkBounds(t, opts.MaxCells); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tabio.WriteJSON(t, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tableau")
	}
	switch opts.Format {
	case FormatJSON:
		return buf.Bytes(), nil
	case FormatText:
		return []byte(render.Text(t)), nil
	}

	key := r.Keyer.RenderKey(cache.Hash(buf.Bytes()), cache.RenderKeyOpts{
		Format:   opts.Format,
		Style:    opts.Style,
		CellSize: opts.CellSize,
		Labels:   opts.Labels,
	})
	data, _, err := r.cached(ctx, OpRender, opts.Format, key, func() ([]byte, error) {
		return RenderTableau(ctx, t, opts)
	})
	return data, err
}

// RenderTableau draws a tableau without caching. opts must have defaults
// applied.
func RenderTableau(ctx context.Context, t *tableau.Tableau, opts Options) ([]byte, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "render")
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style), sink.WithCellSize(opts.CellSize)}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}

	switch opts.Format {
	case FormatText:
		return []byte(render.Text(t)), nil
	case FormatSVG:
		return sink.RenderSVG(t, svgOpts...), nil
	case FormatPNG:
		return wrapConvert(sink.RenderPNG(ctx, t, opts.Scale, svgOpts...))
	case FormatPDF:
		return wrapConvert(sink.RenderPDF(ctx, t, svgOpts...))
	case FormatJSON:
		var buf bytes.Buffer
		if err := tabio.WriteJSON(t, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tableau")
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported tableau format: %s", opts.Format)
}

// RenderTree draws a search tree in opts.Format: Graphviz DOT source, SVG,
// PNG, or PDF through Graphviz, or the node list as JSON.
func (r *Runner) RenderTree(ctx context.Context, nodes []lr.TreeNode, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if opts.Format == FormatText {
		opts.Format = FormatDOT
	}
	if err := errors.ValidateFormat(opts.Format, TreeFormats...); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Format == FormatJSON {
		data, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tree")
		}
		return data, nil
	}

	dot := nodelink.TreeDOT(nodes, nodelink.Options{Detailed: opts.Detailed})
	start := time.Now()
	observability.Compute().OnComputeStart(ctx, OpRender, opts.Format)
	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	}
	observability.Compute().OnComputeComplete(ctx, OpRender, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "render tree as %s", opts.Format)
	}
	return data, nil
}

func checkBounds(t *tableau.Tableau, limit int) error {
	w, h := t.Bounds()
	if n := t.Size(); n > limit {
		return errors.New(errors.ErrCodeLimitExceeded, "tableau has %d cells, the limit is %d", n, limit)
	}
	if w > limit || h > limit {
		return errors.New(errors.ErrCodeLimitExceeded, "tableau spans %d×%d cells, the limit is %d per side", w, h, limit)
	}
	return nil
}

// wrapConvert gives converter failures without a code the unsupported code.
// Cancellation passes through unchanged.
func wrapConvert(data []byte, err error) ([]byte, error) {
	if err == context.Canceled || err == context.DeadlineExceeded {
		return nil, err
	}
	if err != nil && errors.GetCode(err) == "" {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "convert svg")
	}
	return data, err
}
