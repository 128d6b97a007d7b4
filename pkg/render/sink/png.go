package sink

import (
	"context"

	"github.com/matzehuels/domino/pkg/render"
	"github.com/matzehuels/domino/pkg/tableau"
)

// DefaultScale is the PNG scale factor used when none is given.
const DefaultScale = 2.0

// RenderPNG draws the tableau as SVG and rasterizes it with rsvg-convert.
// scale multiplies the SVG size; zero means [DefaultScale].
func RenderPNG(ctx context.Context, t *tableau.Tableau, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale == 0 {
		scale = DefaultScale
	}
	return render.ToPNG(ctx, RenderSVG(t, opts...), scale)
}

// RenderPDF draws the tableau as SVG and converts it with rsvg-convert.
func RenderPDF(ctx context.Context, t *tableau.Tableau, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(t, opts...))
}
