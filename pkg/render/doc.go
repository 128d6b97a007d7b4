// Package render turns tableaux into text and images.
//
// # Overview
//
// This package holds the renderers that do not need a layout engine:
//
//   - [Text]: a box-drawing of a tableau for terminals and logs
//   - [ToPDF] and [ToPNG]: conversion of any SVG through rsvg-convert
//
// SVG output lives in the [sink] subpackage with its visual styles in
// [styles]; search trees are drawn by [nodelink] through Graphviz.
//
//	svg := sink.RenderSVG(t, sink.WithCellSize(40), sink.WithLabels())
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// # Text Drawing
//
// Each cell is three characters wide. Lines are drawn only where two cells
// belong to different pieces, so a domino shows as one long box and a 2×2
// box as one square:
//
//	+-------+
//	|       |
//	+---+---+
//	| 1 |
//	+---+
//
// [sink]: github.com/matzehuels/domino/pkg/render/sink
// [styles]: github.com/matzehuels/domino/pkg/render/styles
// [nodelink]: github.com/matzehuels/domino/pkg/render/nodelink
package render
