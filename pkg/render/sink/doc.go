// Package sink writes tableaux as SVG, PNG and PDF.
//
// [RenderSVG] draws every piece of a tableau as a rectangle in placement
// order, using a [styles.Style] for fills and text. PNG and PDF go through
// SVG and rsvg-convert:
//
//	svg := sink.RenderSVG(t, sink.WithStyle(styles.Parity{}), sink.WithLabels())
//	png, err := sink.RenderPNG(ctx, t, 2, sink.WithCellSize(60))
//
// [styles.Style]: github.com/matzehuels/domino/pkg/render/styles.Style
package sink
