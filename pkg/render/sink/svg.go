package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/domino/pkg/render/styles"
	"github.com/matzehuels/domino/pkg/tableau"
)

// DefaultCellSize is the edge length of one grid cell in SVG units.
const DefaultCellSize = 40

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	cellSize float64
	labels   bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithLabels() SVGOption              { return func(r *svgRenderer) { r.labels = true } }

// WithCellSize sets the cell edge length. Non-positive sizes are ignored.
func WithCellSize(size int) SVGOption {
	return func(r *svgRenderer) {
		if size > 0 {
			r.cellSize = float64(size)
		}
	}
}

// RenderSVG draws t as a standalone SVG document with a margin of half a cell.
func RenderSVG(t *tableau.Tableau, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	w, h := t.Bounds()
	margin := r.cellSize / 2
	width := float64(w)*r.cellSize + 2*margin
	height := float64(h)*r.cellSize + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	r.style.RenderDefs(&buf)

	blocks := buildBlocks(t, r.cellSize, margin)
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range blocks {
			r.style.RenderText(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildBlocks(t *tableau.Tableau, cell, margin float64) []styles.Block {
	pieces := t.Pieces()
	blocks := make([]styles.Block, 0, len(pieces))
	for _, p := range pieces {
		a := p.Anchor()
		pw, ph := tableau.Size(p)
		b := styles.Block{
			ID:     fmt.Sprintf("%d-%d", a.X, a.Y),
			Label:  p.Text(),
			Kind:   kindOf(p),
			Parity: tableau.ParityOf(a.X, a.Y),
			X:      margin + float64(a.X)*cell,
			Y:      margin + float64(a.Y)*cell,
			W:      float64(pw) * cell,
			H:      float64(ph) * cell,
		}
		b.CX = b.X + b.W/2
		b.CY = b.Y + b.H/2
		blocks = append(blocks, b)
	}
	return blocks
}

func kindOf(p tableau.Piece) styles.Kind {
	if d, ok := p.(tableau.Domino); ok {
		if d.Box {
			return styles.KindBox
		}
		return styles.KindDomino
	}
	return styles.KindTile
}
