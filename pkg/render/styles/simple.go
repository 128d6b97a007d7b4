package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/domino/pkg/tableau"
)

const (
	strokeColor = "#333333"
	textColor   = "#222222"
	boxFill     = "#d9d9d9"
)

// Simple draws white pieces with dark outlines.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fill := "#ffffff"
	if b.Kind == KindBox {
		fill = boxFill
	}
	writeRect(buf, b, fill)
}

func (Simple) RenderText(buf *bytes.Buffer, b Block) { writeText(buf, b) }

// parityFills colors the four grid classes.
var parityFills = map[tableau.Parity]string{
	tableau.W: "#fdf6e3",
	tableau.X: "#f4a582",
	tableau.Y: "#92c5de",
	tableau.Z: "#e0e0e0",
}

// Parity fills each piece by the grid class of its anchor cell.
type Parity struct{}

func (Parity) RenderDefs(buf *bytes.Buffer) {}

func (Parity) RenderBlock(buf *bytes.Buffer, b Block) {
	fill := parityFills[b.Parity]
	if b.Kind == KindBox {
		fill = boxFill
	}
	writeRect(buf, b, fill)
}

func (Parity) RenderText(buf *bytes.Buffer, b Block) { writeText(buf, b) }

func writeRect(buf *bytes.Buffer, b Block, fill string) {
	fmt.Fprintf(buf, `  <rect id="piece-%s" class="piece %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		b.ID, b.Kind, b.X, b.Y, b.W, b.H, fill, strokeColor)
}

func writeText(buf *bytes.Buffer, b Block) {
	if b.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		b.CX, b.CY, FontSize(b), textColor, EscapeXML(b.Label))
}
