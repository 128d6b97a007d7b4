// Package styles provides the visual styles of the SVG renderer.
//
// A [Style] draws one [Block] per piece of a tableau. Two styles exist:
//
//   - [Simple]: white pieces with dark outlines, grey boxes
//   - [Parity]: pieces filled by the grid class of their anchor cell, which
//     makes the W/X/Y/Z pattern of a domino tableau visible
package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/domino/pkg/tableau"
)

// Style names accepted by [ByName].
const (
	NameSimple = "simple"
	NameParity = "parity"
)

// Names lists the available styles.
var Names = []string{NameSimple, NameParity}

// Style defines how pieces are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for one piece.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderText writes the SVG for a piece's label.
	RenderText(buf *bytes.Buffer, b Block)
}

// Kind is the piece shape a block was built from.
type Kind string

const (
	KindTile   Kind = "tile"
	KindDomino Kind = "domino"
	KindBox    Kind = "box"
)

// Block contains everything needed to draw a single piece.
type Block struct {
	ID         string         // stable identifier, "x-y" of the anchor
	Label      string         // display text
	Kind       Kind           // tile, domino or box
	Parity     tableau.Parity // grid class of the anchor cell
	X, Y, W, H float64        // position and dimensions
	CX, CY     float64        // center coordinates (for text)
}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch name {
	case NameSimple, "":
		return Simple{}, nil
	case NameParity:
		return Parity{}, nil
	default:
		return nil, fmt.Errorf("unknown style %q", name)
	}
}
