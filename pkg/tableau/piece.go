package tableau

// Cell is a grid coordinate: column X, row Y, both counted from zero at the
// top-left corner.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Piece is anything that can be placed in a [Tableau].
type Piece interface {
	// Anchor returns the top-left cell of the piece.
	Anchor() Cell
	// Cells returns every cell the piece covers, anchor first.
	Cells() []Cell
	// Text returns the label drawn inside the piece.
	Text() string
}

// Tile is a unit square.
type Tile struct {
	X     int
	Y     int
	Label string
}

// Anchor implements [Piece].
func (t Tile) Anchor() Cell { return Cell{t.X, t.Y} }

// Cells implements [Piece].
func (t Tile) Cells() []Cell { return []Cell{{t.X, t.Y}} }

// Text implements [Piece].
func (t Tile) Text() string { return t.Label }

// Domino is a 1×2 (Horizontal) or 2×1 piece anchored at its top-left cell.
// When Box is set the piece is a fixed 2×2 box and Horizontal is ignored.
type Domino struct {
	X          int
	Y          int
	Horizontal bool
	Box        bool
	Label      string
}

// Anchor implements [Piece].
func (d Domino) Anchor() Cell { return Cell{d.X, d.Y} }

// Cells implements [Piece].
func (d Domino) Cells() []Cell {
	switch {
	case d.Box:
		return []Cell{{d.X, d.Y}, {d.X + 1, d.Y}, {d.X, d.Y + 1}, {d.X + 1, d.Y + 1}}
	case d.Horizontal:
		return []Cell{{d.X, d.Y}, {d.X + 1, d.Y}}
	default:
		return []Cell{{d.X, d.Y}, {d.X, d.Y + 1}}
	}
}

// Text implements [Piece].
func (d Domino) Text() string { return d.Label }

// Transposed returns the domino reflected in the main diagonal.
func (d Domino) Transposed() Domino {
	return Domino{X: d.Y, Y: d.X, Horizontal: !d.Horizontal, Box: d.Box, Label: d.Label}
}

// Size returns the extent of a piece as columns and rows.
func Size(p Piece) (w, h int) {
	a := p.Anchor()
	w, h = 1, 1
	for _, c := range p.Cells() {
		w = max(w, c.X-a.X+1)
		h = max(h, c.Y-a.Y+1)
	}
	return w, h
}
