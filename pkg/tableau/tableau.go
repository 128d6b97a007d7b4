package tableau

import (
	"errors"
	"fmt"

	"github.com/matzehuels/domino/pkg/partition"
)

// ErrOverlap is returned by [Tableau.Insert] when a piece would cover a cell
// that is already occupied.
var ErrOverlap = errors.New("piece overlaps an occupied cell")

// Type distinguishes plain Young diagrams from domino tableaux.
type Type string

const (
	// TypeA tableaux are built from unit tiles.
	TypeA Type = "A"
	// TypeD tableaux are built from dominoes and 2×2 boxes.
	TypeD Type = "D"
)

// Tableau is a grid of placed pieces with row and column length queries.
// The zero value is not usable; create tableaux with [New] or [Diagram].
type Tableau struct {
	typ    Type
	pieces []Piece
	cells  map[Cell]int // cell -> index into pieces
	rows   map[int]int  // row -> covered cells
	cols   map[int]int  // column -> covered cells
}

// New returns an empty tableau of the given type.
func New(typ Type) *Tableau {
	return &Tableau{
		typ:   typ,
		cells: make(map[Cell]int),
		rows:  make(map[int]int),
		cols:  make(map[int]int),
	}
}

// Diagram returns the type-A Young diagram of p, one blank tile per cell,
// inserted row by row.
func Diagram(p partition.Partition) *Tableau {
	t := New(TypeA)
	for y, n := range p {
		for x := 0; x < n; x++ {
			t.mustInsert(Tile{X: x, Y: y})
		}
	}
	return t
}

// Type returns the tableau's type.
func (t *Tableau) Type() Type { return t.typ }

// Insert appends p in placement order. It returns [ErrOverlap] and leaves the
// tableau unchanged if any cell of p is already covered, or an error if p
// reaches a negative coordinate.
func (t *Tableau) Insert(p Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 {
			return fmt.Errorf("insert at (%d,%d): negative coordinate", c.X, c.Y)
		}
		if _, ok := t.cells[c]; ok {
			return fmt.Errorf("insert at (%d,%d): %w", c.X, c.Y, ErrOverlap)
		}
	}
	idx := len(t.pieces)
	t.pieces = append(t.pieces, p)
	for _, c := range cells {
		t.cells[c] = idx
		t.rows[c.Y]++
		t.cols[c.X]++
	}
	return nil
}

func (t *Tableau) mustInsert(p Piece) {
	if err := t.Insert(p); err != nil {
		panic(err)
	}
}

// Get returns the piece covering (x, y).
func (t *Tableau) Get(x, y int) (Piece, bool) {
	idx, ok := t.cells[Cell{x, y}]
	if !ok {
		return nil, false
	}
	return t.pieces[idx], true
}

// Occupied reports whether (x, y) is covered by any piece.
func (t *Tableau) Occupied(x, y int) bool {
	_, ok := t.cells[Cell{x, y}]
	return ok
}

// RowLength returns the number of covered cells in row y.
func (t *Tableau) RowLength(y int) int { return t.rows[y] }

// ColumnLength returns the number of covered cells in column x.
func (t *Tableau) ColumnLength(x int) int { return t.cols[x] }

// Pieces returns the pieces in placement order.
func (t *Tableau) Pieces() []Piece {
	out := make([]Piece, len(t.pieces))
	copy(out, t.pieces)
	return out
}

// Len returns the number of pieces.
func (t *Tableau) Len() int { return len(t.pieces) }

// Size returns the number of covered cells.
func (t *Tableau) Size() int { return len(t.cells) }

// Shape returns the row lengths from row 0 down to the first empty row.
func (t *Tableau) Shape() partition.Partition {
	var p partition.Partition
	for y := 0; t.rows[y] > 0; y++ {
		p = append(p, t.rows[y])
	}
	return p
}

// Bounds returns the number of columns and rows spanned by covered cells,
// measured from the origin.
func (t *Tableau) Bounds() (w, h int) {
	for c := range t.cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// IsDiagram reports whether the covered cells form a Young diagram: every
// covered cell is left-aligned in its row and the rows form a partition.
func (t *Tableau) IsDiagram() bool {
	shape := t.Shape()
	if !shape.Valid() || shape.Size() != t.Size() {
		return false
	}
	for y, n := range shape {
		for x := 0; x < n; x++ {
			if !t.Occupied(x, y) {
				return false
			}
		}
	}
	return true
}

// Counts returns the number of boxes, dominoes and tiles in t.
func (t *Tableau) Counts() (boxes, dominoes, tiles int) {
	for _, p := range t.pieces {
		switch v := p.(type) {
		case Domino:
			if v.Box {
				boxes++
			} else {
				dominoes++
			}
		case Tile:
			tiles++
		}
	}
	return boxes, dominoes, tiles
}
