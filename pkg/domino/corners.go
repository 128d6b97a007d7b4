package domino

import (
	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
)

// SquareKind classifies a boundary cell that breaks the 2×2 box pattern.
type SquareKind string

const (
	FilledCorner SquareKind = "FC" // inside the diagram, on an X cell
	EmptyCorner  SquareKind = "EC" // outside the diagram, on an X cell
	FilledHole   SquareKind = "FH" // inside the diagram, on a Y cell
	EmptyHole    SquareKind = "EH" // outside the diagram, on a Y cell
)

// Filled reports whether the square lies inside the diagram.
func (k SquareKind) Filled() bool { return k == FilledCorner || k == FilledHole }

// Corner reports whether the square sits on an X cell.
func (k SquareKind) Corner() bool { return k == FilledCorner || k == EmptyCorner }

// Class returns 'F' for filled squares and 'E' for empty ones.
func (k SquareKind) Class() byte {
	if k.Filled() {
		return 'F'
	}
	return 'E'
}

// Square is a corner or hole found by [CornersAndHoles].
type Square struct {
	X    int
	Y    int
	Kind SquareKind

	pair int // first diagonal of the boundary step pair
}

// CornersAndHoles scans the boundary of p from its top-right corner down to
// one row past its last row and returns every cell where the shape departs
// from a union of aligned 2×2 boxes.
//
// Removable cells inside the diagram are reported as filled squares and
// addable cells outside it as empty squares; an X cell is a corner and a Y
// cell a hole. Filled and empty squares occur equally often exactly when p
// has an empty 2-core, which is when it is the shape of a domino tableau.
//
// With unboxedOnly set, empty corners and filled holes are left out.
// Only the type-D rules are implemented.
func CornersAndHoles(p partition.Partition, unboxedOnly bool) []Square {
	all := newBoundary(p).squares()
	if !unboxedOnly {
		return all
	}
	out := all[:0]
	for _, s := range all {
		if s.Kind == EmptyCorner || s.Kind == FilledHole {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FindInnerPairIndex returns the index of the last square that has the same
// filled/empty class as squares[0], immediately before the first square of
// the other class. The squares at the returned index and the one after it
// are adjacent on the boundary and can be resolved together.
//
// It fails with [errors.ErrCodeNotDominoTileable] when every square has the
// same class, including when squares is empty.
func FindInnerPairIndex(squares []Square) (int, error) {
	for i := 1; i < len(squares); i++ {
		if squares[i].Kind.Class() != squares[0].Kind.Class() {
			return i - 1, nil
		}
	}
	return 0, errors.New(errors.ErrCodeNotDominoTileable, "no inner pair among %d corners and holes", len(squares))
}
