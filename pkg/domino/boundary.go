package domino

import (
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

// step is one unit edge of a diagram's outer boundary, walked from the
// bottom-left to the top-right.
type step byte

const (
	east  step = 'R'
	north step = 'U'
)

// boundary is the outer edge of a Young diagram as a sequence of steps.
//
// Step d starts at a lattice point whose column minus row equals d, so a
// cell with content c = x - y has its bottom edge at step c-1 and its right
// edge at step c. Steps below lo are all north and steps at or above
// lo+len(steps) are all east; lo is even so that aligned step pairs
// (2k, 2k+1) line up with the 2×2 box grid.
type boundary struct {
	lo    int
	steps []step
}

func newBoundary(p partition.Partition) *boundary {
	lo := -len(p) - 2
	if lo%2 != 0 {
		lo--
	}
	hi := p.At(0) + 2
	if hi%2 != 0 {
		hi++
	}

	b := &boundary{lo: lo, steps: make([]step, 0, hi-lo)}
	x := 0
	for y := -lo - 1; y >= 0; y-- {
		for ; x < p.At(y); x++ {
			b.steps = append(b.steps, east)
		}
		b.steps = append(b.steps, north)
	}
	for len(b.steps) < hi-lo {
		b.steps = append(b.steps, east)
	}
	return b
}

func (b *boundary) hi() int { return b.lo + len(b.steps) }

func (b *boundary) at(d int) step {
	switch {
	case d < b.lo:
		return north
	case d >= b.hi():
		return east
	}
	return b.steps[d-b.lo]
}

func (b *boundary) set(d int, s step) { b.steps[d-b.lo] = s }

// point returns the lattice point where step d starts.
func (b *boundary) point(d int) (x, y int) {
	y = -b.lo
	for i := b.lo; i < d; i++ {
		if b.at(i) == east {
			x++
		} else {
			y--
		}
	}
	return x, y
}

// shape reads the row lengths back off the boundary.
func (b *boundary) shape() partition.Partition {
	rows := make(partition.Partition, -b.lo)
	x, y := 0, -b.lo
	for _, s := range b.steps {
		if s == east {
			x++
			continue
		}
		y--
		rows[y] = x
	}
	return partition.Trim(rows)
}

// squares lists the cells where the boundary leaves the 2×2 box grid, from
// the top-right of the diagram down to its bottom-left. An aligned pair
// east-north encloses a filled cell and north-east an empty one; both sit
// at the pair's start point shifted up one row, which is always an X or a
// Y cell.
func (b *boundary) squares() []Square {
	var out []Square
	for d := b.hi() - 2; d >= b.lo; d -= 2 {
		first, second := b.at(d), b.at(d+1)
		if first == second {
			continue
		}
		x, y := b.point(d)
		y--
		corner := tableau.ParityOf(x, y) == tableau.X
		var kind SquareKind
		switch {
		case first == east && corner:
			kind = FilledCorner
		case first == east:
			kind = FilledHole
		case corner:
			kind = EmptyCorner
		default:
			kind = EmptyHole
		}
		out = append(out, Square{X: x, Y: y, Kind: kind, pair: d})
	}
	return out
}

// removeDomino swaps the east step at d with the north step at d+2, which
// takes one domino off the rim. The step in between decides its orientation.
func (b *boundary) removeDomino(d int) tableau.Domino {
	x, y := b.point(d)
	var dom tableau.Domino
	if b.at(d+1) == east {
		dom = tableau.Domino{X: x, Y: y - 1, Horizontal: true}
	} else {
		dom = tableau.Domino{X: x, Y: y - 2}
	}
	b.set(d, north)
	b.set(d+2, east)
	return dom
}
