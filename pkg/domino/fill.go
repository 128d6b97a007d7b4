package domino

import (
	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

// axis selects which class of boundary steps a rim walk moves.
//
// Pairs that start with a filled corner are resolved along rows: the walk
// moves the odd steps. Pairs that start with an empty square are resolved
// along columns, which is the same walk on the transposed diagram; on the
// untransposed boundary it moves the even steps instead.
type axis int

const (
	rows axis = iota
	columns
)

func (a axis) offset() int {
	if a == rows {
		return 1
	}
	return 0
}

// Fill tiles the shape of p with fixed 2×2 boxes and dominoes and returns
// the resulting type-D tableau. Boxes come first in placement order, then
// the dominoes, innermost first.
//
// Fill fails with [errors.ErrCodeInvalidPartition] if p is not a partition
// and with [errors.ErrCodeNotDominoTileable] if p is not the shape of a
// domino tableau.
func Fill(p partition.Partition) (*tableau.Tableau, error) {
	if !p.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidPartition, "%v is not a partition", []int(p))
	}

	b := newBoundary(p)
	var peeled []tableau.Domino
	for {
		squares := b.squares()
		if len(squares) == 0 {
			break
		}
		i, err := FindInnerPairIndex(squares)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNotDominoTileable, err,
				"%s is not the shape of a domino tableau", p)
		}
		a := columns
		if squares[0].Kind.Filled() {
			a = rows
		}
		dominoes, err := b.walk(squares[i+1].pair, squares[i].pair, a)
		if err != nil {
			return nil, err
		}
		peeled = append(peeled, dominoes...)
	}

	t := tableau.New(tableau.TypeD)
	core := b.shape()
	for y := 0; y < len(core); y += 2 {
		for x := 0; x < core[y]; x += 2 {
			if err := t.Insert(tableau.Domino{X: x, Y: y, Box: true}); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "fill %s", p)
			}
		}
	}
	for i := len(peeled) - 1; i >= 0; i-- {
		if err := t.Insert(peeled[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "fill %s", p)
		}
	}
	return t, nil
}

// walk resolves the defect pairs starting at diagonals low and high, which
// have no other defect between them. Along the chosen axis the steps read
// east, ..., north from low to high and must end up north, ..., east with
// the steps in between unchanged. That takes one domino removal across every
// gap between consecutive steps, performed from the top-right end inward
// whenever the gap has an east step below a north step.
func (b *boundary) walk(low, high int, a axis) ([]tableau.Domino, error) {
	start := low + a.offset()
	gaps := (high - low) / 2
	done := make([]bool, gaps)

	var out []tableau.Domino
	for len(out) < gaps {
		progressed := false
		for j := gaps - 1; j >= 0; j-- {
			d := start + 2*j
			if done[j] || b.at(d) != east || b.at(d+2) != north {
				continue
			}
			out = append(out, b.removeDomino(d))
			done[j] = true
			progressed = true
		}
		if !progressed {
			return nil, errors.New(errors.ErrCodeInternal, "rim walk between diagonals %d and %d is stuck", low, high)
		}
	}
	return out, nil
}
