package domino

import (
	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/tableau"
)

// Shape is a diagram that can report its row and column lengths.
// [*tableau.Tableau] implements it.
type Shape interface {
	RowLength(y int) int
	ColumnLength(x int) int
}

// Combine builds the type-D tableau of a pair of type-A diagrams.
//
// Cells shared by left and right become fixed 2×2 boxes. Every row of right
// that sticks out past the boxes is then laid as a strip of dominoes along
// the right-hand border, starting with a vertical domino and climbing one
// row whenever the cell above the next position is still free. Every column
// of left that sticks out is laid the same way along the bottom border,
// starting with a horizontal domino and stepping one column left whenever
// the cell to the left is free. Pieces are placed in that order and each
// occupancy check only sees pieces placed before it.
//
// An error means the two strips collided, which indicates an inconsistent
// Shape implementation.
func Combine(left, right Shape) (*tableau.Tableau, error) {
	c := &combiner{t: tableau.New(tableau.TypeD)}

	boxRows := min(left.ColumnLength(0), right.ColumnLength(0))
	rowHalf := make([]int, boxRows)
	for y := 0; y < boxRows; y++ {
		n := min(left.RowLength(y), right.RowLength(y))
		rowHalf[y] = n
		for x := 0; x < n; x++ {
			c.place(tableau.Domino{X: 2 * x, Y: 2 * y, Box: true})
		}
	}

	var colHalf []int
	for x := 0; x < c.t.RowLength(0); x += 2 {
		colHalf = append(colHalf, c.t.ColumnLength(x)/2)
	}

	for yA := 0; yA < right.ColumnLength(0); yA++ {
		length, boxed := right.RowLength(yA), at(rowHalf, yA)
		if length == boxed {
			continue
		}
		x, y := 2*boxed, 2*yA
		c.place(tableau.Domino{X: x, Y: y})
		x++
		for xA := boxed + 1; xA < length; xA++ {
			if y == 0 || c.t.Occupied(x, y-1) {
				c.place(tableau.Domino{X: x, Y: y, Horizontal: true})
				x += 2
			} else {
				y--
				c.place(tableau.Domino{X: x, Y: y})
				x++
			}
		}
	}

	for xA := 0; xA < left.RowLength(0); xA++ {
		length, boxed := left.ColumnLength(xA), at(colHalf, xA)
		if length == boxed {
			continue
		}
		x, y := 2*xA, 2*boxed
		c.place(tableau.Domino{X: x, Y: y, Horizontal: true})
		y++
		for yA := boxed + 1; yA < length; yA++ {
			if x == 0 || c.t.Occupied(x-1, y) {
				c.place(tableau.Domino{X: x, Y: y})
				y += 2
			} else {
				x--
				c.place(tableau.Domino{X: x, Y: y, Horizontal: true})
				y++
			}
		}
	}

	if c.err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, c.err, "combine")
	}
	return c.t, nil
}

// combiner places pieces and records the first insertion error.
type combiner struct {
	t   *tableau.Tableau
	err error
}

func (c *combiner) place(d tableau.Domino) {
	if c.err != nil {
		return
	}
	c.err = c.t.Insert(d)
}

func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}
