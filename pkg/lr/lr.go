package lr

import (
	"sort"
	"strconv"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

// Placement is one number added to the output shape, at column X of row Y.
// Entry is the 1-based row of the number in the inserted partition.
type Placement struct {
	Number int `json:"n"`
	Entry  int `json:"entry"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Filling is one complete Littlewood-Richardson filling: the base shape
// extended by the placements, in placement order, to the final shape.
type Filling struct {
	Base       partition.Partition `json:"base"`
	Shape      partition.Partition `json:"shape"`
	Placements []Placement         `json:"placements"`
}

// Tableau returns the filling as a type-A tableau: blank tiles for the base
// shape, then one tile per placement labelled with its number. Fillings from
// [Enumerate] always convert; a decoded filling whose placements overlap the
// base or each other, or leave the grid, returns an invalid input error.
func (f Filling) Tableau() (*tableau.Tableau, error) {
	t := tableau.Diagram(f.Base)
	for i, p := range f.Placements {
		if err := t.Insert(tableau.Tile{X: p.X, Y: p.Y, Label: strconv.Itoa(p.Number)}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "placement %d of filling %s", i+1, f.Shape)
		}
	}
	return t, nil
}

// Coefficient is the number of fillings that reach Shape.
type Coefficient struct {
	Shape partition.Partition `json:"shape"`
	Count int                 `json:"count"`
}

// Enumerate returns every filling of first by the numbers 1..N of second,
// where N is the size of second, in breadth-first order of the search tree.
// Both arguments must be partitions. An empty second partition yields a
// single filling with no placements.
func Enumerate(first, second partition.Partition) []Filling {
	arena := search(first, second)
	n := second.Size()

	var out []Filling
	for i := range arena {
		if arena[i].number == n {
			out = append(out, fillingAt(arena, i))
		}
	}
	return out
}

// Coefficients groups fillings by final shape and counts them. Shapes are
// ordered by [partition.Compare], larger first rows first.
func Coefficients(fillings []Filling) []Coefficient {
	counts := make(map[string]int)
	shapes := make(map[string]partition.Partition)
	for _, f := range fillings {
		key := f.Shape.String()
		counts[key]++
		shapes[key] = f.Shape
	}

	out := make([]Coefficient, 0, len(counts))
	for key, count := range counts {
		out = append(out, Coefficient{Shape: shapes[key], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return partition.Compare(out[i].Shape, out[j].Shape) < 0
	})
	return out
}

// LittlewoodRichardson expands the product of the Schur functions of first
// and second: each coefficient is the multiplicity of its shape.
func LittlewoodRichardson(first, second partition.Partition) []Coefficient {
	return Coefficients(Enumerate(first, second))
}

// fillingAt follows parent links from leaf i back to the root.
func fillingAt(arena []node, i int) Filling {
	leaf := arena[i]
	var placements []Placement
	for ; arena[i].parent >= 0; i = arena[i].parent {
		nd := arena[i]
		placements = append(placements, Placement{
			Number: nd.number,
			Entry:  nd.in.row + 1,
			X:      nd.out.col,
			Y:      nd.out.row,
		})
	}
	for l, r := 0, len(placements)-1; l < r; l, r = l+1, r-1 {
		placements[l], placements[r] = placements[r], placements[l]
	}
	return Filling{
		Base:       arena[i].shape.Clone(),
		Shape:      leaf.shape,
		Placements: placements,
	}
}
