package lr

import "github.com/matzehuels/domino/pkg/partition"

// position is a (row, column) pair, both counted from zero.
type position struct {
	row, col int
}

// node is one number placed in the output shape. Nodes live in an arena and
// point at their parent, the node holding the previous number, by index.
//
// The second partition is laid out right-justified. current holds the column
// bounds for the node's row of that layout and next collects the bounds for
// the row below it: a number may not be placed right of the column where the
// number above it in the layout landed. Both slices are shared between nodes
// and never written after the node is created.
type node struct {
	number  int
	shape   partition.Partition
	in      position
	out     position
	current []int
	next    []int
	parent  int
}

// search builds the whole tree breadth-first. The arena doubles as the
// queue: head walks forward over it while children are appended behind.
func search(first, second partition.Partition) []node {
	n := second.Size()
	width := second.At(0)

	// No column index can reach first[0]+n, so this bound never binds.
	caps := make([]int, width)
	for i := range caps {
		caps[i] = first.At(0) + n
	}

	arena := []node{{
		number:  0,
		shape:   first.Clone(),
		in:      position{-1, -1},
		out:     position{0, 0},
		current: caps,
		next:    caps,
		parent:  -1,
	}}
	for head := 0; head < len(arena); head++ {
		if arena[head].number == n {
			continue
		}
		arena = append(arena, children(arena[head], head, second)...)
	}
	return arena
}

// children returns the placements of the number after p's.
//
// When p is the root or ends its row of the second partition, the next
// number starts a new input row: it may open a new output row at the bottom
// of column 0, and the bounds roll over to the row p collected. Either way
// the number may then be appended to any output row at or above p's whose
// row above is strictly longer, moving up until the row end passes the
// column bound.
func children(p node, parent int, second partition.Partition) []node {
	width := second.At(0)
	in := position{p.in.row, p.in.col + 1}
	current, next := p.current, p.next
	row := p.out.row

	var kids []node
	if p.number == 0 || p.in.col == width-1 {
		in.row++
		in.col = width - second[in.row]
		current, next = p.next, nil

		shape := append(p.shape.Clone(), 1)
		kidNext := make([]int, width)
		kidNext[in.col] = 0
		kids = append(kids, node{
			number:  p.number + 1,
			shape:   shape,
			in:      in,
			out:     position{len(shape) - 1, 0},
			current: current,
			next:    kidNext,
			parent:  parent,
		})
		row = len(p.shape) - 1
	}

	bound := current[in.col]
	for row >= 0 {
		if row > 0 && p.shape[row-1] == p.shape[row] {
			row--
			continue
		}
		col := p.shape[row]
		if col > bound {
			break
		}

		shape := p.shape.Clone()
		shape[row]++
		kidNext := make([]int, width)
		copy(kidNext, next)
		kidNext[in.col] = col
		kids = append(kids, node{
			number:  p.number + 1,
			shape:   shape,
			in:      in,
			out:     position{row, col},
			current: current,
			next:    kidNext,
			parent:  parent,
		})
		row--
	}
	return kids
}

// TreeNode is a node of the search tree as exposed by [Tree]. The root has
// Number 0 and Parent -1.
type TreeNode struct {
	Number   int                 `json:"n"`
	Shape    partition.Partition `json:"shape"`
	Row      int                 `json:"row"`
	Column   int                 `json:"column"`
	InputRow int                 `json:"input_row"`
	InputCol int                 `json:"input_column"`
	Parent   int                 `json:"parent"`
	Leaf     bool                `json:"leaf"`
}

// Tree returns the complete search tree behind [Enumerate] in breadth-first
// order. A node's Parent is its index in the returned slice.
func Tree(first, second partition.Partition) []TreeNode {
	arena := search(first, second)
	n := second.Size()
	out := make([]TreeNode, len(arena))
	for i, nd := range arena {
		out[i] = TreeNode{
			Number:   nd.number,
			Shape:    nd.shape,
			Row:      nd.out.row,
			Column:   nd.out.col,
			InputRow: nd.in.row,
			InputCol: nd.in.col,
			Parent:   nd.parent,
			Leaf:     nd.number == n,
		}
	}
	return out
}
