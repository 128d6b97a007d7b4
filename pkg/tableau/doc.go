// Package tableau provides the grid model shared by type-A diagrams and
// type-D domino tableaux.
//
// # Overview
//
// A [Tableau] maps grid cells, indexed by column x and row y from the top-left
// corner, to the piece that covers them. Pieces are appended with
// [Tableau.Insert] in placement order, and the tableau remembers that order so
// renderers can draw pieces deterministically.
//
// Two piece kinds exist:
//
//   - [Tile]: a unit square, optionally labelled (used by type-A diagrams
//     and by the numbered cells of Littlewood-Richardson fillings)
//   - [Domino]: a 1×2 or 2×1 piece, or a fixed 2×2 box when [Domino.Box]
//     is set (used by type-D tableaux)
//
// # Shape Queries
//
// [Tableau.RowLength] and [Tableau.ColumnLength] count covered cells, so a
// tableau can stand in wherever a shape is expected. [Tableau.Shape] reads the
// row lengths back as a [partition.Partition].
//
// # Grid Parity
//
// Domino tableaux are read against a fixed 2-coloring of the grid. [ParityOf]
// classifies every cell into one of four classes:
//
//	W: even column, even row    X: odd column, even row
//	Y: even column, odd row     Z: odd column, odd row
//
// A shape built entirely from aligned 2×2 boxes has only W cells at its
// box corners; boundary cells of class X and Y mark where dominoes must go.
//
// # Construction
//
// [Diagram] builds the type-A Young diagram of a partition from blank tiles:
//
//	t := tableau.Diagram(partition.Partition{3, 1})
//	t.RowLength(0)    // 3
//	t.ColumnLength(0) // 2
//
// Tableaux returned by this module's algorithms are complete; callers should
// treat them as read-only.
package tableau
