// Package domino builds type-D domino tableaux: tilings of Young-diagram
// shapes by fixed 2×2 boxes and 1×2 or 2×1 dominoes.
//
// # Overview
//
// Two constructions are provided:
//
//   - [Fill] tiles the shape of a single partition. It repeatedly finds a
//     matched corner/hole pair on the boundary and peels the dominoes between
//     them, until only aligned 2×2 boxes remain.
//   - [Combine] builds a tableau from two type-A diagrams: their common cells
//     become boxes and the parts that stick out are laid as domino strips
//     along the right and bottom borders.
//
// [CombineTerms] applies [Combine] to every pair drawn from two weighted lists
// of shapes, such as two Littlewood-Richardson expansions.
//
// # Corners and Holes
//
// The boundary of a shape is read against the grid parity of the tableau
// package. Where the boundary leaves the 2×2 box grid it encloses a cell that
// is either filled (inside the shape) or empty (outside), on an X cell
// (a corner) or a Y cell (a hole). [CornersAndHoles] lists these cells from
// the top-right of the shape to the bottom-left, and [FindInnerPairIndex]
// locates the first adjacent filled/empty pair. A shape whose filled and
// empty squares do not pair up is not the shape of a domino tableau:
//
//	_, err := domino.Fill(partition.Partition{3})
//	errors.Is(err, errors.ErrCodeNotDominoTileable) // true
//
// Only type-D tableaux are supported; the corner rules for types B and C are
// not implemented.
package domino
