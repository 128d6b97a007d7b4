// Package lr enumerates Littlewood-Richardson fillings with the
// Remmel-Whitney tree search.
//
// # Overview
//
// Given a first partition λ and a second partition μ of size N, the numbers
// 1..N are read off μ row by row, with μ's rows right-justified, and added
// one at a time to the diagram of λ. Every way to add them that keeps the
// shape a partition and respects the row and column rules of the layout is
// one Littlewood-Richardson filling. Grouping fillings by final shape ν and
// counting gives the coefficient of s_ν in the product s_λ·s_μ:
//
//	coeffs := lr.LittlewoodRichardson(partition.Partition{2, 1}, partition.Partition{2, 1})
//	// 4,2: 1   4,1,1: 1   3,3: 1   3,2,1: 2   3,1,1,1: 1   2,2,2: 1   2,2,1,1: 1
//
// # Search Tree
//
// Each tree node holds one placed number and points at the node holding the
// previous number. Nodes are kept in an arena that also serves as the
// breadth-first queue, so the search needs no separate queue structure.
// [Tree] exposes the whole arena for inspection and rendering; [Enumerate]
// keeps only the leaves.
//
// # Cost
//
// The tree can grow exponentially with N. The search has no cancellation
// point; callers that accept user input should bound the size of μ before
// calling into this package.
package lr
