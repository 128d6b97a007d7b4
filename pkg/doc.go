// Package pkg provides the core libraries for domino tableaux and
// Littlewood-Richardson fillings.
//
// # Overview
//
// Domino works with Young-diagram shapes. It tiles them with fixed 2×2 boxes
// and dominoes, combines pairs of diagrams into type-D tableaux, and expands
// products of Schur functions by enumerating Littlewood-Richardson fillings.
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [partition], [tableau], [domino], [lr]
//  2. Output: [render], [io]
//  3. Orchestration and infrastructure: [pipeline], [cache], [config],
//     [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	"4,2,2"  (text)
//	    ↓
//	[partition] package (parse, validate, transpose)
//	    ↓
//	[tableau] package (Young diagram on the cell grid)
//	    ↓
//	[domino] package (Fill, Combine)  or  [lr] package (Enumerate)
//	    ↓
//	[render] package (text, SVG, PNG, PDF, DOT)
//
// # Quick Start
//
// Tile a shape and draw it:
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/domino/pkg/domino"
//	    "github.com/matzehuels/domino/pkg/partition"
//	    "github.com/matzehuels/domino/pkg/render"
//	)
//
//	p, _ := partition.Validate("4,2")
//	t, err := domino.Fill(p)
//	if err != nil {
//	    return err // NOT_DOMINO_TILEABLE for shapes such as 3
//	}
//	fmt.Print(render.Text(t))
//
// Expand a product of Schur functions:
//
//	for _, c := range lr.LittlewoodRichardson(partition.Partition{2, 1}, partition.Partition{2, 1}) {
//	    fmt.Println(c.Shape, c.Count)
//	}
//
// # Main Packages
//
// ## Domain Logic
//
//   - [partition]: integer partitions, parsing, conjugation, ordering
//   - [tableau]: the cell grid of boxes, dominoes and tiles
//   - [domino]: corner and hole analysis, Fill, Combine, CombineTerms
//   - [lr]: the Remmel-Whitney search tree and coefficients
//
// ## Output
//
//   - [render]: plain-text drawings and rsvg-convert conversion
//   - [render/sink]: SVG, PNG and PDF writers
//   - [render/styles]: colour schemes for SVG output
//   - [render/nodelink]: DOT and Graphviz rendering of search trees
//   - [io]: JSON import and export of tableaux
//
// ## Infrastructure
//
//   - [pipeline]: the cached Runner shared by the CLI and the HTTP server
//   - [cache]: the Cache interface, an in-memory LRU and key derivation
//   - [config]: TOML or YAML settings
//   - [errors]: coded errors with user-facing messages
//   - [observability]: compute, cache and HTTP hooks with a Prometheus backend
//
// # Limits
//
// The search tree behind [lr] grows exponentially with the size of the second
// partition. [pipeline.Runner] refuses inputs above Options.MaxBoxes before
// starting the search, and shapes above Options.MaxCells before tiling or
// rendering; library callers that take user input should bound it the same
// way.
//
// # Testing
//
// Every package carries table-driven tests and runnable examples:
//
//	go test ./...
//	go test ./pkg/lr -run Example
package pkg
