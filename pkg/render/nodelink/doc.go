// Package nodelink renders Littlewood-Richardson search trees as node-link
// diagrams.
//
// # Overview
//
// Each node of the tree from [lr.Tree] becomes a box labelled with the
// number it placed and the shape reached so far; arrows point from parent
// to child. Leaves, the complete fillings, are drawn bold.
//
// # Usage
//
//	dot := nodelink.TreeDOT(lr.Tree(first, second), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [lr.Tree]: github.com/matzehuels/domino/pkg/lr.Tree
package nodelink
