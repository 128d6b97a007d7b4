// Package io provides JSON import and export for tableaux.
//
// # Overview
//
// Computed tableaux are saved so they can be rendered again later, passed to
// external tools, or compared across runs. The format lists the pieces in
// placement order, which makes a round trip exact: importing an exported
// tableau yields the same pieces in the same order.
//
// # JSON Format
//
//	{
//	  "type": "D",
//	  "shape": [4, 2],
//	  "pieces": [
//	    {"kind": "box", "x": 0, "y": 0},
//	    {"kind": "domino", "x": 2, "y": 0, "horizontal": true, "label": "1"}
//	  ]
//	}
//
// Fields:
//   - type: "A" for diagrams and fillings, "D" for domino tableaux
//   - shape: informational on export; checked against the pieces on import
//     when present
//   - pieces: "tile", "domino" or "box" entries anchored at their top-left
//     cell
//
// # Import
//
// Use [ImportJSON] to read a tableau from a file path, or [ReadJSON] to read
// from any io.Reader. Pieces are inserted one by one, so overlapping or
// negative pieces are rejected with the index of the offending entry.
//
// # Export
//
// Use [ExportJSON] to write a tableau to a file, or [WriteJSON] to write to
// any io.Writer.
package io
