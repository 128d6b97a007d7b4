package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

const (
	kindTile   = "tile"
	kindDomino = "domino"
	kindBox    = "box"
)

type document struct {
	Type   tableau.Type        `json:"type"`
	Shape  partition.Partition `json:"shape,omitempty"`
	Pieces []piece             `json:"pieces"`
}

type piece struct {
	Kind       string `json:"kind"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Horizontal bool   `json:"horizontal,omitempty"`
	Label      string `json:"label,omitempty"`
}

// WriteJSON encodes a tableau as JSON and writes it to w.
// Pieces are written in placement order and can be re-imported with
// [ReadJSON].
func WriteJSON(t *tableau.Tableau, w io.Writer) error {
	out := document{
		Type:   t.Type(),
		Shape:  t.Shape(),
		Pieces: make([]piece, 0, t.Len()),
	}
	for _, p := range t.Pieces() {
		switch p := p.(type) {
		case tableau.Tile:
			out.Pieces = append(out.Pieces, piece{Kind: kindTile, X: p.X, Y: p.Y, Label: p.Label})
		case tableau.Domino:
			kind := kindDomino
			if p.Box {
				kind = kindBox
			}
			out.Pieces = append(out.Pieces, piece{Kind: kind, X: p.X, Y: p.Y, Horizontal: p.Horizontal && !p.Box, Label: p.Label})
		default:
			return fmt.Errorf("encode: unsupported piece %T", p)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tableau to a JSON file at path.
func ExportJSON(t *tableau.Tableau, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
