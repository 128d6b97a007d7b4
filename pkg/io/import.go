package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/tableau"
)

// ReadJSON decodes a JSON tableau from r.
//
// The type must be "A" or "D" and every piece must have a known kind.
// Pieces are inserted in order; ReadJSON returns an error naming the piece
// index if one overlaps an earlier piece or has a negative coordinate. When
// the document carries a shape, it must match the shape of the pieces.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tableau.Tableau, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Type != tableau.TypeA && data.Type != tableau.TypeD {
		return nil, fmt.Errorf("decode: unknown tableau type %q", data.Type)
	}

	t := tableau.New(data.Type)
	for i, p := range data.Pieces {
		var pc tableau.Piece
		switch p.Kind {
		case kindTile:
			pc = tableau.Tile{X: p.X, Y: p.Y, Label: p.Label}
		case kindDomino:
			pc = tableau.Domino{X: p.X, Y: p.Y, Horizontal: p.Horizontal, Label: p.Label}
		case kindBox:
			pc = tableau.Domino{X: p.X, Y: p.Y, Box: true, Label: p.Label}
		default:
			return nil, fmt.Errorf("piece %d: unknown kind %q", i, p.Kind)
		}
		if err := t.Insert(pc); err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
	}

	if data.Shape != nil && !data.Shape.Equal(t.Shape()) {
		return nil, fmt.Errorf("shape %s does not match pieces (%s)", data.Shape, t.Shape())
	}
	return t, nil
}

// ImportJSON reads a JSON file at path and returns the decoded tableau.
func ImportJSON(path string) (*tableau.Tableau, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tableau file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
