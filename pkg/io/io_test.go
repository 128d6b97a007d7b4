package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/domino/pkg/domino"
	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

func TestRoundTrip(t *testing.T) {
	filled, err := domino.Fill(partition.Partition{4, 2, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	filling, err := lr.Enumerate(partition.Partition{2, 1}, partition.Partition{2})[0].Tableau()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		tab  *tableau.Tableau
	}{
		{"diagram", tableau.Diagram(partition.Partition{3, 1})},
		{"domino tableau", filled},
		{"filling", filling},
		{"empty", tableau.New(tableau.TypeD)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteJSON(tt.tab, &buf); err != nil {
				t.Fatalf("WriteJSON: %v", err)
			}
			got, err := ReadJSON(&buf)
			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			if got.Type() != tt.tab.Type() {
				t.Errorf("Type() = %s, want %s", got.Type(), tt.tab.Type())
			}
			want := tt.tab.Pieces()
			pieces := got.Pieces()
			if len(pieces) != len(want) {
				t.Fatalf("read %d pieces, want %d", len(pieces), len(want))
			}
			for i := range want {
				if pieces[i] != want[i] {
					t.Errorf("piece %d = %+v, want %+v", i, pieces[i], want[i])
				}
			}
		})
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", `{"type":`, "decode"},
		{"unknown type", `{"type":"B","pieces":[]}`, "unknown tableau type"},
		{"unknown kind", `{"type":"A","pieces":[{"kind":"hexagon","x":0,"y":0}]}`, "piece 0: unknown kind"},
		{"overlap", `{"type":"D","pieces":[{"kind":"box","x":0,"y":0},{"kind":"domino","x":1,"y":1}]}`, "piece 1"},
		{"negative", `{"type":"A","pieces":[{"kind":"tile","x":-1,"y":0}]}`, "negative"},
		{"shape mismatch", `{"type":"A","shape":[2],"pieces":[{"kind":"tile","x":0,"y":0}]}`, "does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ReadJSON error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadJSONOverlapSentinel(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"type":"A","pieces":[{"kind":"tile","x":0,"y":0},{"kind":"tile","x":0,"y":0}]}`))
	if !errors.Is(err, tableau.ErrOverlap) {
		t.Fatalf("ReadJSON error = %v, want ErrOverlap", err)
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableau.json")
	want := tableau.Diagram(partition.Partition{2, 2})
	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !got.Shape().Equal(want.Shape()) {
		t.Errorf("Shape() = %v, want %v", got.Shape(), want.Shape())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of a missing file should fail")
	}
}
