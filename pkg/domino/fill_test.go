package domino

import (
	"testing"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name   string
		p      partition.Partition
		pieces []tableau.Domino
	}{
		{
			name:   "empty",
			p:      partition.Partition{},
			pieces: nil,
		},
		{
			name:   "horizontal",
			p:      partition.Partition{2},
			pieces: []tableau.Domino{{X: 0, Y: 0, Horizontal: true}},
		},
		{
			name:   "vertical",
			p:      partition.Partition{1, 1},
			pieces: []tableau.Domino{{X: 0, Y: 0}},
		},
		{
			name:   "single box",
			p:      partition.Partition{2, 2},
			pieces: []tableau.Domino{{X: 0, Y: 0, Box: true}},
		},
		{
			name: "hook",
			p:    partition.Partition{3, 1},
			pieces: []tableau.Domino{
				{X: 0, Y: 0},
				{X: 1, Y: 0, Horizontal: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fill(tt.p)
			if err != nil {
				t.Fatalf("Fill(%v) error: %v", tt.p, err)
			}
			if got.Type() != tableau.TypeD {
				t.Errorf("Type() = %v, want %v", got.Type(), tableau.TypeD)
			}
			pieces := got.Pieces()
			if len(pieces) != len(tt.pieces) {
				t.Fatalf("Fill(%v) placed %d pieces, want %d: %v", tt.p, len(pieces), len(tt.pieces), pieces)
			}
			for i, want := range tt.pieces {
				if pieces[i] != want {
					t.Errorf("piece %d = %+v, want %+v", i, pieces[i], want)
				}
			}
		})
	}
}

func TestFillSingleBox(t *testing.T) {
	got, err := Fill(partition.Partition{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	boxes, dominoes, _ := got.Counts()
	if boxes != 1 || dominoes != 0 {
		t.Errorf("Fill([2,2]) = %d boxes, %d dominoes, want 1, 0", boxes, dominoes)
	}
}

func TestFillNotTileable(t *testing.T) {
	for _, p := range []partition.Partition{{1}, {3}, {2, 1}, {3, 2, 1}, {2, 2, 1}} {
		t.Run(p.String(), func(t *testing.T) {
			_, err := Fill(p)
			if !errors.Is(err, errors.ErrCodeNotDominoTileable) {
				t.Fatalf("Fill(%v) error = %v, want %s", p, err, errors.ErrCodeNotDominoTileable)
			}
			if got := errors.UserMessage(err); got != p.String()+" is not the shape of a domino tableau" {
				t.Errorf("UserMessage = %q", got)
			}
		})
	}
}

func TestFillInvalidPartition(t *testing.T) {
	_, err := Fill(partition.Partition{1, 2})
	if !errors.Is(err, errors.ErrCodeInvalidPartition) {
		t.Fatalf("Fill([1,2]) error = %v, want %s", err, errors.ErrCodeInvalidPartition)
	}
}

// TestFillTilesShape checks every partition up to size 12: Fill succeeds
// exactly when the shape has as many cells of one checkerboard color as of
// the other, and then covers the shape exactly.
func TestFillTilesShape(t *testing.T) {
	for _, p := range allPartitions(12) {
		got, err := Fill(p)
		if !balanced(p) {
			if !errors.Is(err, errors.ErrCodeNotDominoTileable) {
				t.Errorf("Fill(%v) error = %v, want %s", p, err, errors.ErrCodeNotDominoTileable)
			}
			continue
		}
		if err != nil {
			t.Errorf("Fill(%v) error: %v", p, err)
			continue
		}
		if got.Size() != p.Size() {
			t.Errorf("Fill(%v) covers %d cells, want %d", p, got.Size(), p.Size())
		}
		if !got.Shape().Equal(p) || !got.IsDiagram() {
			t.Errorf("Fill(%v) has shape %v", p, got.Shape())
		}
		for _, piece := range got.Pieces() {
			d, ok := piece.(tableau.Domino)
			if !ok {
				t.Errorf("Fill(%v) placed %T", p, piece)
				continue
			}
			if d.Box && (d.X%2 != 0 || d.Y%2 != 0) {
				t.Errorf("Fill(%v) placed unaligned box at (%d,%d)", p, d.X, d.Y)
			}
		}
	}
}

func TestCornersAndHoles(t *testing.T) {
	tests := []struct {
		name        string
		p           partition.Partition
		unboxedOnly bool
		want        []Square
	}{
		{
			name: "empty",
			p:    partition.Partition{},
		},
		{
			name: "box",
			p:    partition.Partition{2, 2},
		},
		{
			name: "horizontal domino",
			p:    partition.Partition{2},
			want: []Square{{X: 1, Y: 0, Kind: FilledCorner}, {X: 0, Y: 1, Kind: EmptyHole}},
		},
		{
			name: "vertical domino",
			p:    partition.Partition{1, 1},
			want: []Square{{X: 1, Y: 0, Kind: EmptyCorner}, {X: 0, Y: 1, Kind: FilledHole}},
		},
		{
			name:        "vertical domino unboxed",
			p:           partition.Partition{1, 1},
			unboxedOnly: true,
		},
		{
			name: "odd row",
			p:    partition.Partition{3},
			want: []Square{{X: 3, Y: 0, Kind: EmptyCorner}, {X: 0, Y: 1, Kind: EmptyHole}},
		},
		{
			name:        "odd row unboxed",
			p:           partition.Partition{3},
			unboxedOnly: true,
			want:        []Square{{X: 0, Y: 1, Kind: EmptyHole}},
		},
		{
			name: "hook",
			p:    partition.Partition{3, 1},
			want: []Square{{X: 3, Y: 0, Kind: EmptyCorner}, {X: 0, Y: 1, Kind: FilledHole}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CornersAndHoles(tt.p, tt.unboxedOnly)
			if len(got) != len(tt.want) {
				t.Fatalf("CornersAndHoles(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
			for i := range got {
				if got[i].X != tt.want[i].X || got[i].Y != tt.want[i].Y || got[i].Kind != tt.want[i].Kind {
					t.Errorf("square %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCornersAndHolesParity(t *testing.T) {
	for _, p := range allPartitions(10) {
		filled, empty := 0, 0
		for _, s := range CornersAndHoles(p, false) {
			parity := tableau.ParityOf(s.X, s.Y)
			if s.Kind.Corner() != (parity == tableau.X) || (!s.Kind.Corner() && parity != tableau.Y) {
				t.Errorf("%v: square %+v on %v cell", p, s, parity)
			}
			inside := s.Y < len(p) && s.X < p[s.Y]
			if inside != s.Kind.Filled() {
				t.Errorf("%v: square %+v filled=%v but inside=%v", p, s, s.Kind.Filled(), inside)
			}
			if s.Kind.Filled() {
				filled++
			} else {
				empty++
			}
		}
		if (filled == empty) != balanced(p) {
			t.Errorf("%v: %d filled and %d empty squares, balanced=%v", p, filled, empty, balanced(p))
		}
	}
}

func TestFindInnerPairIndex(t *testing.T) {
	fc := Square{Kind: FilledCorner}
	fh := Square{Kind: FilledHole}
	ec := Square{Kind: EmptyCorner}
	eh := Square{Kind: EmptyHole}

	tests := []struct {
		name    string
		squares []Square
		want    int
		wantErr bool
	}{
		{name: "empty", squares: nil, wantErr: true},
		{name: "single", squares: []Square{fc}, wantErr: true},
		{name: "all filled", squares: []Square{fc, fh, fc}, wantErr: true},
		{name: "adjacent", squares: []Square{ec, fh}, want: 0},
		{name: "run", squares: []Square{fc, fh, eh, ec}, want: 1},
		{name: "empty run", squares: []Square{eh, ec, eh, fc, fh}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindInnerPairIndex(tt.squares)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeNotDominoTileable) {
					t.Fatalf("FindInnerPairIndex error = %v, want %s", err, errors.ErrCodeNotDominoTileable)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindInnerPairIndex error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FindInnerPairIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

// balanced reports whether p has as many cells with x+y even as odd.
func balanced(p partition.Partition) bool {
	diff := 0
	for y, n := range p {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				diff++
			} else {
				diff--
			}
		}
	}
	return diff == 0
}

// allPartitions returns every partition of every size up to n.
func allPartitions(n int) []partition.Partition {
	var out []partition.Partition
	var gen func(prefix partition.Partition, remaining, max int)
	gen = func(prefix partition.Partition, remaining, max int) {
		out = append(out, prefix.Clone())
		for part := 1; part <= max && part <= remaining; part++ {
			gen(append(prefix, part), remaining-part, part)
		}
	}
	gen(partition.Partition{}, n, n)
	return out
}
