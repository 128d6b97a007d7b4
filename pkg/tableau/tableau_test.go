package tableau

import (
	"errors"
	"testing"

	"github.com/matzehuels/domino/pkg/partition"
)

func TestDiagram(t *testing.T) {
	tests := []struct {
		name     string
		p        partition.Partition
		rowLens  []int
		colLens  []int
		wantSize int
	}{
		{"empty", partition.Partition{}, []int{0}, []int{0}, 0},
		{"single", partition.Partition{1}, []int{1, 0}, []int{1, 0}, 1},
		{"hook", partition.Partition{3, 1}, []int{3, 1, 0}, []int{2, 1, 1, 0}, 4},
		{"square", partition.Partition{2, 2}, []int{2, 2}, []int{2, 2}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagram(tt.p)
			if d.Type() != TypeA {
				t.Errorf("Type() = %v, want %v", d.Type(), TypeA)
			}
			if d.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", d.Size(), tt.wantSize)
			}
			for y, want := range tt.rowLens {
				if got := d.RowLength(y); got != want {
					t.Errorf("RowLength(%d) = %d, want %d", y, got, want)
				}
			}
			for x, want := range tt.colLens {
				if got := d.ColumnLength(x); got != want {
					t.Errorf("ColumnLength(%d) = %d, want %d", x, got, want)
				}
			}
			if !d.Shape().Equal(tt.p) {
				t.Errorf("Shape() = %v, want %v", d.Shape(), tt.p)
			}
			if !d.IsDiagram() {
				t.Error("IsDiagram() = false")
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tab := New(TypeD)
	if err := tab.Insert(Domino{X: 0, Y: 0, Box: true}); err != nil {
		t.Fatalf("Insert box: %v", err)
	}
	if err := tab.Insert(Domino{X: 2, Y: 0}); err != nil {
		t.Fatalf("Insert vertical: %v", err)
	}

	err := tab.Insert(Domino{X: 1, Y: 1, Horizontal: true})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("Insert overlapping = %v, want ErrOverlap", err)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d after rejected insert, want 2", tab.Len())
	}

	if err := tab.Insert(Tile{X: -1, Y: 0}); err == nil {
		t.Error("Insert at negative coordinate succeeded")
	}

	if got := tab.RowLength(0); got != 3 {
		t.Errorf("RowLength(0) = %d, want 3", got)
	}
	if got := tab.ColumnLength(2); got != 2 {
		t.Errorf("ColumnLength(2) = %d, want 2", got)
	}

	p, ok := tab.Get(1, 1)
	if !ok {
		t.Fatal("Get(1,1) found nothing")
	}
	if d, _ := p.(Domino); !d.Box {
		t.Errorf("Get(1,1) = %#v, want the box", p)
	}
	if tab.Occupied(3, 0) {
		t.Error("Occupied(3,0) = true")
	}

	boxes, dominoes, tiles := tab.Counts()
	if boxes != 1 || dominoes != 1 || tiles != 0 {
		t.Errorf("Counts() = %d,%d,%d, want 1,1,0", boxes, dominoes, tiles)
	}
	if w, h := tab.Bounds(); w != 3 || h != 2 {
		t.Errorf("Bounds() = %d,%d, want 3,2", w, h)
	}
}

func TestPiecesPreserveOrder(t *testing.T) {
	tab := New(TypeA)
	for _, tile := range []Tile{{X: 0, Y: 1, Label: "b"}, {X: 0, Y: 0, Label: "a"}} {
		if err := tab.Insert(tile); err != nil {
			t.Fatal(err)
		}
	}
	pieces := tab.Pieces()
	if pieces[0].Text() != "b" || pieces[1].Text() != "a" {
		t.Errorf("Pieces() order = %q,%q, want b,a", pieces[0].Text(), pieces[1].Text())
	}
	pieces[0] = Tile{Label: "z"}
	if tab.Pieces()[0].Text() != "b" {
		t.Error("Pieces() exposes internal storage")
	}
}

func TestDominoCells(t *testing.T) {
	tests := []struct {
		name string
		d    Domino
		w, h int
	}{
		{"horizontal", Domino{X: 1, Y: 2, Horizontal: true}, 2, 1},
		{"vertical", Domino{X: 1, Y: 2}, 1, 2},
		{"box", Domino{X: 0, Y: 0, Box: true, Horizontal: true}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w, h := Size(tt.d); w != tt.w || h != tt.h {
				t.Errorf("Size() = %d,%d, want %d,%d", w, h, tt.w, tt.h)
			}
			if tt.d.Cells()[0] != tt.d.Anchor() {
				t.Error("first cell is not the anchor")
			}
			tr := tt.d.Transposed()
			if w, h := Size(tr); w != tt.h || h != tt.w {
				t.Errorf("Transposed size = %d,%d, want %d,%d", w, h, tt.h, tt.w)
			}
		})
	}
}

func TestParityOf(t *testing.T) {
	tests := []struct {
		x, y int
		want Parity
	}{
		{0, 0, W},
		{1, 0, X},
		{0, 1, Y},
		{1, 1, Z},
		{2, 3, Y},
		{-1, 0, X},
	}
	for _, tt := range tests {
		if got := ParityOf(tt.x, tt.y); got != tt.want {
			t.Errorf("ParityOf(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if W.String() != "W" {
		t.Errorf("String() = %q", W.String())
	}
}
