package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/render/styles"
	"github.com/matzehuels/domino/pkg/tableau"
)

func TestRenderSVG(t *testing.T) {
	tab := tableau.New(tableau.TypeD)
	_ = tab.Insert(tableau.Domino{X: 0, Y: 0, Box: true})
	_ = tab.Insert(tableau.Domino{X: 2, Y: 0, Horizontal: true, Label: "a&b"})

	svg := string(RenderSVG(tab, WithCellSize(10), WithLabels()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 50.0 30.0"`) {
		t.Errorf("unexpected header: %s", svg[:min(len(svg), 100)])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}
	if got := strings.Count(svg, "<rect"); got != 2 {
		t.Errorf("drew %d rects, want 2", got)
	}
	if !strings.Contains(svg, `id="piece-0-0" class="piece box" x="5.0" y="5.0" width="20.0" height="20.0"`) {
		t.Error("box geometry missing")
	}
	if !strings.Contains(svg, `id="piece-2-0" class="piece domino" x="25.0" y="5.0" width="20.0" height="10.0"`) {
		t.Error("domino geometry missing")
	}
	if !strings.Contains(svg, ">a&amp;b</text>") {
		t.Error("label should be escaped")
	}
}

func TestRenderSVGWithoutLabels(t *testing.T) {
	tab := tableau.Diagram(partition.Partition{2, 1})
	svg := string(RenderSVG(tab, WithStyle(styles.Parity{})))
	if strings.Contains(svg, "<text") {
		t.Error("labels drawn without WithLabels")
	}
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("drew %d rects, want 3", got)
	}
}

func TestWithCellSizeIgnoresNonPositive(t *testing.T) {
	r := newSVGRenderer(WithCellSize(0))
	if r.cellSize != DefaultCellSize {
		t.Errorf("cellSize = %v, want %v", r.cellSize, DefaultCellSize)
	}
}
