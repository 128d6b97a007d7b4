package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/domino/pkg/tableau"
)

const cellWidth = 3

// Text draws t with ASCII box characters, one line per grid line and one per
// row of cells. Labels are centered in the anchor cell of their piece and cut
// to three terminal columns. An empty tableau draws as the empty string.
func Text(t *tableau.Tableau) string {
	w, h := t.Bounds()
	if w == 0 {
		return ""
	}
	g := grid{t}

	var sb strings.Builder
	for y := 0; y <= h; y++ {
		var line strings.Builder
		for x := 0; x <= w; x++ {
			line.WriteByte(g.corner(x, y))
			if x < w {
				if g.horizontal(x, y) {
					line.WriteString(strings.Repeat("-", cellWidth))
				} else {
					line.WriteString(strings.Repeat(" ", cellWidth))
				}
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
		if y == h {
			break
		}

		line.Reset()
		for x := 0; x <= w; x++ {
			if g.vertical(x, y) {
				line.WriteByte('|')
			} else {
				line.WriteByte(' ')
			}
			if x < w {
				line.WriteString(g.label(x, y))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type grid struct {
	t *tableau.Tableau
}

func (g grid) owner(x, y int) (tableau.Cell, bool) {
	p, ok := g.t.Get(x, y)
	if !ok {
		return tableau.Cell{}, false
	}
	return p.Anchor(), true
}

// border reports whether a line separates cells a and b: at least one is
// covered and they do not belong to the same piece.
func (g grid) border(ax, ay, bx, by int) bool {
	pa, oka := g.owner(ax, ay)
	pb, okb := g.owner(bx, by)
	if !oka && !okb {
		return false
	}
	return !(oka && okb && pa == pb)
}

// horizontal is the line above cell (x, y).
func (g grid) horizontal(x, y int) bool { return g.border(x, y-1, x, y) }

// vertical is the line left of cell (x, y).
func (g grid) vertical(x, y int) bool { return g.border(x-1, y, x, y) }

func (g grid) corner(x, y int) byte {
	v := g.vertical(x, y-1) || g.vertical(x, y)
	h := g.horizontal(x-1, y) || g.horizontal(x, y)
	switch {
	case v && h:
		return '+'
	case h:
		return '-'
	case v:
		return '|'
	default:
		return ' '
	}
}

func (g grid) label(x, y int) string {
	p, ok := g.t.Get(x, y)
	if !ok || p.Anchor() != (tableau.Cell{X: x, Y: y}) || p.Text() == "" {
		return strings.Repeat(" ", cellWidth)
	}
	s := runewidth.Truncate(p.Text(), cellWidth, "")
	w := runewidth.StringWidth(s)
	left := (cellWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-left-w)
}
