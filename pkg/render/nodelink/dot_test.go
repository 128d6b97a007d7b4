package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/domino/pkg/lr"
	"github.com/matzehuels/domino/pkg/partition"
)

func TestTreeDOT(t *testing.T) {
	nodes := lr.Tree(partition.Partition{1}, partition.Partition{1})
	dot := TreeDOT(nodes, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("TreeDOT() output missing digraph declaration")
	}
	for _, want := range []string{
		`n0 [label="root\n1"`,
		`n1 [label="1\n1,1"`,
		`n2 [label="1\n2"`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("TreeDOT() output missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "penwidth=2"); got != 2 {
		t.Errorf("marked %d leaves, want 2", got)
	}
}

func TestFmtLabel(t *testing.T) {
	n := lr.TreeNode{Number: 2, Shape: partition.Partition{2, 1}, Row: 0, Column: 1, InputRow: 0, InputCol: 1, Parent: 0}
	if got := fmtLabel(n, false); got != "2\n2,1" {
		t.Errorf("fmtLabel() = %q", got)
	}
	if got := fmtLabel(n, true); !strings.Contains(got, "out: (0,1)") {
		t.Errorf("fmtLabel() detailed = %q, want output position", got)
	}
	root := lr.TreeNode{Parent: -1}
	if got := fmtLabel(root, false); got != "root\n∅" {
		t.Errorf("fmtLabel() root = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() should leave SVG without viewBox untouched")
	}
}
