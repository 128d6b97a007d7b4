package cache

import "github.com/matzehuels/domino/pkg/partition"

// Keyer builds cache keys for each kind of computed result.
type Keyer interface {
	// FillKey identifies the domino tableau of a shape.
	FillKey(p partition.Partition) string

	// CombineKey identifies the combined tableau of two shapes.
	CombineKey(left, right partition.Partition) string

	// LRKey identifies the fillings of first by second, truncated to limit
	// (zero for no limit).
	LRKey(first, second partition.Partition, limit int) string

	// RenderKey identifies a rendered artifact of an encoded tableau.
	RenderKey(tableauHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts holds the render settings that change the output bytes.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Style    string `json:"style"`
	CellSize int    `json:"cell_size"`
	Labels   bool   `json:"labels"`
}

// DefaultKeyer hashes its inputs under a fixed prefix per result kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) FillKey(p partition.Partition) string {
	return "fill:" + p.String()
}

func (DefaultKeyer) CombineKey(left, right partition.Partition) string {
	return "combine:" + left.String() + "|" + right.String()
}

func (DefaultKeyer) LRKey(first, second partition.Partition, limit int) string {
	return hashKey("lr", first, second, limit)
}

func (DefaultKeyer) RenderKey(tableauHash string, opts RenderKeyOpts) string {
	return hashKey("render", tableauHash, opts)
}
