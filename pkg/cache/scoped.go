package cache

import "github.com/matzehuels/domino/pkg/partition"

// ScopedKeyer prefixes every key of an inner [Keyer], so callers sharing one
// cache cannot read each other's entries. The HTTP server scopes its keys by
// build version.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) FillKey(p partition.Partition) string {
	return k.prefix + k.inner.FillKey(p)
}

func (k *ScopedKeyer) CombineKey(left, right partition.Partition) string {
	return k.prefix + k.inner.CombineKey(left, right)
}

func (k *ScopedKeyer) LRKey(first, second partition.Partition, limit int) string {
	return k.prefix + k.inner.LRKey(first, second, limit)
}

func (k *ScopedKeyer) RenderKey(tableauHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(tableauHash, opts)
}
