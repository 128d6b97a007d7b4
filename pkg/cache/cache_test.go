package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/domino/pkg/partition"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 0)

	value := []byte("value")
	if err := c.Set(ctx, "key", value, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	value[0] = 'X'

	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get = %q, %v, %v, want a hit", data, hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want the bytes passed to Set", data)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("a"), time.Minute)
	_ = c.Set(ctx, "forever", []byte("b"), 0)

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after the expired entry is dropped", c.Len())
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2, 0)

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	_ = c.Set(ctx, "a", []byte("3"), 0) // rewrite, no eviction
	_ = c.Set(ctx, "c", []byte("4"), 0) // evicts b

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("least recently used entry should be evicted")
	}
	if data, hit, _ := c.Get(ctx, "a"); !hit || string(data) != "3" {
		t.Errorf("Get(a) = %q, %v, want 3", data, hit)
	}

	_ = c.Close()
	if c.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", c.Len())
	}
}

func TestMemoryCacheRecency(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2, 0)

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	if _, hit, _ := c.Get(ctx, "a"); !hit {
		t.Fatal("Get(a) should hit")
	}
	_ = c.Set(ctx, "c", []byte("3"), 0) // evicts b, read less recently than a

	if _, hit, _ := c.Get(ctx, "a"); !hit {
		t.Error("recently read entry should survive eviction")
	}
	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("b should be evicted")
	}
}

func TestMemoryCacheDefaultTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 20*time.Millisecond)

	_ = c.Set(ctx, "key", []byte("value"), time.Hour)
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Fatal("fresh entry should hit")
	}
	time.Sleep(60 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry older than the cache ttl should miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.FillKey(partition.Partition{3, 1}); got != "fill:3,1" {
		t.Errorf("FillKey = %q", got)
	}
	if k.CombineKey(partition.Partition{2}, partition.Partition{1, 1}) == k.CombineKey(partition.Partition{1, 1}, partition.Partition{2}) {
		t.Error("CombineKey should depend on argument order")
	}
	if k.LRKey(partition.Partition{1}, partition.Partition{1}, 0) == k.LRKey(partition.Partition{1}, partition.Partition{1}, 5) {
		t.Error("Different limits should produce different keys")
	}
	svg := k.RenderKey("abc", RenderKeyOpts{Format: "svg", CellSize: 40})
	png := k.RenderKey("abc", RenderKeyOpts{Format: "png", CellSize: 40})
	if svg == png {
		t.Error("Different RenderKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(svg, "render:") {
		t.Errorf("RenderKey = %q, want render: prefix", svg)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "v1:")
	if got := scoped.FillKey(partition.Partition{2, 2}); got != "v1:fill:2,2" {
		t.Errorf("FillKey = %q", got)
	}
	if got := scoped.LRKey(partition.Partition{1}, partition.Partition{1}, 0); !strings.HasPrefix(got, "v1:lr:") {
		t.Errorf("LRKey = %q, want v1:lr: prefix", got)
	}
}
