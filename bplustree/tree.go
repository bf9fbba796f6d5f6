package bplus

import (
	"fmt"
	"log/slog"
	"sync"
)

// Tree is a concurrent, in-memory B+ tree handle mapping ordered keys of
// type K to opaque 64-bit values. The zero value is not usable; construct
// one with New. A Tree must not be copied after first use.
type Tree[K Ordered] struct {
	order int

	rootMu   sync.Mutex // guards root and headLeaf
	root     *node[K]
	headLeaf *node[K]

	// snapshotMu is held shared by every Insert/Remove/Find/RangeFind and
	// exclusive by Serialize/Deserialize, so the snapshot codec always sees
	// a stable tree (spec §5).
	snapshotMu sync.RWMutex

	log   *slog.Logger
	cache *valueCache
}

// Option configures optional behavior of a Tree at construction time.
type Option[K Ordered] func(*Tree[K])

// WithLogger overrides the default logger (slog.Default()) used for
// structural events (split, merge, root promotion/collapse, snapshot
// begin/end).
func WithLogger[K Ordered](l *slog.Logger) Option[K] {
	return func(t *Tree[K]) { t.log = l }
}

// WithValueCache enables a read-through ristretto cache in front of Find,
// sized for up to maxEntries hot keys. Without this option Find always
// descends the tree.
func WithValueCache[K Ordered](maxEntries int64) Option[K] {
	return func(t *Tree[K]) {
		c, err := newValueCache(maxEntries)
		if err != nil {
			// Cache construction only fails on bad config; fall back to
			// running without a cache rather than failing New.
			t.log.Warn("bplus: value cache disabled", "error", err)
			return
		}
		t.cache = c
	}
}

// New constructs an empty B+ tree of the given order (the maximum number of
// keys per node, which must be at least 2).
func New[K Ordered](order int, opts ...Option[K]) (*Tree[K], error) {
	if order < 2 {
		return nil, fmt.Errorf("bplus: order must be >= 2, got %d", order)
	}
	t := &Tree[K]{
		order: order,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Close releases resources held by the tree (currently just the optional
// value cache). It does not free the tree's nodes; Go's garbage collector
// does that once the Tree itself is unreachable.
func (t *Tree[K]) Close() {
	t.cache.close()
}

// Order returns the tree's configured order.
func (t *Tree[K]) Order() int { return t.order }
