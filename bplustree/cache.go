package bplus

import (
	"fmt"
	"strconv"

	"github.com/dgraph-io/ristretto/v2"
)

// valueCache is a read-through cache in front of Find, backed by ristretto.
// The teacher's go.mod already required ristretto/v2 but never imported it,
// having hand-rolled an LRU buffer pool (BufferPool) instead; this is the
// home that dependency was pointing at. It is optional: a tree constructed
// without WithValueCache skips it entirely and behaves exactly per spec §4.1.
type valueCache struct {
	c *ristretto.Cache[string, uint64]
}

// newValueCache's configuration mirrors the teacher's own BufferPool sizing choices
// (a small, fixed counter/cost budget suitable for an embedded index) rather
// than ristretto's defaults tuned for large server-side caches.
func newValueCache(maxEntries int64) (*valueCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, uint64]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("bplus: create value cache: %w", err)
	}
	return &valueCache{c: c}, nil
}

func (vc *valueCache) get(key string) (uint64, bool) {
	if vc == nil {
		return 0, false
	}
	return vc.c.Get(key)
}

func (vc *valueCache) set(key string, v uint64) {
	if vc == nil {
		return
	}
	vc.c.Set(key, v, 1)
}

func (vc *valueCache) del(key string) {
	if vc == nil {
		return
	}
	vc.c.Del(key)
}

// clear drops every cached entry, used by Deserialize which replaces the
// whole tree out from under any cached lookups.
func (vc *valueCache) clear() {
	if vc == nil {
		return
	}
	vc.c.Clear()
}

func (vc *valueCache) close() {
	if vc == nil {
		return
	}
	vc.c.Close()
}

// cacheKey renders a key to the string form used as the ristretto cache key.
func cacheKey[K Ordered](k K) string {
	switch v := any(k).(type) {
	case int32:
		return "i:" + strconv.FormatInt(int64(v), 10)
	case string:
		return "s:" + v
	default:
		return fmt.Sprintf("%v", k)
	}
}
