package intern

import (
	"sync"

	"github.com/prateekvishnu/goscript/vm/meta"
)

const numShards = 16

// pairKey identifies one (interface, concrete) dispatch-vector pairing.
type pairKey struct {
	iface    meta.Key
	concrete meta.Key
}

type shard struct {
	mu sync.Mutex
	m  map[pairKey][]meta.FuncKey
}

// Cache is a sharded memoization table of dispatch vectors. Unlike
// hive/namecache's LRU, entries are never evicted: the set of distinct
// (interface, concrete) pairings a program can exercise is bounded by
// its static types, so the cache simply grows to that bound and stays
// there.
type Cache struct {
	shards [numShards]shard
}

// NewCache constructs an empty dispatch-vector cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i].m = make(map[pairKey][]meta.FuncKey)
	}
	return c
}

func (c *Cache) shardFor(k pairKey) *shard {
	h := uint32(k.iface)*2654435761 + uint32(k.concrete)
	return &c.shards[h%numShards]
}

// Get returns the memoized dispatch vector for (iface, concrete), if any.
func (c *Cache) Get(iface, concrete meta.Key) ([]meta.FuncKey, bool) {
	k := pairKey{iface, concrete}
	s := c.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[k]
	return v, ok
}

// GetOrCompute returns the memoized dispatch vector for (iface,
// concrete), computing and storing it via compute on first access.
func (c *Cache) GetOrCompute(iface, concrete meta.Key, compute func() []meta.FuncKey) []meta.FuncKey {
	k := pairKey{iface, concrete}
	s := c.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.m[k]; ok {
		return v
	}
	v := compute()
	s.m[k] = v
	return v
}
