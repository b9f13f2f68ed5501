package santa

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// nameCache memoizes case-folded name normalization. A matching run compares
// every avoid entry against every participant, so the same handful of strings
// gets folded thousands of times per run.
type nameCache struct {
	lru *expirable.LRU[string, string]
}

func newNameCache(size int, ttl time.Duration) *nameCache {
	return &nameCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Normalize returns the cached normalization of s, computing and storing it
// on a miss.
func (c *nameCache) Normalize(s string) string {
	if folded, found := c.lru.Get(s); found {
		return folded
	}
	folded := foldName(s)
	c.lru.Add(s, folded)
	return folded
}
