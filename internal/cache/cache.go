// Package cache holds formatted search results for repeated identical queries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// Results caches ranked result sets per collection with a fixed TTL. Expired
// entries are never served: go-cache checks the deadline on read and a
// janitor sweeps them out in the background. The cache is purely a
// performance optimization; disabling it changes latency, not output.
type Results struct {
	stores map[domain.Collection]*gocache.Cache
}

// New creates a result cache with the given TTL.
func New(ttl time.Duration) *Results {
	stores := make(map[domain.Collection]*gocache.Cache, len(domain.Collections()))
	for _, c := range domain.Collections() {
		stores[c] = gocache.New(ttl, ttl)
	}
	return &Results{stores: stores}
}

// Get returns the cached result set for a key, or false on miss or expiry.
func (r *Results) Get(collection domain.Collection, key string) ([]domain.SearchResult, bool) {
	store, ok := r.stores[collection]
	if !ok {
		return nil, false
	}
	v, ok := store.Get(key)
	if !ok {
		return nil, false
	}
	results, ok := v.([]domain.SearchResult)
	return results, ok
}

// Put stores a result set, overwriting any entry at the same key.
func (r *Results) Put(collection domain.Collection, key string, results []domain.SearchResult) {
	if store, ok := r.stores[collection]; ok {
		store.SetDefault(key, results)
	}
}

// Clear removes all entries across every collection, regardless of age.
func (r *Results) Clear() {
	for _, store := range r.stores {
		store.Flush()
	}
}

// Len returns the number of live entries for a collection.
func (r *Results) Len(collection domain.Collection) int {
	store, ok := r.stores[collection]
	if !ok {
		return 0
	}
	return len(store.Items())
}

// Key builds a deterministic cache signature from the request. Filter keys
// are sorted before hashing so logically identical filters share one entry
// regardless of key order.
func Key(collection domain.Collection, text string, limit int, filter map[string]any) string {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d", collection, text, limit)
	for _, k := range keys {
		fmt.Fprintf(h, "\x00%s=%v", k, filter[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}
