// Package ranker scores catalog entries against a query vector.
package ranker

import (
	"math"
	"sort"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

type scored struct {
	entry *domain.CatalogEntry
	sim   float64
}

// Rank filters entries against the exact-match metadata filter, scores the
// remainder by cosine similarity to queryVec, sorts descending and truncates
// to limit. The sort is stable, so exact ties keep catalog document order.
// Entries with a zero-norm or mismatched-length embedding score 0 rather than
// being excluded.
func Rank(
	queryVec []float32, entries []domain.CatalogEntry,
	filter map[string]any, limit int,
) []domain.SearchResult {
	candidates := make([]scored, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !MatchesFilter(e.Metadata, filter) {
			continue
		}
		candidates = append(candidates, scored{entry: e, sim: Cosine(queryVec, e.Embedding)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]domain.SearchResult, len(candidates))
	for i, c := range candidates {
		results[i] = domain.SearchResult{
			ID:         c.entry.ID,
			Name:       c.entry.Name,
			Similarity: Score(c.sim),
			Metadata:   c.entry.Metadata,
		}
	}
	return results
}

// Cosine computes cosine similarity between two vectors using float64
// accumulators. Returns 0 when either norm is zero or lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score converts a raw cosine similarity to the reported 0-100 scale,
// rounded to one decimal place. Negative similarities clamp to 0.
func Score(sim float64) float64 {
	s := math.Round(sim*1000) / 10
	if s < 0 {
		return 0
	}
	return s
}

// MatchesFilter reports whether metadata satisfies every filter pair with an
// exact, case-sensitive match. A nil or empty filter matches everything.
func MatchesFilter(metadata, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := metadata[k]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

// valueEqual compares two JSON-decoded scalar values. Numbers compare by
// float64 value regardless of the Go type they decoded into.
func valueEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
