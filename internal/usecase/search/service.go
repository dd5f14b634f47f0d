// Package search orchestrates query validation, caching, embedding and ranking.
package search

import (
	"context"
	"fmt"

	"github.com/mixboard-labs/mixsearch/internal/cache"
	"github.com/mixboard-labs/mixsearch/internal/domain"
	"github.com/mixboard-labs/mixsearch/internal/metrics"
	"github.com/mixboard-labs/mixsearch/internal/ranker"
)

// displayFields lists the metadata attributes projected into results,
// per collection.
var displayFields = map[domain.Collection][]string{
	domain.CollectionRecipes:     {"category", "glass", "alcoholic"},
	domain.CollectionIngredients: {"category", "family", "usage_count"},
}

// Service composes the embedding provider, catalog store, ranker and result
// cache into the public search operations.
type Service struct {
	catalog CatalogLoader
	embed   Embedder
	results ResultCache
}

// New creates a search service.
func New(catalog CatalogLoader, embed Embedder, results ResultCache) *Service {
	return &Service{catalog: catalog, embed: embed, results: results}
}

// SearchRecipes returns the top-limit recipes most similar to the query text.
func (s *Service) SearchRecipes(
	ctx context.Context, text string, limit int, filter map[string]any,
) ([]domain.SearchResult, error) {
	return s.search(ctx, domain.CollectionRecipes, text, limit, filter)
}

// SearchIngredients returns the top-limit ingredients most similar to the query text.
func (s *Service) SearchIngredients(
	ctx context.Context, text string, limit int, filter map[string]any,
) ([]domain.SearchResult, error) {
	return s.search(ctx, domain.CollectionIngredients, text, limit, filter)
}

// search runs one request: validate, check the result cache, embed, load the
// catalog, rank, store. Any embedding or catalog failure fails the whole
// request; partial results are never returned.
func (s *Service) search(
	ctx context.Context, collection domain.Collection,
	text string, limit int, filter map[string]any,
) (results []domain.SearchResult, err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.SearchRequestsTotal.WithLabelValues(string(collection), status).Inc()
	}()

	query, err := domain.NewQuery(text, limit, filter)
	if err != nil {
		return nil, err
	}

	key := cache.Key(collection, query.Text(), query.Limit(), query.Filter())

	if cached, ok := s.results.Get(collection, key); ok {
		metrics.ResultCacheTotal.WithLabelValues(string(collection), "hit").Inc()
		return cached, nil
	}
	metrics.ResultCacheTotal.WithLabelValues(string(collection), "miss").Inc()

	embedding, err := s.embed.Embed(ctx, query.Text())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	entries, err := s.catalog.Load(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	results = ranker.Rank(embedding.Embedding, entries, query.Filter(), query.Limit())
	for i := range results {
		results[i].Metadata = projectMetadata(results[i].Metadata, displayFields[collection])
	}

	s.results.Put(collection, key, results)
	return results, nil
}

// ClearCache drops all cached result sets, regardless of age.
func (s *Service) ClearCache() {
	s.results.Clear()
}

// CacheCounts reports the number of live cache entries per collection.
func (s *Service) CacheCounts() map[domain.Collection]int {
	counts := make(map[domain.Collection]int, len(domain.Collections()))
	for _, c := range domain.Collections() {
		counts[c] = s.results.Len(c)
	}
	return counts
}

// projectMetadata keeps only the display attributes present in metadata.
func projectMetadata(metadata map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := metadata[f]; ok {
			out[f] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
