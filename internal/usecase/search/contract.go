package search

import (
	"context"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// CatalogLoader supplies the full entry set for a collection.
type CatalogLoader interface {
	Load(ctx context.Context, collection domain.Collection) ([]domain.CatalogEntry, error)
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ResultCache stores formatted result sets keyed by query signature.
type ResultCache interface {
	Get(collection domain.Collection, key string) ([]domain.SearchResult, bool)
	Put(collection domain.Collection, key string, results []domain.SearchResult)
	Clear()
	Len(collection domain.Collection) int
}
