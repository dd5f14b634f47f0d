package health

import (
	"context"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// EmbeddingChecker checks embedding provider availability and model presence.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// CatalogLoader reads collections for size reporting.
type CatalogLoader interface {
	Load(ctx context.Context, collection domain.Collection) ([]domain.CatalogEntry, error)
}

// CacheCounter reports result cache occupancy per collection.
type CacheCounter interface {
	Len(collection domain.Collection) int
}
