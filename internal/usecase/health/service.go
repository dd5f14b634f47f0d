// Package health aggregates dependency status for the health endpoint.
package health

import (
	"context"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the embedding provider is reachable with the expected model.
	Healthy Status = "healthy"
	// Unhealthy indicates the provider is unreachable or missing the model.
	Unhealthy Status = "unhealthy"
)

// Provider describes the embedding provider check outcome.
type Provider struct {
	Reachable bool
	Model     string
	Error     string
}

// Report aggregates health check results. Catalog sizes and cache occupancy
// are informational and never affect Status; a failed catalog load reports -1.
type Report struct {
	Status   Status
	Provider Provider
	Catalogs map[domain.Collection]int
	Cache    map[domain.Collection]int
}

// Service coordinates health checks.
type Service struct {
	embedding EmbeddingChecker
	catalog   CatalogLoader
	cache     CacheCounter
	model     string
}

// New creates a Service.
func New(embedding EmbeddingChecker, catalog CatalogLoader, cache CacheCounter, model string) *Service {
	return &Service{embedding: embedding, catalog: catalog, cache: cache, model: model}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:   Healthy,
		Provider: Provider{Reachable: true, Model: s.model},
		Catalogs: make(map[domain.Collection]int, len(domain.Collections())),
		Cache:    make(map[domain.Collection]int, len(domain.Collections())),
	}

	if err := s.embedding.HealthCheck(ctx); err != nil {
		report.Status = Unhealthy
		report.Provider.Reachable = false
		report.Provider.Error = err.Error()
	}

	for _, c := range domain.Collections() {
		entries, err := s.catalog.Load(ctx, c)
		if err != nil {
			report.Catalogs[c] = -1
		} else {
			report.Catalogs[c] = len(entries)
		}
		report.Cache[c] = s.cache.Len(c)
	}

	return report
}
