// Package chi implements the HTTP API on the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mixboard-labs/mixsearch/internal/domain"
	logpkg "github.com/mixboard-labs/mixsearch/internal/logger"
	healthuc "github.com/mixboard-labs/mixsearch/internal/usecase/health"
	searchuc "github.com/mixboard-labs/mixsearch/internal/usecase/search"
	"github.com/mixboard-labs/mixsearch/internal/version"
)

// Server exposes the search, health and cache-maintenance endpoints.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Route("/search", func(r chi.Router) {
		r.Post("/recipes", s.SearchRecipes)
		r.Post("/ingredients", s.SearchIngredients)
		r.Get("/health", s.Health)
		r.Post("/cache/clear", s.ClearCache)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// --- Request / response shapes ---

type recipeFilter struct {
	Category  *string `json:"category"`
	Alcoholic *bool   `json:"alcoholic"`
}

func (f *recipeFilter) toMap() map[string]any {
	if f == nil {
		return nil
	}
	m := make(map[string]any, 2)
	if f.Category != nil {
		m["category"] = *f.Category
	}
	if f.Alcoholic != nil {
		m["alcoholic"] = *f.Alcoholic
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

type ingredientFilter struct {
	Category *string `json:"category"`
	Family   *string `json:"family"`
}

func (f *ingredientFilter) toMap() map[string]any {
	if f == nil {
		return nil
	}
	m := make(map[string]any, 2)
	if f.Category != nil {
		m["category"] = *f.Category
	}
	if f.Family != nil {
		m["family"] = *f.Family
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

type searchResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []domain.SearchResult `json:"results"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Handlers ---

// SearchRecipes handles POST /search/recipes.
func (s *Server) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query  string        `json:"query"`
		Limit  *int          `json:"limit"`
		Filter *recipeFilter `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	results, err := s.search.SearchRecipes(
		r.Context(), req.Query, effectiveLimit(req.Limit), req.Filter.toMap(),
	)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: req.Query, Count: len(results), Results: results})
}

// SearchIngredients handles POST /search/ingredients.
func (s *Server) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query  string            `json:"query"`
		Limit  *int              `json:"limit"`
		Filter *ingredientFilter `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	results, err := s.search.SearchIngredients(
		r.Context(), req.Query, effectiveLimit(req.Limit), req.Filter.toMap(),
	)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: req.Query, Count: len(results), Results: results})
}

// Health handles GET /search/health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthToResponse(report))
}

// ClearCache handles POST /search/cache/clear.
func (s *Server) ClearCache(w http.ResponseWriter, _ *http.Request) {
	s.search.ClearCache()
	writeJSON(w, http.StatusOK, messageResponse{Message: "search cache cleared"})
}

// --- Helpers ---

// effectiveLimit applies the default when the request omits a limit. An
// explicit value is passed through unchanged so out-of-range values,
// including zero, fail validation.
func effectiveLimit(limit *int) int {
	if limit == nil {
		return domain.DefaultLimit
	}
	return *limit
}

// writeSearchError maps domain sentinels to HTTP responses: validation
// failures are client errors, dependency failures are server errors with a
// distinguishing category.
func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmbeddingUnavailable):
		log.Warn("embedding provider unavailable", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "embedding_unavailable", Message: err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		log.Warn("catalog unavailable", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "catalog_unavailable", Message: err.Error()})
	default:
		s.logger.Error("search failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "internal_error", Message: "internal error"})
	}
}

type healthProviderResponse struct {
	Reachable bool   `json:"reachable"`
	Model     string `json:"model"`
	Error     string `json:"error,omitempty"`
}

type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Provider healthProviderResponse `json:"provider"`
	Catalogs map[string]int         `json:"catalogs"`
	Cache    map[string]int         `json:"cache"`
}

func healthToResponse(report healthuc.Report) healthResponse {
	resp := healthResponse{
		Status:  string(report.Status),
		Version: version.Version,
		Provider: healthProviderResponse{
			Reachable: report.Provider.Reachable,
			Model:     report.Provider.Model,
			Error:     report.Provider.Error,
		},
		Catalogs: make(map[string]int, len(report.Catalogs)),
		Cache:    make(map[string]int, len(report.Cache)),
	}
	for c, n := range report.Catalogs {
		resp.Catalogs[string(c)] = n
	}
	for c, n := range report.Cache {
		resp.Cache[string(c)] = n
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
