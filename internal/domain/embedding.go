package domain

import "context"

// EmbeddingResult holds a query vector and provider token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes text.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies an external dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
