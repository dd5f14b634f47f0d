package domain

import "errors"

var (
	// ErrInvalidQuery signals a request that failed validation.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEmbeddingUnavailable signals an embedding provider failure or timeout.
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
	// ErrCatalogUnavailable signals that a catalog source could not be read or parsed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrUnknownCollection signals a collection name outside the fixed catalog set.
	ErrUnknownCollection = errors.New("unknown collection")
)
