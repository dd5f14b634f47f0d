package domain

import (
	"fmt"
	"unicode/utf8"
)

// Query validation bounds.
const (
	MinQueryLen  = 3
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 10
)

// Query is one validated search request.
type Query struct {
	text   string
	limit  int
	filter map[string]any
}

// NewQuery validates the request parameters and builds a Query. Violations
// wrap ErrInvalidQuery. Callers apply DefaultLimit when the request omits a
// limit; an explicit out-of-range limit is rejected, including zero.
func NewQuery(text string, limit int, filter map[string]any) (Query, error) {
	if utf8.RuneCountInString(text) < MinQueryLen {
		return Query{}, fmt.Errorf("%w: query must be at least %d characters", ErrInvalidQuery, MinQueryLen)
	}
	if limit < MinLimit || limit > MaxLimit {
		return Query{}, fmt.Errorf("%w: limit must be between %d and %d, got %d",
			ErrInvalidQuery, MinLimit, MaxLimit, limit)
	}
	return Query{text: text, limit: limit, filter: filter}, nil
}

// Text returns the raw query text.
func (q *Query) Text() string { return q.text }

// Limit returns the effective result limit.
func (q *Query) Limit() int { return q.limit }

// Filter returns the exact-match metadata filter, nil when absent.
func (q *Query) Filter() map[string]any { return q.filter }
