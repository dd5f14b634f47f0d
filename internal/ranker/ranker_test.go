package ranker

import (
	"testing"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

func entry(id string, vec []float32, meta map[string]any) domain.CatalogEntry {
	if meta == nil {
		meta = map[string]any{}
	}
	return domain.CatalogEntry{ID: id, Name: "name-" + id, Embedding: vec, Metadata: meta}
}

func TestRank_IdenticalVectorRanksFirst(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("a", []float32{1, 0}, nil),
		entry("b", []float32{0, 1}, nil),
		entry("c", []float32{0.5, 0.5}, nil),
	}

	results := Rank([]float32{0, 1}, entries, nil, 10)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].ID != "b" {
		t.Errorf("expected entry b first, got %s", results[0].ID)
	}
	if results[0].Similarity != 100.0 {
		t.Errorf("expected similarity 100.0 for identical vector, got %v", results[0].Similarity)
	}
	if results[1].ID != "c" || results[1].Similarity != 70.7 {
		t.Errorf("expected c with 70.7 second, got %s with %v", results[1].ID, results[1].Similarity)
	}
	if results[2].ID != "a" || results[2].Similarity != 0.0 {
		t.Errorf("expected a with 0.0 last, got %s with %v", results[2].ID, results[2].Similarity)
	}
}

func TestRank_SortedDescending(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("a", []float32{0.1, 0.9}, nil),
		entry("b", []float32{0.9, 0.1}, nil),
		entry("c", []float32{0.5, 0.5}, nil),
		entry("d", []float32{1, 0}, nil),
	}

	results := Rank([]float32{1, 0}, entries, nil, 10)

	for i := 0; i+1 < len(results); i++ {
		if results[i].Similarity < results[i+1].Similarity {
			t.Fatalf("results not sorted descending at %d: %v < %v",
				i, results[i].Similarity, results[i+1].Similarity)
		}
	}
}

func TestRank_LimitTruncates(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("a", []float32{1, 0}, nil),
		entry("b", []float32{0, 1}, nil),
		entry("c", []float32{0.5, 0.5}, nil),
	}

	results := Rank([]float32{1, 0}, entries, nil, 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Limit larger than the catalog returns everything.
	results = Rank([]float32{1, 0}, entries, nil, 50)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

func TestRank_FilterBeforeTruncation(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("a", []float32{1, 0}, map[string]any{"category": "Cocktail"}),
		entry("b", []float32{0.99, 0.01}, map[string]any{"category": "Shot"}),
		entry("c", []float32{0.5, 0.5}, map[string]any{"category": "Cocktail"}),
	}

	results := Rank([]float32{1, 0}, entries, map[string]any{"category": "Cocktail"}, 2)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// b ranks above c unfiltered; the filter must exclude it before the cut.
	if results[0].ID != "a" || results[1].ID != "c" {
		t.Errorf("expected [a c], got [%s %s]", results[0].ID, results[1].ID)
	}
}

func TestRank_TieBreakKeepsCatalogOrder(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("first", []float32{1, 0}, nil),
		entry("second", []float32{1, 0}, nil),
		entry("third", []float32{2, 0}, nil), // same direction, same cosine
	}

	results := Rank([]float32{1, 0}, entries, nil, 10)

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, results[i].ID)
		}
	}
}

func TestRank_ZeroNormScoresZero(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("zero", []float32{0, 0}, nil),
		entry("real", []float32{1, 0}, nil),
	}

	results := Rank([]float32{1, 0}, entries, nil, 10)

	if len(results) != 2 {
		t.Fatalf("zero-norm entries must not be excluded, got %d results", len(results))
	}
	if results[1].ID != "zero" || results[1].Similarity != 0.0 {
		t.Errorf("expected zero entry last with 0.0, got %s with %v", results[1].ID, results[1].Similarity)
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	results := Rank([]float32{1, 0}, nil, nil, 10)
	if results == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{0, 1}, []float32{0, 1}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"known angle", []float32{3, 4}, []float32{4, 3}, 0.96},
		{"zero norm", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScore_Rounding(t *testing.T) {
	tests := []struct {
		sim  float64
		want float64
	}{
		{1, 100.0},
		{0.96, 96.0},
		{0.70710678118, 70.7},
		{0.12345, 12.3},
		{0.12355, 12.4},
		{0, 0},
		{-0.5, 0}, // negatives clamp to the reported floor
	}
	for _, tt := range tests {
		if got := Score(tt.sim); got != tt.want {
			t.Errorf("Score(%v) = %v, want %v", tt.sim, got, tt.want)
		}
	}
}

func TestMatchesFilter(t *testing.T) {
	meta := map[string]any{
		"category":  "Cocktail",
		"alcoholic": true,
		"abv":       float64(28),
	}

	tests := []struct {
		name   string
		filter map[string]any
		want   bool
	}{
		{"nil filter", nil, true},
		{"empty filter", map[string]any{}, true},
		{"single match", map[string]any{"category": "Cocktail"}, true},
		{"all match", map[string]any{"category": "Cocktail", "alcoholic": true}, true},
		{"case sensitive", map[string]any{"category": "cocktail"}, false},
		{"value mismatch", map[string]any{"alcoholic": false}, false},
		{"missing attribute", map[string]any{"glass": "Coupe"}, false},
		{"numeric across go types", map[string]any{"abv": 28}, true},
		{"type mismatch", map[string]any{"category": true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesFilter(meta, tt.filter); got != tt.want {
				t.Errorf("MatchesFilter(%v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}
