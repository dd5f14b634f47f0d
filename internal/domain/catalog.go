package domain

// Collection names the two fixed catalogs served by the engine.
type Collection string

const (
	// CollectionRecipes is the recipe catalog.
	CollectionRecipes Collection = "recipes"
	// CollectionIngredients is the ingredient catalog.
	CollectionIngredients Collection = "ingredients"
)

// Collections lists every known collection in a fixed order.
func Collections() []Collection {
	return []Collection{CollectionRecipes, CollectionIngredients}
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	return c == CollectionRecipes || c == CollectionIngredients
}

// CatalogEntry is one immutable item of a collection. Embeddings are produced
// by an external pipeline and never mutated here.
type CatalogEntry struct {
	ID        string
	Name      string
	Embedding []float32
	Metadata  map[string]any
}
