package catalog

import (
	"fmt"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// entryDTO mirrors one catalog document entry on disk.
type entryDTO struct {
	ID        string         `json:"id"`
	Metadata  map[string]any `json:"metadata"`
	Embedding []float32      `json:"embedding"`
}

// toDomain validates and converts a raw entry. The display name is lifted
// from metadata.name; the metadata map is kept intact for filtering.
func (d *entryDTO) toDomain() (domain.CatalogEntry, error) {
	if d.ID == "" {
		return domain.CatalogEntry{}, fmt.Errorf("entry is missing id")
	}
	name, ok := d.Metadata["name"].(string)
	if !ok || name == "" {
		return domain.CatalogEntry{}, fmt.Errorf("entry %q is missing metadata.name", d.ID)
	}
	if len(d.Embedding) == 0 {
		return domain.CatalogEntry{}, fmt.Errorf("entry %q has an empty embedding", d.ID)
	}
	return domain.CatalogEntry{
		ID:        d.ID,
		Name:      name,
		Embedding: d.Embedding,
		Metadata:  d.Metadata,
	}, nil
}
