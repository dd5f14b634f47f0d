// Package catalog loads per-collection catalog documents from disk.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mixboard-labs/mixsearch/internal/domain"
)

// Repo reads catalog documents from <dir>/<collection>.json and hands out
// immutable entry sets. A loaded snapshot is reused for at most snapshotTTL;
// a zero TTL re-reads the source on every call.
type Repo struct {
	dir         string
	snapshotTTL time.Duration
	logger      *zap.Logger

	mu        sync.Mutex
	snapshots map[domain.Collection]snapshot
}

type snapshot struct {
	entries  []domain.CatalogEntry
	loadedAt time.Time
}

// New creates a catalog repository.
func New(dir string, snapshotTTL time.Duration, logger *zap.Logger) *Repo {
	return &Repo{
		dir:         dir,
		snapshotTTL: snapshotTTL,
		logger:      logger,
		snapshots:   make(map[domain.Collection]snapshot),
	}
}

// Load returns the full entry set for a collection. Read or parse failures
// wrap domain.ErrCatalogUnavailable; a single malformed entry fails the whole
// load, there is no partial-catalog degradation.
func (r *Repo) Load(ctx context.Context, collection domain.Collection) ([]domain.CatalogEntry, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCollection, collection)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if snap, ok := r.snapshots[collection]; ok && r.snapshotTTL > 0 &&
		time.Since(snap.loadedAt) < r.snapshotTTL {
		return snap.entries, nil
	}

	entries, err := r.read(collection)
	if err != nil {
		return nil, err
	}

	if r.snapshotTTL > 0 {
		r.snapshots[collection] = snapshot{entries: entries, loadedAt: time.Now()}
	}
	r.logger.Debug("catalog loaded",
		zap.String("collection", string(collection)),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

func (r *Repo) read(collection domain.Collection) ([]domain.CatalogEntry, error) {
	path := filepath.Join(r.dir, string(collection)+".json")

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCatalogUnavailable, path, err)
	}

	var dtos []entryDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrCatalogUnavailable, path, err)
	}

	entries := make([]domain.CatalogEntry, 0, len(dtos))
	var dim int
	for i := range dtos {
		entry, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %s entry %d: %w", domain.ErrCatalogUnavailable, collection, i, err)
		}
		if dim == 0 {
			dim = len(entry.Embedding)
		} else if len(entry.Embedding) != dim {
			return nil, fmt.Errorf("%w: %s entry %q: embedding dimension %d, expected %d",
				domain.ErrCatalogUnavailable, collection, entry.ID, len(entry.Embedding), dim)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
