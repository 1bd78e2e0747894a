// internal/catalog/store.go
package catalog

import (
	"context"
	"sync"
	"time"

	commonerrors "trimly-search/internal/common/errors"
	"trimly-search/internal/common/logger"
	"trimly-search/internal/models"
)

// Source loads the full shop catalog from wherever it lives. The search
// service only ever reads; ownership of the data stays with the platform.
type Source interface {
	Name() string
	LoadCatalog(ctx context.Context) ([]models.ShopCatalogEntry, error)
}

// Store holds the current catalog snapshot. A search always evaluates one
// consistent snapshot: Refresh swaps the whole slice atomically and readers
// never see a partial load.
type Store struct {
	mu       sync.RWMutex
	source   Source
	logger   logger.Logger
	snapshot []models.ShopCatalogEntry
	loadedAt time.Time
}

func NewStore(source Source, log logger.Logger) *Store {
	return &Store{
		source: source,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-store"}),
	}
}

// Refresh loads a fresh snapshot from the source. On failure the previous
// snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	shops, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return commonerrors.NewCatalogLoadFailedError(s.source.Name(), err)
	}

	s.mu.Lock()
	s.snapshot = shops
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info("catalog snapshot refreshed", map[string]interface{}{
		"source":    s.source.Name(),
		"shopCount": len(shops),
	})

	return nil
}

// Snapshot returns the current catalog. Callers must treat it as read-only;
// the engine never mutates it.
func (s *Store) Snapshot() []models.ShopCatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// LoadedAt reports when the current snapshot was taken; zero before the
// first successful Refresh.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
