package app

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/state"
)

// ErrLoadInFlight is returned when a catalog load is already running against
// the same store.
var ErrLoadInFlight = errors.New("catalog load already in progress")

// LoadCatalog runs one fetch through store: Begin, then Resolve or Fail. The
// fetch error is returned unchanged so callers can show its message verbatim.
func LoadCatalog(ctx context.Context, store *state.Store, source catalog.Source, logger *zap.Logger) (catalog.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !store.Begin() {
		return nil, ErrLoadInFlight
	}

	start := time.Now()
	c, err := source.FetchCatalog(ctx)
	if err != nil {
		store.Fail(err)
		logger.Warn("Catalog load failed",
			zap.Error(err),
			zap.Int("consecutive_failures", store.Snapshot().ConsecutiveFailures),
		)
		return nil, err
	}
	store.Resolve(c)
	logger.Debug("Catalog loaded",
		zap.Int("products", len(c)),
		zap.Duration("took", time.Since(start)),
	)
	return c, nil
}

// LoadCatalog fetches the catalog through the session's client and store.
func (s *Session) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	return LoadCatalog(ctx, s.Store, s.Client, s.Logger)
}
