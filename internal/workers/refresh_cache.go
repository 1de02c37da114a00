package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

type ReportSource interface {
	ListApproved(ctx context.Context) ([]domain.HazardReport, error)
}

type ReportCache interface {
	SetApproved(ctx context.Context, reports []domain.HazardReport, ttl time.Duration) error
}

// CacheRefresher keeps the public map's approved snapshot warm. The
// store is the source of truth; the refresher just re-reads it on a
// ticker so the public path rarely misses the cache.
type CacheRefresher struct {
	source   ReportSource
	cache    ReportCache
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
}

func NewCacheRefresher(source ReportSource, cache ReportCache, logger *slog.Logger, interval, ttl time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CacheRefresher{
		source:   source,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("cache refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	approved, err := w.source.ListApproved(ctx)
	if err != nil {
		w.logger.Warn("approved snapshot load failed", slog.Any("error", err))
		return
	}
	if err := w.cache.SetApproved(ctx, approved, w.ttl); err != nil {
		w.logger.Warn("cache refresh write failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("approved snapshot refreshed", slog.Int("reports", len(approved)))
}
