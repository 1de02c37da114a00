package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

// ReportCache holds the approved-report snapshot the public map path
// filters against. A cache miss returns (nil, nil); callers fall back to
// the store and repopulate.
type ReportCache struct {
	client *goredis.Client
	key    string
}

func NewReportCache(r *Redis) *ReportCache {
	return &ReportCache{
		client: r.Client,
		key:    "reports:approved",
	}
}

func (c *ReportCache) GetApproved(ctx context.Context) ([]domain.HazardReport, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var reports []domain.HazardReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (c *ReportCache) SetApproved(ctx context.Context, reports []domain.HazardReport, ttl time.Duration) error {
	b, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the snapshot after a moderation transition so the
// public map picks up the change on the next read.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
