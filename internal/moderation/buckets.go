package moderation

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

// Options control the admin view of the snapshot. By default the admin
// sees everything regardless of expiry; HideExpiredApproved drops
// approved-but-expired reports from the snapshot before partitioning so
// the four buckets stay a strict partition of what is shown.
type Options struct {
	Now                 time.Time
	HideExpiredApproved bool
}

// BucketOf classifies a report into exactly one moderation bucket.
// Deleted takes precedence: a deleted report never shows up in another
// bucket no matter which decision timestamps it retains.
func BucketOf(r *domain.HazardReport) domain.Bucket {
	switch r.Status {
	case domain.StatusDeleted:
		return domain.BucketDeleted
	case domain.StatusApproved:
		return domain.BucketApproved
	case domain.StatusRejected:
		return domain.BucketRejected
	default:
		return domain.BucketPending
	}
}

// Partition splits a snapshot into the four disjoint admin buckets.
func Partition(reports []domain.HazardReport, opts Options) map[domain.Bucket][]domain.HazardReport {
	buckets := make(map[domain.Bucket][]domain.HazardReport, 4)
	for _, b := range domain.Buckets() {
		buckets[b] = nil
	}
	for _, r := range reports {
		if opts.HideExpiredApproved && r.Status == domain.StatusApproved && r.Expired(opts.Now) {
			continue
		}
		b := BucketOf(&r)
		buckets[b] = append(buckets[b], r)
	}
	return buckets
}

// Counts returns per-bucket totals. The four counts always sum to the
// size of the partitioned snapshot.
func Counts(reports []domain.HazardReport, opts Options) domain.BucketCounts {
	buckets := Partition(reports, opts)
	return domain.BucketCounts{
		Pending:  len(buckets[domain.BucketPending]),
		Approved: len(buckets[domain.BucketApproved]),
		Rejected: len(buckets[domain.BucketRejected]),
		Deleted:  len(buckets[domain.BucketDeleted]),
	}
}

// Page returns at most limit reports from the named bucket, newest first,
// resuming after an opaque cursor. Keyset pagination on (createdAt, id)
// keeps consecutive pages free of skips and duplicates even when new
// reports land between calls; a drained bucket yields an empty cursor.
func Page(reports []domain.HazardReport, bucket domain.Bucket, limit int, cursor string, opts Options) ([]domain.HazardReport, string, error) {
	if limit <= 0 {
		return nil, "", fmt.Errorf("page limit %d: %w", limit, e.ErrInvalidInput)
	}

	items := Partition(reports, opts)[bucket]
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID.String() > items[j].ID.String()
	})

	start := 0
	if cursor != "" {
		after, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		for start < len(items) && !before(items[start], after) {
			start++
		}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	page := items[start:end]

	next := ""
	if end < len(items) && len(page) > 0 {
		last := page[len(page)-1]
		next = encodeCursor(last.CreatedAt, last.ID)
	}
	return page, next, nil
}

type cursorKey struct {
	createdAt time.Time
	id        uuid.UUID
}

// before reports whether r sorts strictly after the cursor position in
// the newest-first order, i.e. belongs to the next page.
func before(r domain.HazardReport, key cursorKey) bool {
	if !r.CreatedAt.Equal(key.createdAt) {
		return r.CreatedAt.Before(key.createdAt)
	}
	return r.ID.String() < key.id.String()
}

func encodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := strconv.FormatInt(createdAt.UnixNano(), 10) + "|" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (cursorKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return cursorKey{}, fmt.Errorf("bad cursor: %w", e.ErrInvalidInput)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return cursorKey{}, fmt.Errorf("bad cursor: %w", e.ErrInvalidInput)
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return cursorKey{}, fmt.Errorf("bad cursor: %w", e.ErrInvalidInput)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return cursorKey{}, fmt.Errorf("bad cursor: %w", e.ErrInvalidInput)
	}
	return cursorKey{createdAt: time.Unix(0, nanos).UTC(), id: id}, nil
}
