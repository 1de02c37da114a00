package moderation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/moderation"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

func snapshotWithStatuses(t *testing.T, statuses ...domain.ReportStatus) []domain.HazardReport {
	t.Helper()
	base := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	reports := make([]domain.HazardReport, 0, len(statuses))
	for i, status := range statuses {
		reports = append(reports, domain.HazardReport{
			ID:           uuid.New(),
			Type:         domain.HazardDumping,
			Description:  "Illegal dumping behind the community hall",
			RadiusM:      100,
			DurationDays: 14,
			Status:       status,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
	return reports
}

func TestBucketOf_DeletedTakesPrecedence(t *testing.T) {
	t.Parallel()

	approvedAt := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	r := domain.HazardReport{
		ID:         uuid.New(),
		Status:     domain.StatusDeleted,
		ApprovedAt: &approvedAt,
	}

	if got := moderation.BucketOf(&r); got != domain.BucketDeleted {
		t.Fatalf("expected deleted bucket got %s", got)
	}
}

func TestPartition_StrictPartition(t *testing.T) {
	t.Parallel()

	snapshot := snapshotWithStatuses(t,
		domain.StatusPending, domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected, domain.StatusRejected, domain.StatusRejected,
		domain.StatusDeleted,
	)

	opts := moderation.Options{Now: time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)}
	buckets := moderation.Partition(snapshot, opts)

	total := 0
	seen := map[uuid.UUID]bool{}
	for _, b := range domain.Buckets() {
		for _, r := range buckets[b] {
			if seen[r.ID] {
				t.Fatalf("report %s appears in more than one bucket", r.ID)
			}
			seen[r.ID] = true
			total++
		}
	}
	if total != len(snapshot) {
		t.Fatalf("buckets cover %d of %d reports", total, len(snapshot))
	}

	counts := moderation.Counts(snapshot, opts)
	if counts.Pending != 2 || counts.Approved != 1 || counts.Rejected != 3 || counts.Deleted != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if counts.Total() != len(snapshot) {
		t.Fatalf("counts total=%d want %d", counts.Total(), len(snapshot))
	}
}

func TestPartition_HideExpiredApproved(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	now := base.Add(20 * 24 * time.Hour)

	fresh := domain.HazardReport{
		ID: uuid.New(), Status: domain.StatusApproved,
		DurationDays: 30, CreatedAt: base,
	}
	expired := domain.HazardReport{
		ID: uuid.New(), Status: domain.StatusApproved,
		DurationDays: 7, CreatedAt: base,
	}
	expiredPending := domain.HazardReport{
		ID: uuid.New(), Status: domain.StatusPending,
		DurationDays: 7, CreatedAt: base,
	}
	snapshot := []domain.HazardReport{fresh, expired, expiredPending}

	counts := moderation.Counts(snapshot, moderation.Options{Now: now, HideExpiredApproved: true})
	if counts.Approved != 1 {
		t.Fatalf("expected expired approved report hidden, counts=%+v", counts)
	}
	// Only approved reports are subject to the toggle.
	if counts.Pending != 1 {
		t.Fatalf("expected expired pending report still shown, counts=%+v", counts)
	}

	counts = moderation.Counts(snapshot, moderation.Options{Now: now})
	if counts.Approved != 2 {
		t.Fatalf("toggle off: expected both approved reports, counts=%+v", counts)
	}
}

func TestPage_NoSkipsOrDuplicatesAcrossPages(t *testing.T) {
	t.Parallel()

	snapshot := snapshotWithStatuses(t,
		domain.StatusPending, domain.StatusPending, domain.StatusPending,
		domain.StatusPending, domain.StatusPending,
	)
	opts := moderation.Options{Now: time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)}

	seen := map[uuid.UUID]bool{}
	cursor := ""
	pages := 0
	var prev time.Time
	for {
		page, next, err := moderation.Page(snapshot, domain.BucketPending, 2, cursor, opts)
		if err != nil {
			t.Fatalf("Page: %v", err)
		}
		for _, r := range page {
			if seen[r.ID] {
				t.Fatalf("duplicate report %s across pages", r.ID)
			}
			seen[r.ID] = true
			if pages > 0 || !prev.IsZero() {
				if r.CreatedAt.After(prev) {
					t.Fatalf("page order not newest-first")
				}
			}
			prev = r.CreatedAt
		}
		pages++
		if next == "" {
			break
		}
		cursor = next
	}

	if len(seen) != len(snapshot) {
		t.Fatalf("paged %d of %d reports", len(seen), len(snapshot))
	}
	if pages != 3 {
		t.Fatalf("expected 3 pages of limit 2, got %d", pages)
	}
}

func TestPage_DrainedBucketHasEmptyCursor(t *testing.T) {
	t.Parallel()

	snapshot := snapshotWithStatuses(t, domain.StatusPending, domain.StatusPending)
	opts := moderation.Options{Now: time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)}

	page, next, err := moderation.Page(snapshot, domain.BucketPending, 10, "", opts)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected whole bucket, got %d", len(page))
	}
	if next != "" {
		t.Fatalf("expected empty cursor on final page, got %q", next)
	}
}

func TestPage_BadCursorRejected(t *testing.T) {
	t.Parallel()

	snapshot := snapshotWithStatuses(t, domain.StatusPending)
	opts := moderation.Options{Now: time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)}

	_, _, err := moderation.Page(snapshot, domain.BucketPending, 10, "not-a-cursor!!!", opts)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}

func TestPage_NonPositiveLimitRejected(t *testing.T) {
	t.Parallel()

	snapshot := snapshotWithStatuses(t, domain.StatusPending)
	opts := moderation.Options{Now: time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)}

	_, _, err := moderation.Page(snapshot, domain.BucketPending, 0, "", opts)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}
