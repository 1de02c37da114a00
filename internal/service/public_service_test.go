package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/service"
	"github.com/rqc23shu/safevalley-map/pkg/e"

	mock_service "github.com/rqc23shu/safevalley-map/internal/service/mocks"
)

func validSubmit() domain.SubmitReportRequest {
	return domain.SubmitReportRequest{
		Type:         string(domain.HazardDumping),
		Description:  "Building rubble dumped on the corner",
		Location:     domain.Location{Lat: -26.19, Lng: 28.07},
		DurationDays: 14,
	}
}

func newPublicService(repo *mock_service.MockReportRepository, cache *mock_service.MockReportCache, t *testing.T) *service.PublicService {
	t.Helper()
	return service.NewPublicService(repo, cache, testValidator(t), testLogger(), time.Minute)
}

func TestPublicService_Submit_OK_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	var got *domain.HazardReport
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			got = r
			return nil
		}).
		Times(1)

	svc := newPublicService(repo, cache, t)

	id, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("expected pending got %s", got.Status)
	}
	if got.RadiusM != domain.DefaultRadiusM {
		t.Fatalf("expected default radius %v got %v", float64(domain.DefaultRadiusM), got.RadiusM)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestPublicService_Submit_SanitizesOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	var got *domain.HazardReport
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			got = r
			return nil
		}).
		Times(1)

	svc := newPublicService(repo, cache, t)

	req := validSubmit()
	req.Description = `Dumping <b>danger</b> & broken glass`
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := "Dumping &lt;b&gt;danger&lt;/b&gt; &amp; broken glass"
	if got.Description != want {
		t.Fatalf("description not sanitized: %q", got.Description)
	}
}

func TestPublicService_Submit_AllViolationsReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newPublicService(
		mock_service.NewMockReportRepository(ctrl),
		mock_service.NewMockReportCache(ctrl),
		t,
	)

	req := domain.SubmitReportRequest{
		Type:         "invalid_type",
		Description:  "short",
		Location:     domain.Location{Lat: -26.19, Lng: 28.07},
		DurationDays: 40,
	}

	_, err := svc.Submit(context.Background(), req)

	var vErr *e.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError got %v", err)
	}
	if len(vErr.Violations) != 3 {
		t.Fatalf("expected 3 violations got %v", vErr.Violations)
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("ValidationError must match ErrInvalidInput")
	}
}

func TestPublicService_Submit_BoundedRetrySameID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	var ids []uuid.UUID
	boom := errors.New("connection reset")
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			ids = append(ids, r.ID)
			return boom
		}),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			ids = append(ids, r.ID)
			return boom
		}),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			ids = append(ids, r.ID)
			return nil
		}),
	)

	svc := newPublicService(repo, cache, t)

	id, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 attempts got %d", len(ids))
	}
	if ids[0] != ids[1] || ids[1] != ids[2] || ids[2] != id {
		t.Fatalf("retries must reuse the same report id: %v", ids)
	}
}

func TestPublicService_Submit_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	boom := errors.New("connection reset")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom).Times(3)

	svc := newPublicService(repo, cache, t)

	_, err := svc.Submit(context.Background(), validSubmit())
	if !errors.Is(err, boom) {
		t.Fatalf("expected create error surfaced, got %v", err)
	}
}

func TestPublicService_MapReports_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	createdAt := time.Now().UTC().Add(-24 * time.Hour)
	fresh := domain.HazardReport{
		ID: uuid.New(), Type: domain.HazardCrime,
		Status: domain.StatusApproved, DurationDays: 7, CreatedAt: createdAt,
		RadiusM: 100,
	}
	expired := domain.HazardReport{
		ID: uuid.New(), Type: domain.HazardCrime,
		Status: domain.StatusApproved, DurationDays: 1, CreatedAt: createdAt.Add(-48 * time.Hour),
		RadiusM: 100,
	}
	cache.EXPECT().GetApproved(gomock.Any()).Return([]domain.HazardReport{fresh, expired}, nil).Times(1)

	svc := newPublicService(repo, cache, t)

	got, err := svc.MapReports(context.Background(), domain.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Fatalf("expected only the unexpired report, got %+v", got)
	}
	if got[0].Color == "" {
		t.Fatalf("expected hazard color in public projection")
	}
}

func TestPublicService_MapReports_CacheMissFallsBackToStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	createdAt := time.Now().UTC().Add(-time.Hour)
	approved := domain.HazardReport{
		ID: uuid.New(), Type: domain.HazardPothole,
		Status: domain.StatusApproved, DurationDays: 7, CreatedAt: createdAt,
		RadiusM: 100,
	}

	cache.EXPECT().GetApproved(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().ListApproved(gomock.Any()).Return([]domain.HazardReport{approved}, nil).Times(1)
	cache.EXPECT().SetApproved(gomock.Any(), gomock.Any(), time.Minute).Return(nil).Times(1)

	svc := newPublicService(repo, cache, t)

	got, err := svc.MapReports(context.Background(), domain.ModeCycling)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != approved.ID {
		t.Fatalf("expected the stored report, got %+v", got)
	}
}

func TestPublicService_MapReports_CacheErrorDegradesToStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	cache.EXPECT().GetApproved(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repo.EXPECT().ListApproved(gomock.Any()).Return([]domain.HazardReport{}, nil).Times(1)
	cache.EXPECT().SetApproved(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := newPublicService(repo, cache, t)

	got, err := svc.MapReports(context.Background(), "")
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %d", len(got))
	}
}
