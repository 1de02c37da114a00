package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/moderation"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ModerationService is the admin-facing surface. Every operation takes
// the authenticated principal explicitly.
type ModerationService interface {
	Approve(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error)
	Reject(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error)
	SoftDelete(ctx context.Context, p domain.Principal, id uuid.UUID, confirmed bool) (*domain.HazardReport, error)
	Restore(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error)
	Edit(ctx context.Context, p domain.Principal, id uuid.UUID, req domain.EditReportRequest) (*domain.HazardReport, error)
	PermanentDelete(ctx context.Context, p domain.Principal, id uuid.UUID) error
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error)
	ListBucket(ctx context.Context, p domain.Principal, req domain.ListBucketRequest) (domain.ListBucketResponse, error)
	Counts(ctx context.Context, p domain.Principal) (domain.BucketCounts, error)
}

// PublicMapService is the unauthenticated surface: submit a report,
// read the visibility-filtered map.
type PublicMapService interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (uuid.UUID, error)
	MapReports(ctx context.Context, mode domain.TravelMode) ([]domain.PublicReport, error)
}

// ReportRepository mirrors the narrow store contract from the storage
// layer so services can be tested against mocks.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	ApplyDelta(ctx context.Context, id uuid.UUID, delta moderation.Delta) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.HazardReport, error)
	ListApproved(ctx context.Context) ([]domain.HazardReport, error)
}

type ReportCache interface {
	GetApproved(ctx context.Context) ([]domain.HazardReport, error)
	SetApproved(ctx context.Context, reports []domain.HazardReport, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.ModerationEvent) error
}

type Service struct {
	Moderation ModerationService
	PublicMap  PublicMapService
}

func NewService(moderationSvc ModerationService, publicSvc PublicMapService) *Service {
	return &Service{
		Moderation: moderationSvc,
		PublicMap:  publicSvc,
	}
}
