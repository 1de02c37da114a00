package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/moderation"
	"github.com/rqc23shu/safevalley-map/pkg/e"
	"github.com/rqc23shu/safevalley-map/pkg/validator"
)

// AdminService implements the moderation use-cases. Transitions are
// computed by the pure lifecycle engine and persisted as a single delta;
// the public snapshot cache is invalidated and an event queued after
// every successful one.
type AdminService struct {
	repo        ReportRepository
	cache       ReportCache
	queue       EventQueue
	validator   *validator.Validator
	logger      *slog.Logger
	pageSize    int
	hideExpired bool
}

func NewAdminService(
	repo ReportRepository,
	cache ReportCache,
	queue EventQueue,
	v *validator.Validator,
	logger *slog.Logger,
	pageSize int,
	hideExpired bool,
) *AdminService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &AdminService{
		repo:        repo,
		cache:       cache,
		queue:       queue,
		validator:   v,
		logger:      logger,
		pageSize:    pageSize,
		hideExpired: hideExpired,
	}
}

func (s *AdminService) Approve(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error) {
	return s.transition(ctx, p, id, "approve", func() (moderation.Delta, error) {
		return moderation.Approve(p, time.Now().UTC())
	})
}

func (s *AdminService) Reject(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error) {
	return s.transition(ctx, p, id, "reject", func() (moderation.Delta, error) {
		return moderation.Reject(p, time.Now().UTC())
	})
}

func (s *AdminService) SoftDelete(ctx context.Context, p domain.Principal, id uuid.UUID, confirmed bool) (*domain.HazardReport, error) {
	return s.transition(ctx, p, id, "delete", func() (moderation.Delta, error) {
		return moderation.SoftDelete(p, confirmed, time.Now().UTC())
	})
}

func (s *AdminService) Restore(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error) {
	return s.transition(ctx, p, id, "restore", func() (moderation.Delta, error) {
		return moderation.Restore(p)
	})
}

// Edit re-runs the field-level validation rules and sanitizes the new
// raw description before persisting. The stored description is already
// escaped, so it is never passed through the sanitizer again.
func (s *AdminService) Edit(ctx context.Context, p domain.Principal, id uuid.UUID, req domain.EditReportRequest) (*domain.HazardReport, error) {
	if violations := s.validator.ValidateEdit(req); len(violations) > 0 {
		return nil, e.NewValidationError(violations)
	}
	if req.Description != nil {
		sanitized := validator.Sanitize(*req.Description)
		req.Description = &sanitized
	}
	return s.transition(ctx, p, id, "edit", func() (moderation.Delta, error) {
		return moderation.Edit(p, req, time.Now().UTC())
	})
}

func (s *AdminService) PermanentDelete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := moderation.CheckPermanentDelete(p, report); err != nil {
		return err
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("report permanently deleted",
		slog.String("id", id.String()),
		slog.String("actor", p.Name),
	)
	s.invalidate(ctx)
	s.publish(ctx, domain.ModerationEvent{
		ReportID:   id,
		Action:     "permanent_delete",
		Status:     domain.StatusDeleted,
		Actor:      p.Name,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (s *AdminService) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error) {
	if !p.Authenticated() {
		return nil, e.ErrUnauthorized
	}
	return s.repo.Get(ctx, id)
}

func (s *AdminService) ListBucket(ctx context.Context, p domain.Principal, req domain.ListBucketRequest) (domain.ListBucketResponse, error) {
	if !p.Authenticated() {
		return domain.ListBucketResponse{}, e.ErrUnauthorized
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	if limit > 100 {
		limit = 100
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.ListBucketResponse{}, err
	}

	reports, next, err := moderation.Page(snapshot, req.Bucket, limit, req.Cursor, s.options())
	if err != nil {
		return domain.ListBucketResponse{}, err
	}
	return domain.ListBucketResponse{Reports: reports, NextCursor: next}, nil
}

func (s *AdminService) Counts(ctx context.Context, p domain.Principal) (domain.BucketCounts, error) {
	if !p.Authenticated() {
		return domain.BucketCounts{}, e.ErrUnauthorized
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.BucketCounts{}, err
	}
	return moderation.Counts(snapshot, s.options()), nil
}

func (s *AdminService) options() moderation.Options {
	return moderation.Options{
		Now:                 time.Now().UTC(),
		HideExpiredApproved: s.hideExpired,
	}
}

// transition loads the report, asks the engine for the delta, persists
// it in one write, and returns the merged snapshot.
func (s *AdminService) transition(
	ctx context.Context,
	p domain.Principal,
	id uuid.UUID,
	action string,
	build func() (moderation.Delta, error),
) (*domain.HazardReport, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	delta, err := build()
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyDelta(ctx, id, delta); err != nil {
		return nil, err
	}

	updated := delta.Apply(*report)

	s.logger.Info("report transition",
		slog.String("id", id.String()),
		slog.String("action", action),
		slog.String("status", string(updated.Status)),
		slog.String("actor", p.Name),
	)

	s.invalidate(ctx)
	s.publish(ctx, domain.ModerationEvent{
		ReportID:   id,
		Action:     action,
		Status:     updated.Status,
		Actor:      p.Name,
		OccurredAt: time.Now().UTC(),
	})

	return &updated, nil
}

func (s *AdminService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidate failed", slog.Any("error", err))
	}
}

func (s *AdminService) publish(ctx context.Context, event domain.ModerationEvent) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		s.logger.Warn("enqueue moderation event failed",
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}
}
