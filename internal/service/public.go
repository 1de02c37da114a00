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

const (
	maxCreateAttempts = 3
	createRetryDelay  = 200 * time.Millisecond
)

// PublicService serves the map view off a cached approved snapshot and
// handles submissions through the validator with a bounded retry on the
// store write.
type PublicService struct {
	repo      ReportRepository
	cache     ReportCache
	validator *validator.Validator
	logger    *slog.Logger
	cacheTTL  time.Duration
}

func NewPublicService(
	repo ReportRepository,
	cache ReportCache,
	v *validator.Validator,
	logger *slog.Logger,
	cacheTTL time.Duration,
) *PublicService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &PublicService{
		repo:      repo,
		cache:     cache,
		validator: v,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Submit validates, sanitizes once, and persists a new pending report.
// A failed write is retried up to maxCreateAttempts times with the same
// report id; a failed submission never partially persists.
func (s *PublicService) Submit(ctx context.Context, req domain.SubmitReportRequest) (uuid.UUID, error) {
	if violations := s.validator.ValidateSubmit(req); len(violations) > 0 {
		s.logger.Debug("submission rejected", slog.Int("violations", len(violations)))
		return uuid.Nil, e.NewValidationError(violations)
	}

	radius := req.RadiusM
	if radius <= 0 {
		radius = domain.DefaultRadiusM
	}

	report := &domain.HazardReport{
		ID:           uuid.New(),
		Type:         domain.HazardType(req.Type),
		Description:  validator.Sanitize(req.Description),
		Location:     req.Location,
		RadiusM:      radius,
		DurationDays: req.DurationDays,
		Status:       domain.StatusPending,
		PhotoURL:     req.PhotoURL,
		CreatedAt:    time.Now().UTC(),
	}

	var err error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		err = s.repo.Create(ctx, report)
		if err == nil {
			s.logger.Info("report submitted",
				slog.String("id", report.ID.String()),
				slog.String("type", string(report.Type)),
			)
			return report.ID, nil
		}
		if ctx.Err() != nil {
			break
		}
		s.logger.Warn("report create failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		if attempt < maxCreateAttempts {
			time.Sleep(createRetryDelay)
		}
	}

	return uuid.Nil, err
}

// MapReports computes the public view: approved, unexpired, allowed by
// the travel mode. The approved snapshot comes from the cache when warm
// and falls back to the store on a miss.
func (s *PublicService) MapReports(ctx context.Context, mode domain.TravelMode) ([]domain.PublicReport, error) {
	approved, err := s.cache.GetApproved(ctx)
	if err != nil {
		s.logger.Warn("cache read failed, falling back to store", slog.Any("error", err))
		approved = nil
	}

	if approved == nil {
		approved, err = s.repo.ListApproved(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetApproved(ctx, approved, s.cacheTTL); err != nil {
			s.logger.Warn("cache write failed", slog.Any("error", err))
		}
	}

	visible := moderation.Visible(approved, time.Now().UTC(), mode)

	out := make([]domain.PublicReport, 0, len(visible))
	for _, r := range visible {
		out = append(out, domain.ToPublicReport(r))
	}
	return out, nil
}
