package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/moderation"
)

// ReportRepository is the narrow store contract the core depends on.
// Transitions are applied as a single delta in one atomic statement;
// ListAll/ListApproved hand out snapshots the pure core filters.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	ApplyDelta(ctx context.Context, id uuid.UUID, delta moderation.Delta) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.HazardReport, error)
	ListApproved(ctx context.Context) ([]domain.HazardReport, error)
}

func (p *Postgres) Reports() ReportRepository { return p.ReportRepo }
