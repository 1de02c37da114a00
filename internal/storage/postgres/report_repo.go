package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/moderation"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, type, description, lat, lng, radius_m, duration_days,
	   status, photo_url, created_at, approved_at, rejected_at, deleted_at, updated_at`

func (p *ReportRepo) Create(ctx context.Context, report *domain.HazardReport) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO hazard_reports
			(id, type, description, lat, lng, radius_m, duration_days, status, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.StatusPending
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Type,
		report.Description,
		report.Location.Lat,
		report.Location.Lng,
		report.RadiusM,
		report.DurationDays,
		report.Status,
		report.PhotoURL,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	const op = "postgres.Report.Get"

	query := `SELECT ` + reportColumns + ` FROM hazard_reports WHERE id = $1`

	var r domain.HazardReport
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.Type,
		&r.Description,
		&r.Location.Lat,
		&r.Location.Lng,
		&r.RadiusM,
		&r.DurationDays,
		&r.Status,
		&r.PhotoURL,
		&r.CreatedAt,
		&r.ApprovedAt,
		&r.RejectedAt,
		&r.DeletedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

// ApplyDelta persists a lifecycle transition as one UPDATE so readers
// never observe a partially applied transition.
func (p *ReportRepo) ApplyDelta(ctx context.Context, id uuid.UUID, delta moderation.Delta) error {
	const op = "postgres.Report.ApplyDelta"

	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	args = append(args, id)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if delta.Status != "" {
		add("status", delta.Status)
	}
	if delta.ApprovedAt.Valid {
		add("approved_at", delta.ApprovedAt.Value)
	}
	if delta.RejectedAt.Valid {
		add("rejected_at", delta.RejectedAt.Value)
	}
	if delta.DeletedAt.Valid {
		add("deleted_at", delta.DeletedAt.Value)
	}
	if delta.UpdatedAt.Valid {
		add("updated_at", delta.UpdatedAt.Value)
	}
	if delta.Type != nil {
		add("type", *delta.Type)
	}
	if delta.Description != nil {
		add("description", *delta.Description)
	}
	if delta.RadiusM != nil {
		add("radius_m", *delta.RadiusM)
	}
	if delta.DurationDays != nil {
		add("duration_days", *delta.DurationDays)
	}

	if len(sets) == 0 {
		return fmt.Errorf("%s: empty delta: %w", op, e.ErrInvalidInput)
	}

	query := "UPDATE hazard_reports SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	cmd, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// HardDelete removes the row entirely. Only the permanent-delete
// operation calls this; soft deletes go through ApplyDelta.
func (p *ReportRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Report.HardDelete"

	const query = `DELETE FROM hazard_reports WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) ListAll(ctx context.Context) ([]domain.HazardReport, error) {
	const op = "postgres.Report.ListAll"
	query := `SELECT ` + reportColumns + ` FROM hazard_reports ORDER BY created_at DESC`
	return p.list(ctx, op, query)
}

func (p *ReportRepo) ListApproved(ctx context.Context) ([]domain.HazardReport, error) {
	const op = "postgres.Report.ListApproved"
	query := `SELECT ` + reportColumns + ` FROM hazard_reports WHERE status = 'approved'`
	return p.list(ctx, op, query)
}

func (p *ReportRepo) list(ctx context.Context, op, query string) ([]domain.HazardReport, error) {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []domain.HazardReport
	for rows.Next() {
		var r domain.HazardReport
		if err := rows.Scan(
			&r.ID,
			&r.Type,
			&r.Description,
			&r.Location.Lat,
			&r.Location.Lng,
			&r.RadiusM,
			&r.DurationDays,
			&r.Status,
			&r.PhotoURL,
			&r.CreatedAt,
			&r.ApprovedAt,
			&r.RejectedAt,
			&r.DeletedAt,
			&r.UpdatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
