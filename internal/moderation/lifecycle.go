// Package moderation holds the pure core of the hazard-report system:
// the lifecycle state machine, the public visibility filter, and the
// admin bucket partition. Nothing here performs I/O; functions take a
// snapshot and a clock instant and return values or deltas.
package moderation

import (
	"fmt"
	"time"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

// TimeField is a three-valued timestamp update: untouched, set to a
// value, or cleared to NULL.
type TimeField struct {
	Valid bool
	Value *time.Time
}

func setTime(t time.Time) TimeField {
	return TimeField{Valid: true, Value: &t}
}

func clearTime() TimeField {
	return TimeField{Valid: true}
}

// Delta is the merged field update produced by a single transition. It is
// structured so one atomic store write applies the whole transition; no
// partial timestamp state is ever visible to readers.
type Delta struct {
	Status     domain.ReportStatus // empty means unchanged
	ApprovedAt TimeField
	RejectedAt TimeField
	DeletedAt  TimeField
	UpdatedAt  TimeField

	Type         *domain.HazardType
	Description  *string
	RadiusM      *float64
	DurationDays *int
}

// Apply returns a copy of the report with the delta merged in. The store
// applies the same delta server-side; this keeps in-memory snapshots and
// persisted rows in step without a re-read.
func (d Delta) Apply(r domain.HazardReport) domain.HazardReport {
	if d.Status != "" {
		r.Status = d.Status
	}
	if d.ApprovedAt.Valid {
		r.ApprovedAt = d.ApprovedAt.Value
	}
	if d.RejectedAt.Valid {
		r.RejectedAt = d.RejectedAt.Value
	}
	if d.DeletedAt.Valid {
		r.DeletedAt = d.DeletedAt.Value
	}
	if d.UpdatedAt.Valid {
		r.UpdatedAt = d.UpdatedAt.Value
	}
	if d.Type != nil {
		r.Type = *d.Type
	}
	if d.Description != nil {
		r.Description = *d.Description
	}
	if d.RadiusM != nil {
		r.RadiusM = *d.RadiusM
	}
	if d.DurationDays != nil {
		r.DurationDays = *d.DurationDays
	}
	return r
}

// Approve is valid from any state: re-approval is idempotent, and
// approving a rejected or deleted report reverses that decision.
func Approve(p domain.Principal, now time.Time) (Delta, error) {
	if !p.Authenticated() {
		return Delta{}, e.ErrUnauthorized
	}
	return Delta{
		Status:     domain.StatusApproved,
		ApprovedAt: setTime(now),
		RejectedAt: clearTime(),
		DeletedAt:  clearTime(),
	}, nil
}

func Reject(p domain.Principal, now time.Time) (Delta, error) {
	if !p.Authenticated() {
		return Delta{}, e.ErrUnauthorized
	}
	return Delta{
		Status:     domain.StatusRejected,
		RejectedAt: setTime(now),
		ApprovedAt: clearTime(),
		DeletedAt:  clearTime(),
	}, nil
}

// SoftDelete marks a report deleted but recoverable. The caller must pass
// an explicit confirmation; the engine never assumes it. Prior approve or
// reject timestamps are retained as moderation history.
func SoftDelete(p domain.Principal, confirmed bool, now time.Time) (Delta, error) {
	if !p.Authenticated() {
		return Delta{}, e.ErrUnauthorized
	}
	if !confirmed {
		return Delta{}, fmt.Errorf("soft delete requires confirmation: %w", e.ErrInvalidInput)
	}
	return Delta{
		Status:    domain.StatusDeleted,
		DeletedAt: setTime(now),
	}, nil
}

// Restore returns a report to the moderation queue. It is not an undo:
// whatever the prior decision was, the report becomes pending again and
// all three decision timestamps are cleared.
func Restore(p domain.Principal) (Delta, error) {
	if !p.Authenticated() {
		return Delta{}, e.ErrUnauthorized
	}
	return Delta{
		Status:     domain.StatusPending,
		ApprovedAt: clearTime(),
		RejectedAt: clearTime(),
		DeletedAt:  clearTime(),
	}, nil
}

// Edit changes moderation-editable fields without touching status or the
// decision timestamps. The request must already have passed validation;
// the description, if present, must already be sanitized.
func Edit(p domain.Principal, req domain.EditReportRequest, now time.Time) (Delta, error) {
	if !p.Authenticated() {
		return Delta{}, e.ErrUnauthorized
	}
	if req.Empty() {
		return Delta{}, fmt.Errorf("edit with no fields: %w", e.ErrInvalidInput)
	}
	d := Delta{
		Description:  req.Description,
		RadiusM:      req.RadiusM,
		DurationDays: req.DurationDays,
		UpdatedAt:    setTime(now),
	}
	if req.Type != nil {
		t := domain.HazardType(*req.Type)
		d.Type = &t
	}
	return d, nil
}

// CheckPermanentDelete gates the irreversible hard delete: only reports
// already soft-deleted may be destroyed.
func CheckPermanentDelete(p domain.Principal, r *domain.HazardReport) error {
	if !p.Authenticated() {
		return e.ErrUnauthorized
	}
	if r.Status != domain.StatusDeleted {
		return fmt.Errorf("permanent delete of %s report: %w", r.Status, e.ErrPreconditionFailed)
	}
	return nil
}
