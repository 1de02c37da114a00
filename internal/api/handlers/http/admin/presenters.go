package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

// reportView is the moderation dashboard shape. The isApproved/isRejected/
// isDeleted booleans are derived from status for older dashboard clients.
type reportView struct {
	ID           uuid.UUID           `json:"id"`
	Type         domain.HazardType   `json:"type"`
	Description  string              `json:"description"`
	Location     domain.Location     `json:"location"`
	RadiusM      float64             `json:"radius"`
	DurationDays int                 `json:"duration"`
	Status       domain.ReportStatus `json:"status"`
	PhotoURL     string              `json:"photo_url,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	ExpiresAt    time.Time           `json:"expires_at"`
	Expired      bool                `json:"expired"`
	IsApproved   bool                `json:"isApproved"`
	IsRejected   bool                `json:"isRejected"`
	IsDeleted    bool                `json:"isDeleted"`
	ApprovedAt   *time.Time          `json:"approved_at,omitempty"`
	RejectedAt   *time.Time          `json:"rejected_at,omitempty"`
	DeletedAt    *time.Time          `json:"deleted_at,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

type listView struct {
	Reports    []reportView `json:"reports"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toView(r *domain.HazardReport) reportView {
	return reportView{
		ID:           r.ID,
		Type:         r.Type,
		Description:  r.Description,
		Location:     r.Location,
		RadiusM:      r.DisplayRadiusM(),
		DurationDays: r.DurationDays,
		Status:       r.Status,
		PhotoURL:     r.PhotoURL,
		CreatedAt:    r.CreatedAt,
		ExpiresAt:    r.ExpiresAt(),
		Expired:      r.Expired(time.Now().UTC()),
		IsApproved:   r.IsApproved(),
		IsRejected:   r.IsRejected(),
		IsDeleted:    r.IsDeleted(),
		ApprovedAt:   r.ApprovedAt,
		RejectedAt:   r.RejectedAt,
		DeletedAt:    r.DeletedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toListView(resp domain.ListBucketResponse) listView {
	views := make([]reportView, 0, len(resp.Reports))
	for i := range resp.Reports {
		views = append(views, toView(&resp.Reports[i]))
	}
	return listView{Reports: views, NextCursor: resp.NextCursor}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	var vErr *e.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"errors": vErr.Violations,
		})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrUnauthorized):
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	case errors.Is(err, e.ErrPreconditionFailed):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "report must be deleted first"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
