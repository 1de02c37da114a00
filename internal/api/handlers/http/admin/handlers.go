package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Moderation interface {
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

type Handler struct {
	logger     *slog.Logger
	Moderation Moderation
}

func NewHandler(logger *slog.Logger, moderation Moderation) *Handler {
	return &Handler{
		logger:     logger,
		Moderation: moderation,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// ReportList serves one moderation bucket page. bucket is required; an
// unknown bucket name is a client error, not an empty page.
func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	bucketStr := r.URL.Query().Get("bucket")
	bucket, ok := domain.ParseBucket(bucketStr)
	if !ok {
		l.Warn("invalid bucket", slog.String("bucket", bucketStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bucket must be one of pending, approved, rejected, deleted"})
		return
	}

	limit := parseInt(r.URL.Query().Get("limit"), 0)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	resp, err := h.Moderation.ListBucket(r.Context(), principal(r), domain.ListBucketRequest{
		Bucket: bucket,
		Limit:  limit,
		Cursor: r.URL.Query().Get("cursor"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("bucket listed", slog.String("bucket", string(bucket)), slog.Int("count", len(resp.Reports)))
	h.writeJSON(w, http.StatusOK, toListView(resp))
}

func (h *Handler) ReportGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := h.Moderation.Get(r.Context(), principal(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toView(report))
}

func (h *Handler) ReportEdit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportEdit", slog.String("remote", r.RemoteAddr))

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.EditReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Moderation.Edit(r.Context(), principal(r), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report edited", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, toView(report))
}

func (h *Handler) ReportApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "approve", h.Moderation.Approve)
}

func (h *Handler) ReportReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reject", h.Moderation.Reject)
}

func (h *Handler) ReportRestore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "restore", h.Moderation.Restore)
}

// ReportDelete is the soft delete. The body must carry {"confirm": true};
// anything else is rejected before the service is reached.
func (h *Handler) ReportDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var body struct {
		Confirm bool `json:"confirm"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			l.Warn("invalid JSON", slog.String("error", err.Error()))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
			return
		}
	}

	report, err := h.Moderation.SoftDelete(r.Context(), principal(r), id, body.Confirm)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report soft deleted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, toView(report))
}

func (h *Handler) ReportPermanentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportPermanentDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	if err := h.Moderation.PermanentDelete(r.Context(), principal(r), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report permanently deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	counts, err := h.Moderation.Counts(r.Context(), principal(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"counts": counts,
		"total":  counts.Total(),
	})
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	call func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.HazardReport, error),
) {
	l := h.log(r)
	l.Debug("transition", slog.String("action", action), slog.String("remote", r.RemoteAddr))

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := call(r.Context(), principal(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report transition",
		slog.String("id", id.String()),
		slog.String("action", action),
		slog.String("status", string(report.Status)),
	)
	h.writeJSON(w, http.StatusOK, toView(report))
}

func (h *Handler) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func principal(r *http.Request) domain.Principal {
	return middleware.PrincipalFromContext(r.Context())
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
