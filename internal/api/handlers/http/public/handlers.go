package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicMap interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (uuid.UUID, error)
	MapReports(ctx context.Context, mode domain.TravelMode) ([]domain.PublicReport, error)
}

type Handler struct {
	logger    *slog.Logger
	PublicMap PublicMap
}

func NewHandler(logger *slog.Logger, publicMap PublicMap) *Handler {
	return &Handler{
		logger:    logger,
		PublicMap: publicMap,
	}
}

// ReportSubmit accepts a community submission. Trailing data after the
// first JSON object is rejected.
func (h *Handler) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportSubmit", slog.String("remote", r.RemoteAddr))

	var req domain.SubmitReportRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.PublicMap.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report submitted", slog.String("id", id.String()), slog.String("type", req.Type))
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"id":     id.String(),
		"status": string(domain.StatusPending),
	})
}

// MapReports serves the public map. mode is optional; unknown modes fall
// back to showing every hazard type.
func (h *Handler) MapReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MapReports", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	mode := domain.TravelMode(r.URL.Query().Get("mode"))

	reports, err := h.PublicMap.MapReports(r.Context(), mode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("map reports served", slog.String("mode", string(mode)), slog.Int("count", len(reports)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}
