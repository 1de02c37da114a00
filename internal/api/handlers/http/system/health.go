package system

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Handler struct {
	logger  *slog.Logger
	service string
}

func NewHandler(logger *slog.Logger, service string) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}
