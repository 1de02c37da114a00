package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModerationEvent is queued after every successful lifecycle transition
// and delivered to the configured webhook.
type ModerationEvent struct {
	ReportID   uuid.UUID    `json:"report_id"`
	Action     string       `json:"action"`
	Status     ReportStatus `json:"status"`
	Actor      string       `json:"actor"`
	OccurredAt time.Time    `json:"occurred_at"`
}
