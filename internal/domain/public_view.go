package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublicReport is the map-facing projection of an approved report. No
// moderation metadata leaks through it.
type PublicReport struct {
	ID           uuid.UUID  `json:"id"`
	Type         HazardType `json:"type"`
	Description  string     `json:"description"`
	DurationDays int        `json:"duration"`
	RadiusM      float64    `json:"radius"`
	Color        string     `json:"color"`
	Location     Location   `json:"location"`
	CreatedAt    time.Time  `json:"created_at"`
	PhotoURL     string     `json:"photo_url,omitempty"`
}

func ToPublicReport(r HazardReport) PublicReport {
	return PublicReport{
		ID:           r.ID,
		Type:         r.Type,
		Description:  r.Description,
		DurationDays: r.DurationDays,
		RadiusM:      r.DisplayRadiusM(),
		Color:        r.Type.Color(),
		Location:     r.Location,
		CreatedAt:    r.CreatedAt,
		PhotoURL:     r.PhotoURL,
	}
}
