package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusApproved ReportStatus = "approved"
	StatusRejected ReportStatus = "rejected"
	StatusDeleted  ReportStatus = "deleted"
)

type HazardType string

const (
	HazardCrime        HazardType = "crime"
	HazardLoadShedding HazardType = "load_shedding"
	HazardPothole      HazardType = "pothole"
	HazardDumping      HazardType = "dumping"
	HazardWaterLeak    HazardType = "water_leak"
	HazardSewerageLeak HazardType = "sewerage_leak"
	HazardFlooding     HazardType = "flooding"
)

func HazardTypes() []HazardType {
	return []HazardType{
		HazardCrime,
		HazardLoadShedding,
		HazardPothole,
		HazardDumping,
		HazardWaterLeak,
		HazardSewerageLeak,
		HazardFlooding,
	}
}

func (t HazardType) Valid() bool {
	switch t {
	case HazardCrime, HazardLoadShedding, HazardPothole, HazardDumping,
		HazardWaterLeak, HazardSewerageLeak, HazardFlooding:
		return true
	}
	return false
}

// Color returns the map overlay fill for a hazard type. Values mirror the
// public map renderer; unknown types fall back to the pothole blue.
func (t HazardType) Color() string {
	switch t {
	case HazardCrime:
		return "rgba(239,68,68,0.5)"
	case HazardLoadShedding:
		return "rgba(251,191,36,0.5)"
	case HazardDumping:
		return "rgba(34,197,94,0.5)"
	default:
		return "rgba(59,130,246,0.5)"
	}
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const (
	// Display radius bounds in meters. Reports submitted without a radius
	// get DefaultRadiusM; the public map never renders beyond MaxRadiusM.
	DefaultRadiusM = 100
	MaxRadiusM     = 500

	MinDurationDays = 1
	MaxDurationDays = 30

	MinDescriptionLen = 10
	MaxDescriptionLen = 500
)

// HazardReport is the sole persisted entity. Status is the single source
// of truth for the moderation lifecycle; the legacy isApproved/isRejected/
// isDeleted booleans are derived, never stored.
type HazardReport struct {
	ID           uuid.UUID    `json:"id"`
	Type         HazardType   `json:"type"`
	Description  string       `json:"description"`
	Location     Location     `json:"location"`
	RadiusM      float64      `json:"radius"`
	DurationDays int          `json:"duration"`
	Status       ReportStatus `json:"status"`
	PhotoURL     string       `json:"photo_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	ApprovedAt   *time.Time   `json:"approved_at,omitempty"`
	RejectedAt   *time.Time   `json:"rejected_at,omitempty"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

// ExpiresAt is derived, never stored: createdAt + duration days.
func (r *HazardReport) ExpiresAt() time.Time {
	return r.CreatedAt.Add(time.Duration(r.DurationDays) * 24 * time.Hour)
}

// Expired reports t >= expiry. The boundary instant itself is expired.
func (r *HazardReport) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt())
}

func (r *HazardReport) IsApproved() bool { return r.Status == StatusApproved }
func (r *HazardReport) IsRejected() bool { return r.Status == StatusRejected }
func (r *HazardReport) IsDeleted() bool  { return r.Status == StatusDeleted }

// DisplayRadiusM clamps the legacy radius field the way the map renders
// it: missing or non-positive becomes the default, oversized is capped.
func (r *HazardReport) DisplayRadiusM() float64 {
	radius := r.RadiusM
	if radius <= 0 {
		radius = DefaultRadiusM
	}
	if radius > MaxRadiusM {
		radius = MaxRadiusM
	}
	return radius
}

type Bucket string

const (
	BucketPending  Bucket = "pending"
	BucketApproved Bucket = "approved"
	BucketRejected Bucket = "rejected"
	BucketDeleted  Bucket = "deleted"
)

func Buckets() []Bucket {
	return []Bucket{BucketPending, BucketApproved, BucketRejected, BucketDeleted}
}

func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketPending, BucketApproved, BucketRejected, BucketDeleted:
		return Bucket(s), true
	}
	return "", false
}
