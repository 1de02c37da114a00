package moderation

import (
	"sort"
	"time"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

// Visible computes the subset of reports eligible for the public map:
// approved, not yet expired at now, and of a type allowed by the travel
// mode. Expiry is exclusive of visibility: a report is shown strictly
// before createdAt + duration days and hidden from that instant on.
//
// The result is ordered by id so the same snapshot always yields the
// same output.
func Visible(reports []domain.HazardReport, now time.Time, mode domain.TravelMode) []domain.HazardReport {
	allowed := domain.AllowedTypes(mode)

	visible := make([]domain.HazardReport, 0, len(reports))
	for _, r := range reports {
		if r.Status != domain.StatusApproved {
			continue
		}
		if r.Expired(now) {
			continue
		}
		if !allowed[r.Type] {
			continue
		}
		visible = append(visible, r)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].ID.String() < visible[j].ID.String()
	})
	return visible
}
