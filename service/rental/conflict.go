package rentalsvc

import (
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

// hasConflict reports whether [start, end] overlaps any rental that has not
// been returned. Boundaries are inclusive: a rental ending on day X
// conflicts with one starting on day X. Returned rentals stay in history
// but never block.
func hasConflict(rentals []model.Rental, start, end time.Time) bool {
	start, end = midnight(start), midnight(end)
	for _, r := range rentals {
		if r.Status == model.RentalReturned {
			continue
		}
		rs, re := midnight(r.StartDate), midnight(r.EndDate)
		if end.Before(rs) || start.After(re) {
			continue
		}
		return true
	}
	return false
}
