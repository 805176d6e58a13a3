package rentalsvc

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

func activeRental(start, end time.Time) model.Rental {
	return model.Rental{
		ID:        "r1",
		ItemID:    "it1",
		StartDate: start,
		EndDate:   end,
		Status:    model.RentalActive,
	}
}

func TestHasConflict_Boundaries(t *testing.T) {
	day := func(n int) time.Time { return date(2025, 6, n) }
	existing := []model.Rental{activeRental(day(10), day(12))}

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"starts inside", 11, 14, true},
		{"ends inside", 8, 11, true},
		{"contains existing", 9, 13, true},
		{"contained by existing", 10, 11, true},
		{"same range", 10, 12, true},
		{"new start touches existing end", 12, 14, true},
		{"new end touches existing start", 8, 10, true},
		{"strictly after", 13, 15, false},
		{"strictly before", 7, 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasConflict(existing, day(tc.start), day(tc.end)); got != tc.want {
				t.Fatalf("hasConflict([%d,%d]) = %v; want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestHasConflict_IgnoresReturned(t *testing.T) {
	r := activeRental(date(2025, 6, 10), date(2025, 6, 12))
	r.Status = model.RentalReturned
	if hasConflict([]model.Rental{r}, date(2025, 6, 10), date(2025, 6, 12)) {
		t.Fatal("returned rental must not block a new window")
	}
}

// The inclusive-boundary scan must agree with the closed form: two ranges
// conflict unless e2 < s1 or s2 > e1.
func TestHasConflict_ClosedForm(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := date(2025, 6, 1)
		day := func(n int) time.Time { return base.AddDate(0, 0, n) }

		s1 := rapid.IntRange(0, 40).Draw(rt, "s1")
		e1 := rapid.IntRange(s1+1, 41).Draw(rt, "e1")
		s2 := rapid.IntRange(0, 40).Draw(rt, "s2")
		e2 := rapid.IntRange(s2+1, 41).Draw(rt, "e2")

		got := hasConflict([]model.Rental{activeRental(day(s1), day(e1))}, day(s2), day(e2))
		want := !(e2 < s1 || s2 > e1)
		if got != want {
			rt.Fatalf("[%d,%d] vs [%d,%d]: got %v, want %v", s1, e1, s2, e2, got, want)
		}
	})
}
