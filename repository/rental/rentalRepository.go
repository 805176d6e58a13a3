package rentalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

var ErrNotFound = errors.New("rental not found")

// Repo is the minimal data access surface for rentals. Rentals are never
// deleted; the only mutation is the one-shot transition to returned.
type Repo interface {
	Insert(ctx context.Context, r *model.Rental) error
	ByID(ctx context.Context, id string) (*model.Rental, error)

	// ByItem returns every rental referencing the item, in no particular
	// order; callers sort as needed.
	ByItem(ctx context.Context, itemID string) ([]model.Rental, error)

	MarkReturned(ctx context.Context, id string, at time.Time) error
}
