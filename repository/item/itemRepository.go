package itemrepo

import (
	"context"
	"errors"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

var (
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("duplicate item id")
)

// Repo is the minimal data access surface for catalog items. Storage is an
// external collaborator; business rules live in the services.
type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id string) (*model.Item, error)

	// List returns every item in catalog insertion order.
	List(ctx context.Context) ([]model.Item, error)

	SetAvailability(ctx context.Context, id string, available bool) error
}
