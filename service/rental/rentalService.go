package rentalsvc

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
	itemrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/item"
	rentalrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/rental"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/id"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/metrics"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound    ErrCode = "ITEM_NOT_FOUND"
	ErrNotAvailable    ErrCode = "NOT_AVAILABLE"
	ErrInvalidDates    ErrCode = "INVALID_DATES"
	ErrDateConflict    ErrCode = "DATE_CONFLICT"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type ItemRepo interface {
	ByID(ctx context.Context, id string) (*model.Item, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type RentalRepo interface {
	Insert(ctx context.Context, r *model.Rental) error
	ByID(ctx context.Context, id string) (*model.Rental, error)
	ByItem(ctx context.Context, itemID string) ([]model.Rental, error)
	MarkReturned(ctx context.Context, id string, at time.Time) error
}

type Service interface {
	// Open books the item for [start, end] and marks it unavailable.
	Open(ctx context.Context, itemID string, start, end time.Time) (*model.Rental, error)

	// Close marks an active rental returned and restores the item's
	// availability. Returned is terminal.
	Close(ctx context.Context, rentalID string) (*model.Rental, error)

	// History lists rentals for an item, most recent first.
	History(ctx context.Context, itemID string) ([]model.Rental, error)
}

// ----- Service implementation -----

type service struct {
	// mu serializes open/close: the conflict check and the insert must not
	// interleave across requests, or two overlapping opens could both pass.
	mu sync.Mutex

	items   ItemRepo
	rentals RentalRepo
	m       *metrics.Metrics
	now     func() time.Time
}

func New(items ItemRepo, rentals RentalRepo, m *metrics.Metrics) Service {
	return &service{items: items, rentals: rentals, m: m, now: time.Now}
}

func (s *service) Open(ctx context.Context, itemID string, start, end time.Time) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.items.ByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemrepo.ErrNotFound) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}
	if !validRange(start, end, s.now()) {
		return nil, makeErr(ErrInvalidDates)
	}

	// Check against every rental on record, not just the availability flag:
	// closed rentals free the flag but already-booked future windows must
	// still not collide. The overlap check runs before the flag check so an
	// overlapping request is reported as a date conflict, not as generic
	// unavailability.
	existing, err := s.rentals.ByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if hasConflict(existing, start, end) {
		s.m.DateConflictsTotal.Inc()
		return nil, makeErr(ErrDateConflict)
	}
	if !it.IsAvailable {
		return nil, makeErr(ErrNotAvailable)
	}

	r := &model.Rental{
		ID:        id.New(),
		ItemID:    itemID,
		StartDate: midnight(start),
		EndDate:   midnight(end),
		Status:    model.RentalActive,
		Created:   s.now().UTC(),
	}
	if err := s.rentals.Insert(ctx, r); err != nil {
		return nil, err
	}
	if err := s.items.SetAvailability(ctx, itemID, false); err != nil {
		return nil, err
	}
	s.m.RentalsOpenedTotal.Inc()
	return r, nil
}

func (s *service) Close(ctx context.Context, rentalID string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rentals.ByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, rentalrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if r.Status == model.RentalReturned {
		return nil, makeErr(ErrAlreadyReturned)
	}

	at := s.now().UTC()
	if err := s.rentals.MarkReturned(ctx, rentalID, at); err != nil {
		return nil, err
	}
	r.Status = model.RentalReturned
	r.ReturnDate = &at

	// A rental may outlive its item; a missing item is tolerated.
	if err := s.items.SetAvailability(ctx, r.ItemID, true); err != nil && !errors.Is(err, itemrepo.ErrNotFound) {
		return nil, err
	}
	s.m.RentalsClosedTotal.Inc()
	return r, nil
}

func (s *service) History(ctx context.Context, itemID string) ([]model.Rental, error) {
	if _, err := s.items.ByID(ctx, itemID); err != nil {
		if errors.Is(err, itemrepo.ErrNotFound) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}

	rentals, err := s.rentals.ByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// never nil: the endpoint promises a JSON array even for a fresh item
	out := make([]model.Rental, 0, len(rentals))
	out = append(out, rentals...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created.After(out[j].Created)
	})
	return out, nil
}
