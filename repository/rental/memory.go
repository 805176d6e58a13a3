package rentalrepo

import (
	"context"
	"sync"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

type memory struct {
	mu      sync.RWMutex
	rentals []model.Rental
	index   map[string]int
}

func NewMemory() Repo {
	return &memory{index: make(map[string]int)}
}

func (m *memory) Insert(ctx context.Context, r *model.Rental) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index[r.ID] = len(m.rentals)
	m.rentals = append(m.rentals, *r)
	return nil
}

func (m *memory) ByID(ctx context.Context, id string) (*model.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	r := m.rentals[i]
	return &r, nil
}

func (m *memory) ByItem(ctx context.Context, itemID string) ([]model.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Rental
	for _, r := range m.rentals {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memory) MarkReturned(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[id]
	if !ok {
		return ErrNotFound
	}
	t := at
	m.rentals[i].Status = model.RentalReturned
	m.rentals[i].ReturnDate = &t
	return nil
}
