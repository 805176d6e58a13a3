package itemrepo

import (
	"context"
	"sync"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

// memory keeps the catalog in process memory. Volatile: everything is lost
// on restart.
type memory struct {
	mu    sync.RWMutex
	items []model.Item
	index map[string]int
}

func NewMemory() Repo {
	return &memory{index: make(map[string]int)}
}

func (m *memory) Insert(ctx context.Context, it *model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[it.ID]; ok {
		return ErrDuplicate
	}
	m.index[it.ID] = len(m.items)
	m.items = append(m.items, *it)
	return nil
}

func (m *memory) ByID(ctx context.Context, id string) (*model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	it := m.items[i]
	return &it, nil
}

func (m *memory) List(ctx context.Context) ([]model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memory) SetAvailability(ctx context.Context, id string, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[id]
	if !ok {
		return ErrNotFound
	}
	m.items[i].IsAvailable = available
	return nil
}
