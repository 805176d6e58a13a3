package itemsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/cache"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
	itemrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/item"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/id"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/metrics"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
	ErrBadPrice ErrCode = "BAD_PRICE"
	ErrNotFound ErrCode = "NOT_FOUND"
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

type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type Service interface {
	Create(ctx context.Context, name, description string, price float64) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)

	// Search filters the catalog, reading through the cache. Filters
	// compose with AND; results keep catalog insertion order.
	Search(ctx context.Context, f model.SearchFilters) ([]model.Item, error)
}

// ----- Service implementation -----

type service struct {
	r Repo
	c cache.Cache
	m *metrics.Metrics
}

func New(r Repo, c cache.Cache, m *metrics.Metrics) Service {
	return &service{r: r, c: c, m: m}
}

func (s *service) Create(ctx context.Context, name, description string, price float64) (*model.Item, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, makeErr(ErrBadInput)
	}
	if price <= 0 {
		return nil, makeErr(ErrBadPrice)
	}

	it := &model.Item{
		ID:          id.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Created:     time.Now().UTC(),
		IsAvailable: true,
	}
	if err := s.r.Insert(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Get(ctx context.Context, itemID string) (*model.Item, error) {
	it, err := s.r.ByID(ctx, itemID)
	if errors.Is(err, itemrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Search(ctx context.Context, f model.SearchFilters) ([]model.Item, error) {
	s.m.SearchesTotal.Inc()

	key := cache.Key(f)
	if items, ok := s.c.Get(ctx, key); ok {
		s.m.CacheHitsTotal.Inc()
		return items, nil
	}
	s.m.CacheMissesTotal.Inc()

	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}

	var needle string
	if f.Text != nil {
		needle = strings.ToLower(*f.Text)
	}
	out := make([]model.Item, 0, len(all))
	for _, it := range all {
		if f.Text != nil &&
			!strings.Contains(strings.ToLower(it.Name), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) {
			continue
		}
		if f.MinPrice != nil && it.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && it.Price > *f.MaxPrice {
			continue
		}
		out = append(out, it)
	}

	s.c.Put(ctx, key, out)
	return out, nil
}
