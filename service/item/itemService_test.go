// service/item/item_service_test.go
package itemsvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/cache"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
	itemrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/item"
	itemsvc "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/service/item"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/metrics"
)

type repoMock struct {
	insertFn func(ctx context.Context, it *model.Item) error
	byIDFn   func(ctx context.Context, id string) (*model.Item, error)
	listFn   func(ctx context.Context) ([]model.Item, error)
}

var _ itemsvc.Repo = (*repoMock)(nil)

func (m *repoMock) Insert(ctx context.Context, it *model.Item) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, it)
}

func (m *repoMock) ByID(ctx context.Context, id string) (*model.Item, error) {
	if m.byIDFn == nil {
		return nil, itemrepo.ErrNotFound
	}
	return m.byIDFn(ctx, id)
}

func (m *repoMock) List(ctx context.Context) ([]model.Item, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func newService(t *testing.T) (itemsvc.Service, itemrepo.Repo) {
	t.Helper()
	r := itemrepo.NewMemory()
	s := itemsvc.New(r, cache.NewMemory(), metrics.New(prometheus.NewRegistry()))
	return s, r
}

func mustCreate(t *testing.T, s itemsvc.Service, name, description string, price float64) *model.Item {
	t.Helper()
	it, err := s.Create(context.Background(), name, description, price)
	require.NoError(t, err)
	return it
}

// --- create ---

func TestCreate_Validation(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name           string
		itemName, desc string
		price          float64
		want           itemsvc.ErrCode
	}{
		{"empty name", "", "Cordless", 50, itemsvc.ErrBadInput},
		{"whitespace name", "   ", "Cordless", 50, itemsvc.ErrBadInput},
		{"empty description", "Drill", "", 50, itemsvc.ErrBadInput},
		{"whitespace description", "Drill", " \t ", 50, itemsvc.ErrBadInput},
		{"zero price", "Drill", "Cordless", 0, itemsvc.ErrBadPrice},
		{"negative price", "Drill", "Cordless", -5, itemsvc.ErrBadPrice},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, tc.itemName, tc.desc, tc.price)
			require.Error(t, err)
			require.Equal(t, tc.want, itemsvc.Code(err))
		})
	}
}

func TestCreate_Success(t *testing.T) {
	s, _ := newService(t)

	it := mustCreate(t, s, "  Drill  ", " Cordless ", 50)
	require.NotEmpty(t, it.ID)
	require.Equal(t, "Drill", it.Name)
	require.Equal(t, "Cordless", it.Description)
	require.Equal(t, 50.0, it.Price)
	require.True(t, it.IsAvailable)
	require.False(t, it.Created.IsZero())
}

func TestGet_NotFound(t *testing.T) {
	s, _ := newService(t)
	_, err := s.Get(context.Background(), "nope")
	require.Error(t, err)
	require.Equal(t, itemsvc.ErrNotFound, itemsvc.Code(err))
}

// --- search ---

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestSearch_Filters(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	drill := mustCreate(t, s, "Drill", "Cordless power tool", 50)
	ladder := mustCreate(t, s, "Ladder", "Aluminium, 3m", 80)
	tent := mustCreate(t, s, "Tent", "Camping tent with drill-proof floor", 120)

	t.Run("no filters returns all in insertion order", func(t *testing.T) {
		out, err := s.Search(ctx, model.SearchFilters{})
		require.NoError(t, err)
		require.Len(t, out, 3)
		require.Equal(t, []string{drill.ID, ladder.ID, tent.ID},
			[]string{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("text matches name or description, case-insensitive", func(t *testing.T) {
		out, err := s.Search(ctx, model.SearchFilters{Text: strPtr("DRILL")})
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, drill.ID, out[0].ID)
		require.Equal(t, tent.ID, out[1].ID)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		out, err := s.Search(ctx, model.SearchFilters{MinPrice: numPtr(80), MaxPrice: numPtr(120)})
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, ladder.ID, out[0].ID)
		require.Equal(t, tent.ID, out[1].ID)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		out, err := s.Search(ctx, model.SearchFilters{Text: strPtr("drill"), MaxPrice: numPtr(60)})
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, drill.ID, out[0].ID)
	})

	t.Run("no match yields empty, not nil", func(t *testing.T) {
		out, err := s.Search(ctx, model.SearchFilters{Text: strPtr("excavator")})
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}

func TestSearch_CacheServesStaleResults(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	first := mustCreate(t, s, "Drill", "Cordless", 50)

	res1, err := s.Search(ctx, model.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, res1, 1)

	// catalog changes are not reflected within the freshness window
	mustCreate(t, s, "Ladder", "Aluminium", 80)

	res2, err := s.Search(ctx, model.SearchFilters{})
	require.NoError(t, err)
	require.Equal(t, res1, res2)

	// a different filter tuple is a different key and sees the new item
	res3, err := s.Search(ctx, model.SearchFilters{MinPrice: numPtr(1)})
	require.NoError(t, err)
	require.Len(t, res3, 2)
	require.Equal(t, first.ID, res3[0].ID)
}

func TestSearch_RepoErrorPropagates(t *testing.T) {
	boom := errors.New("storage down")
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Item, error) { return nil, boom },
	}
	s := itemsvc.New(m, cache.NewMemory(), metrics.New(prometheus.NewRegistry()))

	_, err := s.Search(context.Background(), model.SearchFilters{})
	require.ErrorIs(t, err, boom)
	require.Equal(t, itemsvc.ErrCode(""), itemsvc.Code(err))
}
