package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestKey_AbsentNeverCollidesWithValues(t *testing.T) {
	none := Key(model.SearchFilters{})

	// strings that could stringify like "no filter"
	require.NotEqual(t, none, Key(model.SearchFilters{Text: strPtr("-")}))
	require.NotEqual(t, none, Key(model.SearchFilters{Text: strPtr("undefined")}))
	require.NotEqual(t, none, Key(model.SearchFilters{Text: strPtr("")}))

	// same value on a different field must produce a different key
	require.NotEqual(t,
		Key(model.SearchFilters{MinPrice: numPtr(5)}),
		Key(model.SearchFilters{MaxPrice: numPtr(5)}))

	// text containing the separator must not be confusable with a price
	// filter thanks to quoting
	require.NotEqual(t,
		Key(model.SearchFilters{Text: strPtr(`a|min=5`)}),
		Key(model.SearchFilters{Text: strPtr("a"), MinPrice: numPtr(5)}))
}

func TestKey_Deterministic(t *testing.T) {
	f := model.SearchFilters{Text: strPtr("drill"), MinPrice: numPtr(10), MaxPrice: numPtr(99.5)}
	require.Equal(t, Key(f), Key(f))
}

func TestMemory_FreshnessWindow(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	items := []model.Item{{ID: "a", Name: "Drill"}}
	c.Put(ctx, "k", items)

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, items, got)

	// just inside the window: still served
	now = now.Add(Freshness - time.Second)
	_, ok = c.Get(ctx, "k")
	require.True(t, ok)

	// at the window boundary: treated as a miss
	now = now.Add(time.Second)
	_, ok = c.Get(ctx, "k")
	require.False(t, ok)

	// the stale entry is overwritten by the next Put, not evicted on read
	fresh := []model.Item{{ID: "b", Name: "Ladder"}}
	c.Put(ctx, "k", fresh)
	got, ok = c.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, fresh, got)
}

func TestMemory_MissOnUnknownKey(t *testing.T) {
	c := NewMemory()
	_, ok := c.Get(context.Background(), "nope")
	require.False(t, ok)
}
