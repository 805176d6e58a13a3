// Package cache memoizes catalog search results for a bounded window.
// Results are never invalidated on catalog writes; serving up to
// Freshness-old data is an accepted trade-off.
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

// Freshness is how long a cached search result may still be served.
const Freshness = 5 * time.Minute

type Cache interface {
	// Get returns the cached results for key, or false when there is no
	// entry or the entry is older than Freshness.
	Get(ctx context.Context, key string) ([]model.Item, bool)

	// Put stores results under key with the current timestamp, replacing
	// any prior entry.
	Put(ctx context.Context, key string, items []model.Item)
}

// Key builds a deterministic cache key from the filter tuple. An absent
// filter renders as a bare dash, which cannot collide with a real value:
// present text is always quoted and prices always start with a digit, a
// sign, or a dot.
func Key(f model.SearchFilters) string {
	var b strings.Builder
	b.WriteString("search:text=")
	writeText(&b, f.Text)
	b.WriteString("|min=")
	writePrice(&b, f.MinPrice)
	b.WriteString("|max=")
	writePrice(&b, f.MaxPrice)
	return b.String()
}

func writeText(b *strings.Builder, s *string) {
	if s == nil {
		b.WriteString("-")
		return
	}
	b.WriteString(strconv.Quote(*s))
}

func writePrice(b *strings.Builder, p *float64) {
	if p == nil {
		b.WriteString("-")
		return
	}
	b.WriteString(strconv.FormatFloat(*p, 'g', -1, 64))
}
