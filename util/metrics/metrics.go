package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchesTotal      prometheus.Counter
	CacheHitsTotal     prometheus.Counter
	CacheMissesTotal   prometheus.Counter
	RentalsOpenedTotal prometheus.Counter
	RentalsClosedTotal prometheus.Counter
	DateConflictsTotal prometheus.Counter
}

// New registers the counters on reg. Tests pass a fresh registry so repeated
// construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_searches_total",
			Help: "Total number of catalog searches",
		}),

		CacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_search_cache_hits_total",
			Help: "Total number of search cache hits",
		}),

		CacheMissesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_search_cache_misses_total",
			Help: "Total number of search cache misses",
		}),

		RentalsOpenedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_rentals_opened_total",
			Help: "Total number of rentals opened",
		}),

		RentalsClosedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_rentals_closed_total",
			Help: "Total number of rentals returned",
		}),

		DateConflictsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "rental_platform_date_conflicts_total",
			Help: "Total number of rental requests rejected for overlapping dates",
		}),
	}
}
