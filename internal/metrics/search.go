package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and resolution Prometheus metrics.
var (
	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dirsearch",
			Name:      "search_total",
			Help:      "Total number of directory searches",
		},
		[]string{"mode"}, // "single" / "multi" / "empty"
	)

	SearchMatchedOwners = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dirsearch",
			Name:      "search_matched_owners",
			Help:      "Distinct owners whose catalog matched a search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	SearchVisibleProfiles = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dirsearch",
			Name:      "search_visible_profiles",
			Help:      "Profiles visible after merging catalog and profile-field hits",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	ResolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dirsearch",
			Name:      "resolve_total",
			Help:      "Profile URL resolutions by the stage that matched",
		},
		[]string{"stage"}, // strategy name or "not_found"
	)

	SnapshotLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dirsearch",
			Name:      "snapshot_loads_total",
			Help:      "Snapshot reads from the store",
		},
		[]string{"kind", "status"}, // kind: catalog/profiles; status: ok/missing/error
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers search metrics with the default registry.
// Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(
			SearchTotal,
			SearchMatchedOwners,
			SearchVisibleProfiles,
			ResolveTotal,
			SnapshotLoadsTotal,
		)
	})
}
