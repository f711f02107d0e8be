// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_resolutions_total",
			Help: "Total number of itinerary resolution requests by outcome and match source",
		},
		[]string{"outcome", "source"},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "itinerary_resolution_duration_seconds",
			Help: "Duration of itinerary resolution in seconds",
		},
		[]string{"source"},
	)

	EnquiryLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_lookup_failures_total",
			Help: "Total number of failed or timed-out enquiry lookups",
		},
		[]string{"reason"},
	)

	CatalogIntegrityWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_integrity_warnings_total",
			Help: "Total number of catalog integrity warnings raised at verification",
		},
	)
)
