package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "checkouts_processed_total",
			Help:      "Total number of storefront checkouts stored as orders",
		},
	)

	checkoutsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkouts by reason",
		},
		[]string{"reason"},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkouts written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shoe_backoffice",
			Subsystem: "kafka_intake",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkouts currently being processed",
		},
	)
)

var uploadsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "http",
		Name:      "proof_uploads_total",
		Help:      "Total number of payment proof uploads by result",
	},
	[]string{"result"},
)

func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,
		checkoutsInProgress,

		uploadsTotal,
	)
}
