package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of created orders.",
	})

	ordersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "orders",
		Name:      "updated_total",
		Help:      "Total number of updated orders.",
	})

	ordersApproved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "orders",
		Name:      "approved_total",
		Help:      "Total number of approved orders.",
	})

	draftsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "drafts",
		Name:      "submitted_total",
		Help:      "Total number of submitted order drafts.",
	})
)
