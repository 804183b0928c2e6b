package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Cache lookups by cache name and result.",
	}, []string{"cache", "result"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shoe_backoffice",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed by capacity or expiry.",
	}, []string{"cache", "reason"})
)

func hit(name string) {
	cacheRequests.WithLabelValues(name, "hit").Inc()
}

func miss(name string) {
	cacheRequests.WithLabelValues(name, "miss").Inc()
}
