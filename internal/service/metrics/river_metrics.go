package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	RiverLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "riversight",
			Subsystem: "river",
			Name:      "latency_seconds",
			Help:      "Latency of river endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	RiverErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "riversight",
			Subsystem: "river",
			Name:      "errors_total",
			Help:      "Errors by river endpoint",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(RiverLatency, RiverErrors)
	})
}
