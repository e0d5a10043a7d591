package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"RiverSight/internal/domain/models"
)

// Recorder exposes analysis-level Prometheus collectors.
type Recorder struct {
	analysesTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	zoneRank      *prometheus.GaugeVec
	fetchDuration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on the default registry.
func NewRecorder() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "riversight",
				Name:      "analyses_total",
				Help:      "Completed valuation analyses",
			},
			[]string{"symbol", "model"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "riversight",
				Name:      "errors_total",
				Help:      "Analysis pipeline errors by stage",
			},
			[]string{"stage"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "riversight",
				Name:      "last_price",
				Help:      "Latest observed price per symbol",
			},
			[]string{"symbol"},
		),
		zoneRank: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "riversight",
				Name:      "zone_rank",
				Help:      "Latest valuation zone rank per symbol (1 lowest, 5 highest)",
			},
			[]string{"symbol"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "riversight",
				Name:      "fetch_duration_seconds",
				Help:      "Upstream data fetch latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

func (r *Recorder) RecordAnalysis(symbol string, model models.ModelKind) {
	r.analysesTotal.WithLabelValues(symbol, string(model)).Inc()
}

func (r *Recorder) RecordError(stage string) {
	r.errorsTotal.WithLabelValues(stage).Inc()
}

func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

func (r *Recorder) RecordZone(symbol string, rank int) {
	r.zoneRank.WithLabelValues(symbol).Set(float64(rank))
}

func (r *Recorder) RecordFetchLatency(source string, seconds float64) {
	r.fetchDuration.WithLabelValues(source).Observe(seconds)
}
