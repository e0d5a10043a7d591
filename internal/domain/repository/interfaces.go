package repository

import (
	"context"

	"RiverSight/internal/domain/models"
)

// HistorySource supplies the raw inputs of one analysis: an ordered
// daily close series and a point-in-time fundamentals snapshot.
type HistorySource interface {
	DailyHistory(ctx context.Context, symbol string, lookback Lookback) ([]models.PricePoint, error)
	Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)
	Name() string
}

// SummaryPublisher hands completed analysis summaries to out-of-process
// consumers. Publishing is best-effort; a failure never fails the analysis.
type SummaryPublisher interface {
	PublishSummary(ctx context.Context, s models.AnalysisSummary) error
	Close() error
}

// Metrics records operational measurements of the analysis pipeline.
type Metrics interface {
	RecordAnalysis(symbol string, model models.ModelKind)
	RecordError(stage string)
	RecordLastPrice(symbol string, price float64)
	RecordZone(symbol string, rank int)
	RecordFetchLatency(source string, seconds float64)
}
