package usecase

import (
	"context"
	"fmt"
	"time"

	"RiverSight/internal/domain/models"
	"RiverSight/internal/domain/repository"
	"RiverSight/internal/domain/service"
	"RiverSight/internal/services/valuation"
	"RiverSight/pkg/logger"
)

// RiverAnalyzer orchestrates one valuation analysis: fetch inputs, smooth,
// pick a model, assemble the river and classify the latest price.
type RiverAnalyzer struct {
	source    repository.HistorySource
	publisher repository.SummaryPublisher
	metrics   repository.Metrics
	narrative service.NarrativeGenerator
	log       *logger.Logger
}

// NewRiverAnalyzer wires the analyzer. Publisher and narrative may be nil;
// the analysis itself never depends on them.
func NewRiverAnalyzer(
	source repository.HistorySource,
	publisher repository.SummaryPublisher,
	metrics repository.Metrics,
	narrative service.NarrativeGenerator,
	log *logger.Logger,
) *RiverAnalyzer {
	return &RiverAnalyzer{
		source:    source,
		publisher: publisher,
		metrics:   metrics,
		narrative: narrative,
		log:       log,
	}
}

// HasNarrative reports whether commentary generation is available.
func (a *RiverAnalyzer) HasNarrative() bool { return a.narrative != nil }

// Analyze runs the full pipeline for one symbol. An empty history is not an
// error: the result carries no days and an unknown zone.
func (a *RiverAnalyzer) Analyze(ctx context.Context, symbol string, lookback repository.Lookback) (*models.AnalysisResult, error) {
	start := time.Now()

	points, err := a.source.DailyHistory(ctx, symbol, lookback)
	if err != nil {
		a.metrics.RecordError("fetch")
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	a.metrics.RecordFetchLatency(a.source.Name(), time.Since(start).Seconds())

	// Fundamentals are best-effort: a failed snapshot degrades the model
	// to trend-center instead of failing the analysis.
	fundamentals, err := a.source.Fundamentals(ctx, symbol)
	if err != nil {
		a.metrics.RecordError("fundamentals")
		a.log.Warn("fundamentals unavailable, using trend-center model",
			logger.String("symbol", symbol),
			logger.Error(err))
		fundamentals = models.Fundamentals{}
	}

	prices := make([]*float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	shortAvg := valuation.ComputeMovingAverage(prices, valuation.ShortWindow)
	longAvg := valuation.ComputeMovingAverage(prices, valuation.LongWindow)

	model := valuation.SelectModel(fundamentals)
	days := valuation.AssembleHistory(points, shortAvg, longAvg, model)
	zone := valuation.ClassifyLatest(days)

	result := &models.AnalysisResult{
		Symbol:       symbol,
		Fundamentals: fundamentals,
		Model:        model,
		Days:         days,
		Zone:         zone,
	}
	result.Summary = buildSummary(symbol, fundamentals, model, days, zone)

	a.metrics.RecordAnalysis(symbol, model.Kind)
	a.metrics.RecordZone(symbol, zone.Rank())
	if len(days) > 0 {
		a.metrics.RecordLastPrice(symbol, days[len(days)-1].Price)
	}

	a.publish(ctx, result.Summary)

	a.log.Info("analysis complete",
		logger.String("symbol", symbol),
		logger.String("lookback", string(lookback)),
		logger.String("model", string(model.Kind)),
		logger.String("zone", string(zone)),
		logger.Int("days", len(days)),
		logger.Duration("duration", time.Since(start)))
	return result, nil
}

// Commentary runs an analysis and asks the narrative generator for prose.
func (a *RiverAnalyzer) Commentary(ctx context.Context, symbol string, lookback repository.Lookback) (*models.Commentary, error) {
	if a.narrative == nil {
		return nil, fmt.Errorf("narrative generation is disabled")
	}

	result, err := a.Analyze(ctx, symbol, lookback)
	if err != nil {
		return nil, err
	}

	text, err := a.narrative.Generate(ctx, result.Summary)
	if err != nil {
		a.metrics.RecordError("narrative")
		return nil, fmt.Errorf("generate commentary: %w", err)
	}

	return &models.Commentary{Summary: result.Summary, Commentary: text}, nil
}

// publish forwards the summary to downstream consumers without blocking the
// response on broker latency.
func (a *RiverAnalyzer) publish(ctx context.Context, summary models.AnalysisSummary) {
	if a.publisher == nil {
		return
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := a.publisher.PublishSummary(pubCtx, summary); err != nil {
			a.metrics.RecordError("publish")
			a.log.Warn("summary publish failed",
				logger.String("symbol", summary.Symbol),
				logger.Error(err))
		}
	}()
}

func buildSummary(symbol string, f models.Fundamentals, m models.ValuationModel, days []models.DayRecord, zone models.Zone) models.AnalysisSummary {
	s := models.AnalysisSummary{
		Symbol:      symbol,
		DisplayName: f.DisplayName,
		Currency:    f.Currency,
		TrailingEPS: f.TrailingEPS,
		ModelKind:   m.Kind,
		Zone:        zone,
	}
	if s.DisplayName == "" {
		s.DisplayName = symbol
	}
	if len(days) > 0 {
		last := days[len(days)-1]
		s.Price = last.Price
		s.Bands = last.Bands
		s.ShortAvg = last.ShortAvg
		s.LongAvg = last.LongAvg
	}
	return s
}
