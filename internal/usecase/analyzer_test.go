package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"RiverSight/internal/domain/models"
	"RiverSight/internal/domain/repository"
	"RiverSight/pkg/logger"
)

type stubSource struct {
	points       []models.PricePoint
	fundamentals models.Fundamentals
	historyErr   error
	fundErr      error
}

func (s *stubSource) DailyHistory(_ context.Context, _ string, _ repository.Lookback) ([]models.PricePoint, error) {
	return s.points, s.historyErr
}

func (s *stubSource) Fundamentals(_ context.Context, _ string) (models.Fundamentals, error) {
	return s.fundamentals, s.fundErr
}

func (s *stubSource) Name() string { return "stub" }

type stubPublisher struct {
	published chan models.AnalysisSummary
}

func (p *stubPublisher) PublishSummary(_ context.Context, s models.AnalysisSummary) error {
	p.published <- s
	return nil
}

func (p *stubPublisher) Close() error { return nil }

type noopMetrics struct{}

func (noopMetrics) RecordAnalysis(string, models.ModelKind) {}
func (noopMetrics) RecordError(string)                      {}
func (noopMetrics) RecordLastPrice(string, float64)         {}
func (noopMetrics) RecordZone(string, int)                  {}
func (noopMetrics) RecordFetchLatency(string, float64)      {}

func fp(v float64) *float64 { return &v }

func testLogger() *logger.Logger {
	l, _ := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	return l
}

func flatHistory(n int, price float64) []models.PricePoint {
	points := make([]models.PricePoint, n)
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	for i := range points {
		points[i] = models.PricePoint{Timestamp: base + int64(i)*86400, Price: fp(price)}
	}
	return points
}

func TestAnalyzeEarningsModelFullFlow(t *testing.T) {
	source := &stubSource{
		points: flatHistory(250, 100),
		fundamentals: models.Fundamentals{
			TrailingEPS:    5,
			InstrumentType: "EQUITY",
			DisplayName:    "Test Corp",
			Currency:       "USD",
		},
	}
	pub := &stubPublisher{published: make(chan models.AnalysisSummary, 1)}
	a := NewRiverAnalyzer(source, pub, noopMetrics{}, nil, testLogger())

	result, err := a.Analyze(context.Background(), "TEST", repository.LB2y)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Model.Kind != models.ModelEarningsMultiple {
		t.Fatalf("expected earnings model, got %s", result.Model.Kind)
	}
	if len(result.Days) != 250 {
		t.Fatalf("expected 250 days, got %d", len(result.Days))
	}

	last := result.Days[len(result.Days)-1]
	want := [5]float64{60, 80, 100, 120, 140}
	if last.Bands != want {
		t.Fatalf("unexpected bands %v", last.Bands)
	}
	// Price 100 equals the middle boundary; ties resolve downward.
	if result.Zone != models.ZoneLow {
		t.Fatalf("expected low zone, got %s", result.Zone)
	}

	select {
	case s := <-pub.published:
		if s.Symbol != "TEST" || s.Zone != models.ZoneLow {
			t.Fatalf("unexpected published summary %+v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("summary was not published")
	}
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	source := &stubSource{points: nil}
	a := NewRiverAnalyzer(source, nil, noopMetrics{}, nil, testLogger())

	result, err := a.Analyze(context.Background(), "EMPTY", repository.LB1y)
	if err != nil {
		t.Fatalf("empty history should not fail: %v", err)
	}
	if len(result.Days) != 0 {
		t.Fatalf("expected no days, got %d", len(result.Days))
	}
	if result.Zone != models.ZoneUnknown {
		t.Fatalf("expected unknown zone, got %s", result.Zone)
	}
	if result.Summary.Symbol != "EMPTY" {
		t.Fatalf("summary should still carry the symbol, got %q", result.Summary.Symbol)
	}
}

func TestAnalyzeHistoryError(t *testing.T) {
	source := &stubSource{historyErr: errors.New("upstream down")}
	a := NewRiverAnalyzer(source, nil, noopMetrics{}, nil, testLogger())

	if _, err := a.Analyze(context.Background(), "TEST", repository.LB2y); err == nil {
		t.Fatal("expected error when history fetch fails")
	}
}

func TestAnalyzeFundamentalsFailureFallsBackToTrendCenter(t *testing.T) {
	source := &stubSource{
		points:  flatHistory(250, 100),
		fundErr: errors.New("statistics unavailable"),
	}
	a := NewRiverAnalyzer(source, nil, noopMetrics{}, nil, testLogger())

	result, err := a.Analyze(context.Background(), "TEST", repository.LB2y)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Model.Kind != models.ModelTrendCenter {
		t.Fatalf("expected trend-center fallback, got %s", result.Model.Kind)
	}

	// Long average of a flat 100 series is 100, so bands follow 0.8..1.6.
	last := result.Days[len(result.Days)-1]
	want := [5]float64{80, 100, 120, 140, 160}
	if last.Bands != want {
		t.Fatalf("unexpected bands %v", last.Bands)
	}
}

func TestCommentaryDisabled(t *testing.T) {
	source := &stubSource{points: flatHistory(10, 50)}
	a := NewRiverAnalyzer(source, nil, noopMetrics{}, nil, testLogger())

	if _, err := a.Commentary(context.Background(), "TEST", repository.LB1y); err == nil {
		t.Fatal("expected error when narrative generator is absent")
	}
}

type stubNarrative struct {
	text string
	err  error
}

func (s *stubNarrative) Generate(_ context.Context, _ models.AnalysisSummary) (string, error) {
	return s.text, s.err
}

func TestCommentaryReturnsSummaryAndText(t *testing.T) {
	source := &stubSource{
		points:       flatHistory(250, 100),
		fundamentals: models.Fundamentals{TrailingEPS: 5, InstrumentType: "EQUITY"},
	}
	a := NewRiverAnalyzer(source, nil, noopMetrics{}, &stubNarrative{text: "price sits in the lower band"}, testLogger())

	c, err := a.Commentary(context.Background(), "TEST", repository.LB2y)
	if err != nil {
		t.Fatalf("commentary: %v", err)
	}
	if c.Commentary == "" {
		t.Fatal("expected commentary text")
	}
	if c.Summary.ModelKind != models.ModelEarningsMultiple {
		t.Fatalf("unexpected summary model %s", c.Summary.ModelKind)
	}
}
