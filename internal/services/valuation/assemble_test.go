package valuation

import (
	"testing"
	"time"

	"RiverSight/internal/domain/models"
)

func TestAssembleHistoryPreservesLengthAndOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]models.PricePoint, 5)
	for i := range points {
		points[i] = models.PricePoint{Timestamp: base.AddDate(0, 0, i).Unix(), Price: fp(float64(100 + i))}
	}
	short := []float64{1, 2, 3, 4, 5}
	long := []float64{10, 20, 30, 40, 50}

	days := AssembleHistory(points, short, long, models.TrendCenterModel())
	if len(days) != len(points) {
		t.Fatalf("got %d days, want %d", len(days), len(points))
	}
	for i, d := range days {
		if d.Timestamp != points[i].Timestamp {
			t.Fatalf("index %d: order not preserved", i)
		}
		if d.ShortAvg != short[i] || d.LongAvg != long[i] {
			t.Fatalf("index %d: averages not joined", i)
		}
	}
	if days[0].Date != "2024-03-01" || days[4].Date != "2024-03-05" {
		t.Fatalf("unexpected dates %s..%s", days[0].Date, days[4].Date)
	}
}

func TestAssembleHistoryAbsentPriceBecomesZero(t *testing.T) {
	points := []models.PricePoint{{Timestamp: 1700000000, Price: nil}}
	days := AssembleHistory(points, []float64{0}, []float64{0}, models.TrendCenterModel())
	if days[0].Price != 0 {
		t.Fatalf("got price %v, want 0", days[0].Price)
	}
}

func TestAssembleHistoryTrendBandsFollowLongAverage(t *testing.T) {
	points := []models.PricePoint{
		{Timestamp: 1700000000, Price: fp(95)},
		{Timestamp: 1700086400, Price: fp(105)},
	}
	days := AssembleHistory(points, []float64{95, 105}, []float64{100, 200}, models.TrendCenterModel())
	if days[0].Bands != [5]float64{80, 100, 120, 140, 160} {
		t.Fatalf("day 0: unexpected bands %v", days[0].Bands)
	}
	if days[1].Bands != [5]float64{160, 200, 240, 280, 320} {
		t.Fatalf("day 1: unexpected bands %v", days[1].Bands)
	}
}

func TestAssembleHistoryEarningsBandsConstant(t *testing.T) {
	points := []models.PricePoint{
		{Timestamp: 1700000000, Price: fp(95)},
		{Timestamp: 1700086400, Price: fp(105)},
	}
	days := AssembleHistory(points, []float64{95, 105}, []float64{100, 200}, models.EarningsMultipleModel(5))
	want := [5]float64{60, 80, 100, 120, 140}
	for i, d := range days {
		if d.Bands != want {
			t.Fatalf("day %d: bands must not vary with the trend, got %v", i, d.Bands)
		}
	}
}

func TestAssembleHistoryEmptyInput(t *testing.T) {
	days := AssembleHistory(nil, nil, nil, models.TrendCenterModel())
	if len(days) != 0 {
		t.Fatalf("got %d days, want 0", len(days))
	}
}
