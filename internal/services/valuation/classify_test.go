package valuation

import (
	"testing"

	"RiverSight/internal/domain/models"
)

var testBands = [5]float64{80, 100, 120, 140, 160}

func TestClassifyZones(t *testing.T) {
	cases := []struct {
		price float64
		want  models.Zone
	}{
		{50, models.ZoneExtremelyLow},
		{100, models.ZoneExtremelyLow}, // tie resolves downward
		{101, models.ZoneLow},
		{120, models.ZoneLow},
		{121, models.ZoneFair},
		{150, models.ZoneHigh},
		{160, models.ZoneHigh},
		{160.01, models.ZoneExtremelyHigh},
	}
	for _, c := range cases {
		if got := Classify(c.price, testBands); got != c.want {
			t.Fatalf("price %v: got %s, want %s", c.price, got, c.want)
		}
	}
}

func TestClassifyMonotonicInPrice(t *testing.T) {
	prev := 0
	for price := 0.0; price <= 200; price += 0.25 {
		rank := Classify(price, testBands).Rank()
		if rank < prev {
			t.Fatalf("price %v: severity rank dropped from %d to %d", price, prev, rank)
		}
		prev = rank
	}
}

func TestClassifyLatestUsesLastDay(t *testing.T) {
	days := []models.DayRecord{
		{Price: 50, Bands: testBands},
		{Price: 150, Bands: testBands},
	}
	if got := ClassifyLatest(days); got != models.ZoneHigh {
		t.Fatalf("got %s, want high", got)
	}
}

func TestClassifyLatestEmptyHistory(t *testing.T) {
	if got := ClassifyLatest(nil); got != models.ZoneUnknown {
		t.Fatalf("got %s, want unknown", got)
	}
}
