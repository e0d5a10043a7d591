package valuation

import (
	"testing"

	"RiverSight/internal/domain/models"
)

func TestGenerateBandsEarnings(t *testing.T) {
	m := models.EarningsMultipleModel(5)
	bands := GenerateBands(m, m.Base(0))
	want := [5]float64{60, 80, 100, 120, 140}
	if bands != want {
		t.Fatalf("got %v, want %v", bands, want)
	}
}

func TestGenerateBandsTrendCenter(t *testing.T) {
	m := models.TrendCenterModel()
	bands := GenerateBands(m, m.Base(100))
	want := [5]float64{80, 100, 120, 140, 160}
	if bands != want {
		t.Fatalf("got %v, want %v", bands, want)
	}
}

func TestGenerateBandsAscendingForNonNegativeBase(t *testing.T) {
	for _, base := range []float64{0, 0.01, 1, 42.5, 1e6} {
		for _, m := range []models.ValuationModel{models.EarningsMultipleModel(base), models.TrendCenterModel()} {
			bands := GenerateBands(m, base)
			for i := 1; i < len(bands); i++ {
				if bands[i] < bands[i-1] {
					t.Fatalf("base %v model %s: bands not ascending: %v", base, m.Kind, bands)
				}
			}
		}
	}
}

func TestGenerateBandsNegativeBaseNotClamped(t *testing.T) {
	// A collapsed long-window average must still flow through untouched;
	// inverted boundaries are accepted behavior, not an error.
	m := models.TrendCenterModel()
	bands := GenerateBands(m, -10)
	want := [5]float64{-8, -10, -12, -14, -16}
	if bands != want {
		t.Fatalf("got %v, want %v", bands, want)
	}
}
