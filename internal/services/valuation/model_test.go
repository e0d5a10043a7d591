package valuation

import (
	"testing"

	"RiverSight/internal/domain/models"
)

func TestSelectModelEquityWithEarnings(t *testing.T) {
	f := models.Fundamentals{TrailingEPS: 5, InstrumentType: "EQUITY"}
	m := SelectModel(f)
	if m.Kind != models.ModelEarningsMultiple {
		t.Fatalf("got %s, want earnings multiple", m.Kind)
	}
	if m.EPS != 5 {
		t.Fatalf("got eps %v, want 5", m.EPS)
	}
	if m.Multipliers != [5]float64{12, 16, 20, 24, 28} {
		t.Fatalf("unexpected multipliers %v", m.Multipliers)
	}
}

func TestSelectModelETF(t *testing.T) {
	f := models.Fundamentals{TrailingEPS: 0, InstrumentType: "ETF"}
	m := SelectModel(f)
	if m.Kind != models.ModelTrendCenter {
		t.Fatalf("got %s, want trend center", m.Kind)
	}
	if m.Multipliers != [5]float64{0.8, 1.0, 1.2, 1.4, 1.6} {
		t.Fatalf("unexpected multipliers %v", m.Multipliers)
	}
}

func TestSelectModelNegativeEarningsEquity(t *testing.T) {
	f := models.Fundamentals{TrailingEPS: -2.5, InstrumentType: "EQUITY"}
	if m := SelectModel(f); m.Kind != models.ModelTrendCenter {
		t.Fatalf("negative EPS must fall back to trend center, got %s", m.Kind)
	}
}

func TestSelectModelMissingFundamentals(t *testing.T) {
	if m := SelectModel(models.Fundamentals{}); m.Kind != models.ModelTrendCenter {
		t.Fatalf("missing fundamentals must force trend center, got %s", m.Kind)
	}
}

func TestSelectModelDeterministic(t *testing.T) {
	f := models.Fundamentals{TrailingEPS: 3.2, InstrumentType: "EQUITY"}
	if SelectModel(f) != SelectModel(f) {
		t.Fatalf("selection must be idempotent for identical fundamentals")
	}
}
