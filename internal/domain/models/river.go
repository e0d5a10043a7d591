package models

// ModelKind identifies how band boundaries are derived.
type ModelKind string

const (
	// ModelEarningsMultiple values the security as trailing EPS times
	// fixed earnings multiples.
	ModelEarningsMultiple ModelKind = "earnings_multiple"
	// ModelTrendCenter values the security as the long-window moving
	// average times fixed multiples.
	ModelTrendCenter ModelKind = "trend_center"
)

// ValuationModel is the tagged variant chosen once per analysis and
// applied uniformly across the whole history. Construct it with
// EarningsMultipleModel or TrendCenterModel; do not build it ad hoc.
type ValuationModel struct {
	Kind        ModelKind  `json:"kind"`
	EPS         float64    `json:"eps,omitempty"`
	Multipliers [5]float64 `json:"multipliers"`
}

// EarningsMultipleModel builds the earnings-multiple variant.
func EarningsMultipleModel(eps float64) ValuationModel {
	return ValuationModel{
		Kind:        ModelEarningsMultiple,
		EPS:         eps,
		Multipliers: [5]float64{12, 16, 20, 24, 28},
	}
}

// TrendCenterModel builds the trend-center variant. The per-day base is
// the long-window average, supplied at band generation time.
func TrendCenterModel() ValuationModel {
	return ValuationModel{
		Kind:        ModelTrendCenter,
		Multipliers: [5]float64{0.8, 1.0, 1.2, 1.4, 1.6},
	}
}

// Base returns the band base value for one day: EPS for the earnings
// variant, the day's long-window average otherwise.
func (m ValuationModel) Base(longAvg float64) float64 {
	if m.Kind == ModelEarningsMultiple {
		return m.EPS
	}
	return longAvg
}

// Zone is the discrete classification of a price against its bands.
type Zone string

const (
	ZoneExtremelyLow  Zone = "extremely_low"
	ZoneLow           Zone = "low"
	ZoneFair          Zone = "fair"
	ZoneHigh          Zone = "high"
	ZoneExtremelyHigh Zone = "extremely_high"
	ZoneUnknown       Zone = "unknown"
)

// Rank orders zones by severity. Unknown ranks below everything.
func (z Zone) Rank() int {
	switch z {
	case ZoneExtremelyLow:
		return 1
	case ZoneLow:
		return 2
	case ZoneFair:
		return 3
	case ZoneHigh:
		return 4
	case ZoneExtremelyHigh:
		return 5
	default:
		return 0
	}
}

// DayRecord is one assembled day of the river: raw price, both moving
// averages and the five ascending band boundaries. Bands are
// non-decreasing whenever the model base for the day is non-negative.
type DayRecord struct {
	Date      string     `json:"date"`
	Timestamp int64      `json:"timestamp"`
	Price     float64    `json:"price"`
	ShortAvg  float64    `json:"shortAvg"`
	LongAvg   float64    `json:"longAvg"`
	Bands     [5]float64 `json:"bands"`
}

// AnalysisSummary is the structured record handed to the narrative
// generator and published to downstream consumers.
type AnalysisSummary struct {
	Symbol      string     `json:"symbol"`
	DisplayName string     `json:"displayName"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	TrailingEPS float64    `json:"trailingEps"`
	ModelKind   ModelKind  `json:"modelKind"`
	Zone        Zone       `json:"zone"`
	Bands       [5]float64 `json:"bands"`
	ShortAvg    float64    `json:"shortAvg"`
	LongAvg     float64    `json:"longAvg"`
}

// AnalysisResult is the complete output of one analysis request. It is
// immutable once returned; a new request replaces it wholesale.
type AnalysisResult struct {
	Symbol       string          `json:"symbol"`
	Fundamentals Fundamentals    `json:"fundamentals"`
	Model        ValuationModel  `json:"model"`
	Days         []DayRecord     `json:"days"`
	Zone         Zone            `json:"zone"`
	Summary      AnalysisSummary `json:"summary"`
}

// Commentary pairs the structured summary with the narrative text
// returned by the language model.
type Commentary struct {
	Summary    AnalysisSummary `json:"summary"`
	Commentary string          `json:"commentary"`
}
