package repository

// Lookback represents the historical window requested from the provider.
type Lookback string

const (
	LB1y  Lookback = "1y"
	LB2y  Lookback = "2y"
	LB5y  Lookback = "5y"
	LB10y Lookback = "10y"
	LBMax Lookback = "max"
)

// IsValidLookback returns true if lb is a supported lookback window.
func IsValidLookback(lb Lookback) bool {
	switch lb {
	case LB1y, LB2y, LB5y, LB10y, LBMax:
		return true
	default:
		return false
	}
}

// DefaultLookback covers two years of history; the 200-day long window
// needs at least 200 trading days to be fully warmed.
func DefaultLookback() Lookback { return LB2y }

// NormalizeLookback converts a raw string to a valid lookback (or default).
func NormalizeLookback(s string) Lookback {
	if s == "" {
		return DefaultLookback()
	}
	lb := Lookback(s)
	if IsValidLookback(lb) {
		return lb
	}
	return DefaultLookback()
}

// TradingDays returns the approximate number of daily bars the window
// spans, used by warehouse-backed sources to bound their reads.
func (lb Lookback) TradingDays() int {
	switch lb {
	case LB1y:
		return 252
	case LB2y:
		return 504
	case LB5y:
		return 1260
	case LB10y:
		return 2520
	default:
		return 20000
	}
}
