// Package valuation implements the valuation-river pipeline: price
// smoothing, model selection, band generation, zone classification and
// per-day history assembly. Everything here is a pure transformation
// over immutable inputs; no I/O, no shared state.
package valuation

// Short and long smoothing windows in trading days.
const (
	ShortWindow = 60
	LongWindow  = 200
)

// ComputeMovingAverage returns the trailing simple moving average of
// prices over the given window, one output per input index. Nil entries
// mark days without a reported close.
//
// Two edge policies are deliberate, not errors:
//   - while fewer than window points exist, the raw price is passed
//     through (0 when absent) — early values are under-smoothed;
//   - within a full window, absent entries are dropped from the mean,
//     and a window with no present values averages to 0.
func ComputeMovingAverage(prices []*float64, window int) []float64 {
	out := make([]float64, len(prices))
	for i := range prices {
		if i < window-1 {
			// insufficient history: pass the day through unsmoothed
			if prices[i] != nil {
				out[i] = *prices[i]
			}
			continue
		}
		sum, n := 0.0, 0
		for j := i - window + 1; j <= i; j++ {
			if prices[j] == nil {
				continue
			}
			sum += *prices[j]
			n++
		}
		if n > 0 {
			out[i] = sum / float64(n)
		}
		// all-absent window: out[i] stays 0
	}
	return out
}
