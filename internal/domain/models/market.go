package models

// PricePoint is one daily observation from the market data provider.
// Price is nil for non-trading or unreported days; downstream smoothing
// must tolerate the gap rather than propagate it.
type PricePoint struct {
	Timestamp int64    `json:"timestamp"`
	Price     *float64 `json:"price"`
}

// Fundamentals captures point-in-time security attributes. It is fetched
// once per analysis and treated as immutable for the whole computation.
// A zero value is a legal input: it simply forces the trend-center model.
type Fundamentals struct {
	TrailingEPS         float64 `json:"trailingEps"`
	TrailingPE          float64 `json:"trailingPe"`
	InstrumentType      string  `json:"instrumentType"`
	DisplayName         string  `json:"displayName"`
	Currency            string  `json:"currency"`
	LatestPrice         float64 `json:"latestPrice"`
	LatestChangePercent float64 `json:"latestChangePercent"`
}
