package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"RiverSight/internal/domain/models"
	"RiverSight/internal/domain/repository"
	"RiverSight/internal/service/ratelimit"
	xhttp "RiverSight/pkg/http"
	"RiverSight/pkg/logger"
)

// ErrRateLimited is returned when the local token bucket denies a request.
var ErrRateLimited = errors.New("yahoo: rate limited")

// Client fetches daily candles and fundamentals from the Yahoo Finance
// public API. It implements repository.HistorySource.
type Client struct {
	http     *xhttp.Client
	baseURL  string
	limiter  *ratelimit.Limiter
	capacity float64
	refill   float64
	log      *logger.Logger
}

// Config holds Yahoo client settings.
type Config struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	RateCapacity float64
	RateRefill   float64
}

// NewClient creates a Yahoo Finance client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RateCapacity <= 0 {
		cfg.RateCapacity = 5
	}
	if cfg.RateRefill <= 0 {
		cfg.RateRefill = 1
	}
	return &Client{
		http: xhttp.NewClient(
			xhttp.WithTimeout(cfg.Timeout),
			xhttp.WithUserAgent(cfg.UserAgent),
		),
		baseURL:  cfg.BaseURL,
		limiter:  ratelimit.New(),
		capacity: cfg.RateCapacity,
		refill:   cfg.RateRefill,
		log:      log,
	}
}

func (c *Client) Name() string { return "yahoo" }

// chartResponse mirrors the v8 chart payload. Close keeps nulls so that
// holiday and halted sessions survive as absent values.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				InstrumentType     string  `json:"instrumentType"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			DefaultKeyStatistics struct {
				TrailingEps struct {
					Raw float64 `json:"raw"`
				} `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
			SummaryDetail struct {
				TrailingPE struct {
					Raw float64 `json:"raw"`
				} `json:"trailingPE"`
			} `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

var lookbackRanges = map[repository.Lookback]string{
	repository.LB1y:  "1y",
	repository.LB2y:  "2y",
	repository.LB5y:  "5y",
	repository.LB10y: "10y",
	repository.LBMax: "max",
}

func (c *Client) fetchChart(ctx context.Context, symbol, rng string) (*chartResponse, error) {
	if !c.limiter.Allow("chart", c.capacity, c.refill) {
		return nil, ErrRateLimited
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))
	var resp chartResponse
	if err := c.http.GetJSON(ctx, u, map[string]string{
		"interval": "1d",
		"range":    rng,
	}, &resp); err != nil {
		return nil, fmt.Errorf("yahoo chart: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart: no result for %s", symbol)
	}
	return &resp, nil
}

// DailyHistory returns the daily close series for a symbol, oldest first.
// Sessions without a close are kept as nil entries.
func (c *Client) DailyHistory(ctx context.Context, symbol string, lookback repository.Lookback) ([]models.PricePoint, error) {
	rng, ok := lookbackRanges[lookback]
	if !ok {
		rng = lookbackRanges[repository.DefaultLookback()]
	}

	resp, err := c.fetchChart(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart: missing quote series for %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		var price *float64
		if i < len(closes) {
			price = closes[i]
		}
		points = append(points, models.PricePoint{Timestamp: ts, Price: price})
	}

	c.log.Debug("fetched daily history",
		logger.String("symbol", symbol),
		logger.String("range", rng),
		logger.Int("points", len(points)))
	return points, nil
}

// Fundamentals returns the quote profile for a symbol. The statistics call is
// best-effort: when it fails the EPS and PE stay zero and the caller falls
// back to a trend-centered model.
func (c *Client) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	resp, err := c.fetchChart(ctx, symbol, "5d")
	if err != nil {
		return models.Fundamentals{}, err
	}

	meta := resp.Chart.Result[0].Meta
	f := models.Fundamentals{
		InstrumentType: meta.InstrumentType,
		DisplayName:    meta.LongName,
		Currency:       meta.Currency,
		LatestPrice:    meta.RegularMarketPrice,
	}
	if f.DisplayName == "" {
		f.DisplayName = meta.ShortName
	}
	if f.DisplayName == "" {
		f.DisplayName = symbol
	}

	closes := resp.Chart.Result[0].Indicators.Quote
	if len(closes) > 0 {
		f.LatestChangePercent = changePercent(closes[0].Close, meta.RegularMarketPrice)
	}

	if err := c.fillStatistics(ctx, symbol, &f); err != nil {
		c.log.Warn("quote statistics unavailable",
			logger.String("symbol", symbol),
			logger.Error(err))
	}
	return f, nil
}

func (c *Client) fillStatistics(ctx context.Context, symbol string, f *models.Fundamentals) error {
	if !c.limiter.Allow("summary", c.capacity, c.refill) {
		return ErrRateLimited
	}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, url.PathEscape(symbol))
	var resp quoteSummaryResponse
	if err := c.http.GetJSON(ctx, u, map[string]string{
		"modules": "defaultKeyStatistics,summaryDetail",
	}, &resp); err != nil {
		return fmt.Errorf("yahoo quote summary: %w", err)
	}
	if resp.QuoteSummary.Error != nil {
		return fmt.Errorf("yahoo quote summary: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return fmt.Errorf("yahoo quote summary: no result for %s", symbol)
	}

	r := resp.QuoteSummary.Result[0]
	f.TrailingEPS = r.DefaultKeyStatistics.TrailingEps.Raw
	f.TrailingPE = r.SummaryDetail.TrailingPE.Raw
	return nil
}

// changePercent derives the day change from the last two closes when the
// chart meta does not carry one.
func changePercent(closes []*float64, latest float64) float64 {
	var prev float64
	seen := 0
	for i := len(closes) - 1; i >= 0 && seen < 2; i-- {
		if closes[i] == nil {
			continue
		}
		seen++
		if seen == 2 {
			prev = *closes[i]
		}
	}
	if prev == 0 {
		return 0
	}
	return (latest - prev) / prev * 100
}
