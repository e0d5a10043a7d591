package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"RiverSight/internal/domain/models"
	domrepo "RiverSight/internal/domain/repository"
	pkgch "RiverSight/pkg/clickhouse"
	applogger "RiverSight/pkg/logger"
)

// CHHistoryStore implements HistorySource backed by a ClickHouse warehouse of
// daily bars and quote profiles. It serves deployments that mirror market
// data internally instead of calling the public provider.
type CHHistoryStore struct {
	db *sql.DB
	l  *applogger.Logger
}

func NewCHHistoryStore(ch *pkgch.Client, l *applogger.Logger) *CHHistoryStore {
	return &CHHistoryStore{db: ch.DB(), l: l}
}

func (s *CHHistoryStore) Name() string { return "clickhouse" }

// DailyHistory returns the latest N daily closes for a symbol, oldest first.
// A NULL close in the warehouse stays absent in the result.
func (s *CHHistoryStore) DailyHistory(ctx context.Context, symbol string, lookback domrepo.Lookback) ([]models.PricePoint, error) {
	start := time.Now()
	n := lookback.TradingDays()

	const q = `
        SELECT toUnixTimestamp(day), close
        FROM daily_bars
        WHERE symbol = ?
        ORDER BY day DESC
        LIMIT ?
    `
	rows, err := s.db.QueryContext(ctx, q, symbol, n)
	if err != nil {
		s.l.Error("clickhouse daily_history query error",
			applogger.String("symbol", symbol),
			applogger.String("lookback", string(lookback)),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("daily history: %w", err)
	}
	defer rows.Close()

	tmp := make([]models.PricePoint, 0, n)
	for rows.Next() {
		var ts int64
		var close sql.NullFloat64
		if err := rows.Scan(&ts, &close); err != nil {
			s.l.Error("clickhouse daily_history scan error",
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
			return nil, fmt.Errorf("scan daily bar: %w", err)
		}
		p := models.PricePoint{Timestamp: ts}
		if close.Valid {
			v := close.Float64
			p.Price = &v
		}
		tmp = append(tmp, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	// Reverse into chronological order.
	out := make([]models.PricePoint, len(tmp))
	for i, p := range tmp {
		out[len(tmp)-1-i] = p
	}

	s.l.Info("clickhouse daily_history ok",
		applogger.String("symbol", symbol),
		applogger.String("lookback", string(lookback)),
		applogger.Int("rows", len(out)),
		applogger.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// Fundamentals returns the most recent quote profile row for a symbol.
func (s *CHHistoryStore) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	const q = `
        SELECT trailing_eps, trailing_pe, instrument_type, display_name, currency,
               latest_price, latest_change_pct
        FROM quote_profiles
        WHERE symbol = ?
        ORDER BY updated_at DESC
        LIMIT 1
    `
	var f models.Fundamentals
	row := s.db.QueryRowContext(ctx, q, symbol)
	err := row.Scan(&f.TrailingEPS, &f.TrailingPE, &f.InstrumentType, &f.DisplayName,
		&f.Currency, &f.LatestPrice, &f.LatestChangePercent)
	if err == sql.ErrNoRows {
		return models.Fundamentals{}, fmt.Errorf("no quote profile for %s", symbol)
	}
	if err != nil {
		s.l.Error("clickhouse fundamentals query error",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return models.Fundamentals{}, fmt.Errorf("fundamentals: %w", err)
	}
	if f.DisplayName == "" {
		f.DisplayName = symbol
	}
	return f, nil
}
