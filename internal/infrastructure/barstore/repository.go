package barstore

import (
	"context"
	"errors"
	"fmt"

	domain "main/internal/domain/entity/marketdata"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository archives fetched daily bars in Postgres. Re-fetched windows
// overlap, so writes upsert on (symbol, bar_time) instead of copying.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Close()
}

const upsertBarQuery = `
	INSERT INTO daily_bars (symbol, bar_time, open, high, low, close, volume)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
	ON CONFLICT (symbol, bar_time) DO UPDATE
	SET open=EXCLUDED.open, high=EXCLUDED.high, low=EXCLUDED.low,
	    close=EXCLUDED.close, volume=EXCLUDED.volume`

func (r *Repository) SaveBars(ctx context.Context, symbol string, bars []domain.Bar) error {
	if symbol == "" {
		return errors.New("symbol is required")
	}
	if len(bars) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, bar := range bars {
		batch.Queue(upsertBarQuery,
			symbol,
			bar.Timestamp,
			bar.Open,
			bar.High,
			bar.Low,
			bar.Close,
			bar.Volume,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range bars {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert bar for %s: %w", symbol, err)
		}
	}
	return nil
}

func (r *Repository) GetBars(ctx context.Context, symbol string, limit int) ([]domain.Bar, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	const query = `
		SELECT bar_time, open, high, low, close, volume
		FROM daily_bars
		WHERE symbol=$1
		ORDER BY bar_time DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []domain.Bar
	for rows.Next() {
		var bar domain.Bar
		if err := rows.Scan(&bar.Timestamp, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Oldest first for the API response.
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars, nil
}
