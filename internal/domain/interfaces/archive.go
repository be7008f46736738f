package interfaces

import (
	"context"

	marketdata "main/internal/domain/entity/marketdata"
)

// BarArchive stores daily bars fetched from the provider so past requests can
// be replayed without another upstream call. The archive is optional: the
// service runs without one when no database is configured.
type BarArchive interface {
	SaveBars(ctx context.Context, symbol string, bars []marketdata.Bar) error
	GetBars(ctx context.Context, symbol string, limit int) ([]marketdata.Bar, error)

	Close()
}
