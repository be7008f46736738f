package interfaces

import (
	"context"
	"time"

	marketdata "main/internal/domain/entity/marketdata"
	trading "main/internal/domain/entity/trading"
)

// BarSource fetches historical bars from the upstream data provider. An empty
// slice with a nil error means the provider had no data for the symbol; a
// non-nil error means the upstream call itself failed. Callers rely on this
// distinction to map the two cases to different HTTP statuses.
type BarSource interface {
	Bars(ctx context.Context, symbol string, resolution marketdata.Resolution, from, to time.Time) ([]marketdata.Bar, error)
}

// AccountSource reads the brokerage account state.
type AccountSource interface {
	Account(ctx context.Context) (*trading.AccountSnapshot, error)
}

// OrderGateway submits orders to a venue. The shipped implementation is a
// simulation that acknowledges without routing anywhere.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, req *trading.OrderRequest) (*trading.OrderResult, error)
}
