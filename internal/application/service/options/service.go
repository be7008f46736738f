package options

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	options "main/internal/domain/entity/options"
)

var ErrEmptySymbol = errors.New("symbol is required")

// SpotSource resolves the current spot price of an underlying. The market
// data service satisfies it with the latest daily close.
type SpotSource interface {
	LatestClose(ctx context.Context, symbol string) (float64, error)
}

// Service synthesizes option chains for an underlying symbol.
type Service struct {
	spot SpotSource
	now  func() time.Time
}

func NewService(spot SpotSource) *Service {
	return &Service{spot: spot, now: time.Now}
}

// Chain resolves the spot price for the symbol and synthesizes a chain from
// it. When the spot price is unavailable the error from the spot source
// propagates unchanged, so callers keep the no-data/upstream-error
// distinction.
func (s *Service) Chain(ctx context.Context, symbol string) (*options.Chain, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	spot, err := s.spot.LatestClose(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("resolve spot price: %w", err)
	}

	return Synthesize(symbol, spot, s.now()), nil
}
