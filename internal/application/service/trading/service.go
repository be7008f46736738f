package trading

import (
	"context"
	"errors"
	"fmt"
	"strings"

	trading "main/internal/domain/entity/trading"
	interfaces "main/internal/domain/interfaces"
)

var (
	ErrEmptySymbol     = errors.New("order symbol is required")
	ErrInvalidQuantity = errors.New("order quantity must be positive")
)

// Service exposes account state and order submission over the brokerage
// interfaces. No order or position state is kept between calls.
type Service struct {
	accounts interfaces.AccountSource
	orders   interfaces.OrderGateway
}

func NewService(accounts interfaces.AccountSource, orders interfaces.OrderGateway) *Service {
	return &Service{accounts: accounts, orders: orders}
}

// Account returns the brokerage account snapshot as reported upstream.
func (s *Service) Account(ctx context.Context) (*trading.AccountSnapshot, error) {
	snapshot, err := s.accounts.Account(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch account: %w", err)
	}
	return snapshot, nil
}

// SubmitOrder validates the request and forwards it to the order gateway.
func (s *Service) SubmitOrder(ctx context.Context, req *trading.OrderRequest) (*trading.OrderResult, error) {
	if req == nil {
		return nil, errors.New("order request is nil")
	}
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	if req.Symbol == "" {
		return nil, ErrEmptySymbol
	}
	if !req.Side.IsValid() {
		return nil, fmt.Errorf("invalid order side: %q", req.Side)
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	result, err := s.orders.SubmitOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit order for %s: %w", req.Symbol, err)
	}
	return result, nil
}
