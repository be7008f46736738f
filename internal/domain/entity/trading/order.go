package trading

import (
	"fmt"
	"time"
)

// OrderSide is the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

func (s OrderSide) IsValid() bool {
	return s == SideBuy || s == SideSell
}

func NewOrderSide(s string) (OrderSide, error) {
	side := OrderSide(s)
	if !side.IsValid() {
		return "", fmt.Errorf("invalid order side: %s", s)
	}
	return side, nil
}

// OrderRequest describes an order to submit against an option contract symbol.
type OrderRequest struct {
	Symbol      string    `json:"symbol"`
	Side        OrderSide `json:"side"`
	Quantity    int       `json:"quantity"`
	OrderType   string    `json:"order_type"`
	TimeInForce string    `json:"time_in_force"`
	LimitPrice  *float64  `json:"limit_price,omitempty"`
}

// OrderResult is the acknowledgment returned for a submitted order. In
// simulation mode orders are accepted but never filled, so FilledQuantity is
// zero and FilledAt is nil by construction.
type OrderResult struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	Symbol         string     `json:"symbol"`
	Side           OrderSide  `json:"side"`
	Quantity       int        `json:"quantity"`
	OrderType      string     `json:"type"`
	TimeInForce    string     `json:"time_in_force"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	FilledAt       *time.Time `json:"filled_at"`
	FilledQuantity int        `json:"filled_quantity"`
	Message        string     `json:"message,omitempty"`
}
