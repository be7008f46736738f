package simulated

import (
	"context"
	"time"

	trading "main/internal/domain/entity/trading"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const orderMessage = "simulated order: accepted without routing to a venue"

// OrderGateway acknowledges orders without routing them anywhere. Every order
// is accepted with a synthetic id and stays unfilled; nothing is kept between
// calls.
type OrderGateway struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewOrderGateway(logger *logrus.Logger) *OrderGateway {
	return &OrderGateway{logger: logger, now: time.Now}
}

func (g *OrderGateway) SubmitOrder(ctx context.Context, req *trading.OrderRequest) (*trading.OrderResult, error) {
	result := &trading.OrderResult{
		ID:             uuid.NewString(),
		Status:         "accepted",
		Symbol:         req.Symbol,
		Side:           req.Side,
		Quantity:       req.Quantity,
		OrderType:      req.OrderType,
		TimeInForce:    req.TimeInForce,
		SubmittedAt:    g.now().UTC(),
		FilledAt:       nil,
		FilledQuantity: 0,
		Message:        orderMessage,
	}

	g.logger.WithFields(logrus.Fields{
		"order_id": result.ID,
		"symbol":   req.Symbol,
		"side":     req.Side,
		"quantity": req.Quantity,
	}).Info("simulated order accepted")

	return result, nil
}
