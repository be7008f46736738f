package alpaca

import (
	"context"
	"fmt"
	"time"

	domain "main/internal/domain/entity/marketdata"
	trading "main/internal/domain/entity/trading"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Config carries the Alpaca credentials and endpoints. The trading API and
// the data API live on different hosts.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	DataURL   string
}

// Repository adapts the official Alpaca SDK to the domain interfaces. Each
// call is a single independent request: no retries, no caching.
type Repository struct {
	trading *alpaca.Client
	data    *marketdata.Client
	logger  *logrus.Logger
}

func NewRepository(cfg Config, logger *logrus.Logger) *Repository {
	return &Repository{
		trading: alpaca.NewClient(alpaca.ClientOpts{
			APIKey:    cfg.APIKey,
			APISecret: cfg.APISecret,
			BaseURL:   cfg.BaseURL,
		}),
		data: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    cfg.APIKey,
			APISecret: cfg.APISecret,
			BaseURL:   cfg.DataURL,
		}),
		logger: logger,
	}
}

// Bars fetches split-adjusted historical bars. A symbol the provider knows
// nothing about comes back as an empty slice, not an error.
func (r *Repository) Bars(ctx context.Context, symbol string, resolution domain.Resolution, from, to time.Time) ([]domain.Bar, error) {
	bars, err := r.data.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  timeFrame(resolution),
		Start:      from,
		End:        to,
		Adjustment: marketdata.All,
	})
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"symbol":    symbol,
			"operation": "GetBars",
		}).Error("alpaca request failed")
		return nil, fmt.Errorf("alpaca bars for %s: %w", symbol, err)
	}

	out := make([]domain.Bar, 0, len(bars))
	for _, bar := range bars {
		out = append(out, domain.Bar{
			Timestamp: bar.Timestamp,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Close:     bar.Close,
			Volume:    int64(bar.Volume),
		})
	}
	return out, nil
}

// Account reads the brokerage account and flattens the SDK decimals.
func (r *Repository) Account(ctx context.Context) (*trading.AccountSnapshot, error) {
	account, err := r.trading.GetAccount()
	if err != nil {
		r.logger.WithError(err).WithField("operation", "GetAccount").Error("alpaca request failed")
		return nil, fmt.Errorf("alpaca account: %w", err)
	}

	return &trading.AccountSnapshot{
		ID:             account.ID,
		Cash:           toFloat(account.Cash),
		PortfolioValue: toFloat(account.PortfolioValue),
		BuyingPower:    toFloat(account.BuyingPower),
		Equity:         toFloat(account.Equity),
		Status:         string(account.Status),
	}, nil
}

func timeFrame(resolution domain.Resolution) marketdata.TimeFrame {
	switch resolution {
	case domain.ResolutionDay:
		return marketdata.OneDay
	case domain.ResolutionHour:
		return marketdata.OneHour
	case domain.ResolutionQuarterHour:
		return marketdata.NewTimeFrame(15, marketdata.Min)
	default:
		return marketdata.OneMin
	}
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
