package marketdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	marketdata "main/internal/domain/entity/marketdata"
	interfaces "main/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeframe and DefaultDays apply when the request leaves the
	// parameters out.
	DefaultTimeframe = "1D"
	DefaultDays      = 30

	// Minute-level data is capped to keep provider payloads bounded.
	maxQuarterHourDays = 7
	maxMinuteDays      = 3

	defaultHistoryLimit = 100
)

var (
	ErrEmptySymbol     = errors.New("symbol is required")
	ErrNoData          = errors.New("no bar data")
	ErrArchiveDisabled = errors.New("bar archive is not configured")
)

// Service fetches historical bars through a BarSource and optionally mirrors
// daily bars into a BarArchive.
type Service struct {
	source  interfaces.BarSource
	archive interfaces.BarArchive
	logger  *logrus.Logger
}

func NewService(source interfaces.BarSource, archive interfaces.BarArchive, logger *logrus.Logger) *Service {
	return &Service{source: source, archive: archive, logger: logger}
}

// Bars returns historical bars for the symbol. The timeframe token is mapped
// to a provider resolution, and the day span is clamped for sub-hour
// granularities. An empty provider result is reported as ErrNoData wrapping
// the symbol so callers can tell "nothing listed" apart from an upstream
// failure.
func (s *Service) Bars(ctx context.Context, symbol, timeframe string, days int) ([]marketdata.Bar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	if days <= 0 {
		days = DefaultDays
	}

	resolution, days := resolveTimeframe(timeframe, days)

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	bars, err := s.source.Bars(ctx, symbol, resolution, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, symbol)
	}

	if s.archive != nil && resolution == marketdata.ResolutionDay {
		if archiveErr := s.archive.SaveBars(ctx, symbol, bars); archiveErr != nil {
			s.logger.WithError(archiveErr).WithField("symbol", symbol).Warn("failed to archive bars")
		}
	}

	return bars, nil
}

// LatestClose returns the most recent daily close for the symbol. The chain
// synthesizer uses it as the spot price.
func (s *Service) LatestClose(ctx context.Context, symbol string) (float64, error) {
	bars, err := s.Bars(ctx, symbol, DefaultTimeframe, 1)
	if err != nil {
		return 0, err
	}
	return bars[len(bars)-1].Close, nil
}

// History reads previously archived daily bars for the symbol.
func (s *Service) History(ctx context.Context, symbol string, limit int) ([]marketdata.Bar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	bars, err := s.archive.GetBars(ctx, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("read archived bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, symbol)
	}
	return bars, nil
}

// resolveTimeframe maps a friendly token to a provider resolution and clamps
// the day span for fine granularities.
func resolveTimeframe(timeframe string, days int) (marketdata.Resolution, int) {
	switch timeframe {
	case "1D":
		return marketdata.ResolutionDay, days
	case "1H":
		return marketdata.ResolutionHour, days
	case "15Min":
		return marketdata.ResolutionQuarterHour, min(days, maxQuarterHourDays)
	default:
		return marketdata.ResolutionMinute, min(days, maxMinuteDays)
	}
}
