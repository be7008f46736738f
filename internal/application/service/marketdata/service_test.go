package marketdata

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	marketdata "main/internal/domain/entity/marketdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBarSource struct {
	symbol     string
	resolution marketdata.Resolution
	from, to   time.Time

	bars []marketdata.Bar
	err  error
}

func (f *fakeBarSource) Bars(ctx context.Context, symbol string, resolution marketdata.Resolution, from, to time.Time) ([]marketdata.Bar, error) {
	f.symbol = symbol
	f.resolution = resolution
	f.from = from
	f.to = to
	return f.bars, f.err
}

type fakeBarArchive struct {
	savedSymbol string
	saved       []marketdata.Bar
	saveErr     error

	stored []marketdata.Bar
	getErr error
	limit  int
}

func (f *fakeBarArchive) SaveBars(ctx context.Context, symbol string, bars []marketdata.Bar) error {
	f.savedSymbol = symbol
	f.saved = bars
	return f.saveErr
}

func (f *fakeBarArchive) GetBars(ctx context.Context, symbol string, limit int) ([]marketdata.Bar, error) {
	f.limit = limit
	return f.stored, f.getErr
}

func (f *fakeBarArchive) Close() {}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func dailyBars(n int) []marketdata.Bar {
	bars := make([]marketdata.Bar, 0, n)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		bars = append(bars, marketdata.Bar{
			Timestamp: day.AddDate(0, 0, i),
			Open:      100 + float64(i),
			High:      101 + float64(i),
			Low:       99 + float64(i),
			Close:     100.5 + float64(i),
			Volume:    1000,
		})
	}
	return bars
}

func TestServiceBars(t *testing.T) {
	t.Run("normalizes symbol and applies defaults", func(t *testing.T) {
		source := &fakeBarSource{bars: dailyBars(3)}
		svc := NewService(source, nil, testLogger())

		bars, err := svc.Bars(context.Background(), " aapl ", "", 0)
		require.NoError(t, err)

		assert.Len(t, bars, 3)
		assert.Equal(t, "AAPL", source.symbol)
		assert.Equal(t, marketdata.ResolutionDay, source.resolution)
		assert.InDelta(t, float64(DefaultDays), source.to.Sub(source.from).Hours()/24, 0.01)
	})

	t.Run("empty symbol", func(t *testing.T) {
		svc := NewService(&fakeBarSource{}, nil, testLogger())

		_, err := svc.Bars(context.Background(), "  ", "1D", 30)
		assert.ErrorIs(t, err, ErrEmptySymbol)
	})

	t.Run("empty provider result becomes ErrNoData with the symbol", func(t *testing.T) {
		svc := NewService(&fakeBarSource{}, nil, testLogger())

		_, err := svc.Bars(context.Background(), "UNKNOWN", "1D", 30)
		assert.ErrorIs(t, err, ErrNoData)
		assert.ErrorContains(t, err, "UNKNOWN")
	})

	t.Run("upstream failure is not ErrNoData", func(t *testing.T) {
		upstream := errors.New("connection refused")
		svc := NewService(&fakeBarSource{err: upstream}, nil, testLogger())

		_, err := svc.Bars(context.Background(), "AAPL", "1D", 30)
		assert.ErrorIs(t, err, upstream)
		assert.NotErrorIs(t, err, ErrNoData)
	})

	t.Run("daily bars are mirrored into the archive", func(t *testing.T) {
		source := &fakeBarSource{bars: dailyBars(5)}
		archive := &fakeBarArchive{}
		svc := NewService(source, archive, testLogger())

		bars, err := svc.Bars(context.Background(), "AAPL", "1D", 30)
		require.NoError(t, err)

		assert.Equal(t, "AAPL", archive.savedSymbol)
		assert.Equal(t, bars, archive.saved)
	})

	t.Run("hourly bars are not archived", func(t *testing.T) {
		source := &fakeBarSource{bars: dailyBars(5)}
		archive := &fakeBarArchive{}
		svc := NewService(source, archive, testLogger())

		_, err := svc.Bars(context.Background(), "AAPL", "1H", 5)
		require.NoError(t, err)
		assert.Empty(t, archive.savedSymbol)
	})

	t.Run("archive failure does not fail the request", func(t *testing.T) {
		source := &fakeBarSource{bars: dailyBars(2)}
		archive := &fakeBarArchive{saveErr: errors.New("db down")}
		svc := NewService(source, archive, testLogger())

		bars, err := svc.Bars(context.Background(), "AAPL", "1D", 30)
		require.NoError(t, err)
		assert.Len(t, bars, 2)
	})
}

func TestResolveTimeframe(t *testing.T) {
	tests := []struct {
		name       string
		timeframe  string
		days       int
		resolution marketdata.Resolution
		wantDays   int
	}{
		{"daily keeps the span", "1D", 30, marketdata.ResolutionDay, 30},
		{"hourly keeps the span", "1H", 14, marketdata.ResolutionHour, 14},
		{"quarter hour clamps to a week", "15Min", 30, marketdata.ResolutionQuarterHour, 7},
		{"quarter hour under the cap", "15Min", 5, marketdata.ResolutionQuarterHour, 5},
		{"unknown falls back to minute", "5Min", 30, marketdata.ResolutionMinute, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, days := resolveTimeframe(tt.timeframe, tt.days)
			assert.Equal(t, tt.resolution, resolution)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestServiceLatestClose(t *testing.T) {
	t.Run("returns the last close", func(t *testing.T) {
		source := &fakeBarSource{bars: dailyBars(3)}
		svc := NewService(source, nil, testLogger())

		last, err := svc.LatestClose(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, 102.5, last)
	})

	t.Run("no data propagates", func(t *testing.T) {
		svc := NewService(&fakeBarSource{}, nil, testLogger())

		_, err := svc.LatestClose(context.Background(), "UNKNOWN")
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestServiceHistory(t *testing.T) {
	t.Run("archive disabled", func(t *testing.T) {
		svc := NewService(&fakeBarSource{}, nil, testLogger())

		_, err := svc.History(context.Background(), "AAPL", 10)
		assert.ErrorIs(t, err, ErrArchiveDisabled)
	})

	t.Run("reads archived bars with a default limit", func(t *testing.T) {
		archive := &fakeBarArchive{stored: dailyBars(4)}
		svc := NewService(&fakeBarSource{}, archive, testLogger())

		bars, err := svc.History(context.Background(), "aapl", 0)
		require.NoError(t, err)
		assert.Len(t, bars, 4)
		assert.Equal(t, defaultHistoryLimit, archive.limit)
	})

	t.Run("empty archive becomes ErrNoData", func(t *testing.T) {
		svc := NewService(&fakeBarSource{}, &fakeBarArchive{}, testLogger())

		_, err := svc.History(context.Background(), "AAPL", 10)
		assert.ErrorIs(t, err, ErrNoData)
		assert.ErrorContains(t, err, "AAPL")
	})
}
