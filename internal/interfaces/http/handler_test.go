package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appmarketdata "main/internal/application/service/marketdata"
	appoptions "main/internal/application/service/options"
	apptrading "main/internal/application/service/trading"
	domainmarketdata "main/internal/domain/entity/marketdata"
	domainoptions "main/internal/domain/entity/options"
	domaintrading "main/internal/domain/entity/trading"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBarSource struct {
	bars []domainmarketdata.Bar
	err  error
}

func (f *fakeBarSource) Bars(ctx context.Context, symbol string, resolution domainmarketdata.Resolution, from, to time.Time) ([]domainmarketdata.Bar, error) {
	return f.bars, f.err
}

type fakeAccountSource struct {
	snapshot *domaintrading.AccountSnapshot
	err      error
}

func (f *fakeAccountSource) Account(ctx context.Context) (*domaintrading.AccountSnapshot, error) {
	return f.snapshot, f.err
}

type fakeOrderGateway struct {
	result *domaintrading.OrderResult
	err    error
}

func (f *fakeOrderGateway) SubmitOrder(ctx context.Context, req *domaintrading.OrderRequest) (*domaintrading.OrderResult, error) {
	return f.result, f.err
}

func sampleBars(n int) []domainmarketdata.Bar {
	bars := make([]domainmarketdata.Bar, 0, n)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		bars = append(bars, domainmarketdata.Bar{
			Timestamp: day.AddDate(0, 0, i),
			Open:      180 + float64(i),
			High:      182 + float64(i),
			Low:       179 + float64(i),
			Close:     181 + float64(i),
			Volume:    50000,
		})
	}
	return bars
}

func newTestHandler(source *fakeBarSource, accounts *fakeAccountSource, orders *fakeOrderGateway) *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	marketdataService := appmarketdata.NewService(source, nil, logger)
	optionsService := appoptions.NewService(marketdataService)
	tradingService := apptrading.NewService(accounts, orders)

	return NewHandler(marketdataService, optionsService, tradingService, []string{"http://localhost:3000"}, nil, 0)
}

func doRequest(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload["error"]
}

func TestRoot(t *testing.T) {
	h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

	rec := doRequest(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Options Visualizer API")
}

func TestGetStockBars(t *testing.T) {
	t.Run("returns bars", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{bars: sampleBars(3)}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/stock/AAPL?timeframe=1D&days=30", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp stockResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "AAPL", resp.Symbol)
		assert.Equal(t, "1D", resp.Timeframe)
		assert.Len(t, resp.Data, 3)
	})

	t.Run("unknown symbol is a 404 naming the symbol", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/stock/UNKNOWN", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, errorBody(t, rec), "UNKNOWN")
	})

	t.Run("upstream failure is an opaque 500", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{err: errors.New("secret dsn in here")}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/stock/AAPL", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", errorBody(t, rec))
	})

	t.Run("invalid days is a 400", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{bars: sampleBars(1)}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/stock/AAPL?days=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(h, http.MethodGet, "/api/stock/AAPL?days=-5", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetStockHistory(t *testing.T) {
	t.Run("archive disabled is a 404", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/stock/AAPL/history", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, errorBody(t, rec), "archive")
	})
}

func TestGetOptionsChain(t *testing.T) {
	t.Run("synthesizes a chain from the latest close", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{bars: sampleBars(1)}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/options/AAPL", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var chain domainoptions.Chain
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chain))
		assert.Equal(t, "AAPL", chain.Symbol)
		assert.Equal(t, 181.0, chain.CurrentPrice)
		assert.Len(t, chain.ExpirationDates, 4)
		assert.Len(t, chain.Calls, 36)
		assert.Len(t, chain.Puts, 36)
	})

	t.Run("no spot data is a 404", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/options/UNKNOWN", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, errorBody(t, rec), "UNKNOWN")
	})
}

func TestGetAccount(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		accounts := &fakeAccountSource{snapshot: &domaintrading.AccountSnapshot{
			ID:             "acc-1",
			Cash:           25000.5,
			PortfolioValue: 31000,
			BuyingPower:    50000,
			Equity:         31000,
			Status:         "ACTIVE",
		}}
		h := newTestHandler(&fakeBarSource{}, accounts, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/account", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var snapshot domaintrading.AccountSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, "acc-1", snapshot.ID)
		assert.Equal(t, 25000.5, snapshot.Cash)
		assert.Equal(t, "ACTIVE", snapshot.Status)
	})

	t.Run("upstream failure is a 500 with the message", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{err: errors.New("forbidden")}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodGet, "/api/account", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, errorBody(t, rec), "forbidden")
	})
}

func TestPlaceOrder(t *testing.T) {
	validPayload := func() []byte {
		return []byte(`{"symbol":"AAPL","side":"buy","quantity":2,"order_type":"market","time_in_force":"day"}`)
	}

	t.Run("accepts a valid order", func(t *testing.T) {
		orders := &fakeOrderGateway{result: &domaintrading.OrderResult{
			ID:       "ord-1",
			Status:   "accepted",
			Symbol:   "AAPL",
			Side:     domaintrading.SideBuy,
			Quantity: 2,
		}}
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, orders)

		rec := doRequest(h, http.MethodPost, "/api/order", validPayload())
		require.Equal(t, http.StatusOK, rec.Code)

		var result domaintrading.OrderResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "accepted", result.Status)
		assert.Zero(t, result.FilledQuantity)
		assert.Nil(t, result.FilledAt)
	})

	t.Run("invalid side is a 400", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodPost, "/api/order", []byte(`{"symbol":"AAPL","side":"hold","quantity":1}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorBody(t, rec), "side")
	})

	t.Run("zero quantity is a 400", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodPost, "/api/order", []byte(`{"symbol":"AAPL","side":"buy","quantity":0}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		h := newTestHandler(&fakeBarSource{}, &fakeAccountSource{}, &fakeOrderGateway{})

		rec := doRequest(h, http.MethodPost, "/api/order", []byte(`{"symbol":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
