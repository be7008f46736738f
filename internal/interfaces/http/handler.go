// @title           Options Visualizer API
// @version         1.0
// @description     Thin backend proxying Alpaca market data and trading for the options visualizer frontend

// @host      localhost:8080
// @BasePath  /api

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	appinterfaces "main/internal/application/interfaces"
	appmarketdata "main/internal/application/service/marketdata"
	appoptions "main/internal/application/service/options"
	apptrading "main/internal/application/service/trading"
	domainmarketdata "main/internal/domain/entity/marketdata"
	domaintrading "main/internal/domain/entity/trading"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiBasePath = "/api"

var (
	errInternal    = errors.New("internal server error")
	errInvalidDays = errors.New("days query param must be a positive integer")
)

type Handler struct {
	router     *gin.Engine
	marketdata *appmarketdata.Service
	options    *appoptions.Service
	trading    *apptrading.Service
	cache      *redis.Client
	cacheTTL   time.Duration
}

var _ appinterfaces.HTTPHandler = (*Handler)(nil)

func NewHandler(md *appmarketdata.Service, opts *appoptions.Service, trd *apptrading.Service, corsOrigins []string, cache *redis.Client, cacheTTL time.Duration) *Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	h := &Handler{
		router:     router,
		marketdata: md,
		options:    opts,
		trading:    trd,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	h.router.GET("/", h.root)

	api := h.router.Group(apiBasePath)

	market := api.Group("")
	if h.cache != nil {
		market.Use(h.cacheMiddleware())
	}
	{
		market.GET("/stock/:symbol", h.getStockBars)
		market.GET("/stock/:symbol/history", h.getStockHistory)
		market.GET("/options/:symbol", h.getOptionsChain)
	}

	api.GET("/account", h.getAccount)
	api.POST("/order", h.placeOrder)
}

// root returns the service banner
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Options Visualizer API"})
}

type stockResponse struct {
	Symbol    string                 `json:"symbol"`
	Timeframe string                 `json:"timeframe"`
	Data      []domainmarketdata.Bar `json:"data"`
}

// getStockBars returns historical bars for a symbol
// @Summary      Get stock bars
// @Description  Historical OHLCV bars fetched from the data provider
// @Tags         stock
// @Produce      json
// @Param        symbol     path      string  true   "Underlying symbol"
// @Param        timeframe  query     string  false  "Bar timeframe (1D, 1H, 15Min)"  default(1D)
// @Param        days       query     int     false  "Day span"  default(30)
// @Success      200  {object}  stockResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stock/{symbol} [get]
func (h *Handler) getStockBars(c *gin.Context) {
	symbol := c.Param("symbol")
	timeframe := c.DefaultQuery("timeframe", appmarketdata.DefaultTimeframe)
	days, err := parseDaysQuery(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	bars, err := h.marketdata.Bars(c.Request.Context(), symbol, timeframe, days)
	if err != nil {
		writeMarketDataError(c, err)
		return
	}
	c.JSON(http.StatusOK, stockResponse{Symbol: symbol, Timeframe: timeframe, Data: bars})
}

// getStockHistory returns archived daily bars for a symbol
// @Summary      Get archived bars
// @Description  Daily bars previously fetched and stored in the bar archive
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true   "Underlying symbol"
// @Param        limit   query     int     false  "Maximum bars to return"  default(100)
// @Success      200  {object}  stockResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stock/{symbol}/history [get]
func (h *Handler) getStockHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	limit, _ := strconv.Atoi(c.Query("limit"))

	bars, err := h.marketdata.History(c.Request.Context(), symbol, limit)
	if err != nil {
		writeMarketDataError(c, err)
		return
	}
	c.JSON(http.StatusOK, stockResponse{Symbol: symbol, Timeframe: appmarketdata.DefaultTimeframe, Data: bars})
}

// getOptionsChain returns a synthesized options chain for a symbol
// @Summary      Get options chain
// @Description  Mock chain synthesized from the latest daily close
// @Tags         options
// @Produce      json
// @Param        symbol  path      string  true  "Underlying symbol"
// @Success      200  {object}  options.Chain
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /options/{symbol} [get]
func (h *Handler) getOptionsChain(c *gin.Context) {
	chain, err := h.options.Chain(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeMarketDataError(c, err)
		return
	}
	c.JSON(http.StatusOK, chain)
}

// getAccount returns the brokerage account snapshot
// @Summary      Get account
// @Tags         account
// @Produce      json
// @Success      200  {object}  trading.AccountSnapshot
// @Failure      500  {object}  map[string]string
// @Router       /account [get]
func (h *Handler) getAccount(c *gin.Context) {
	snapshot, err := h.trading.Account(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

type orderPayload struct {
	Symbol      string   `json:"symbol"`
	Side        string   `json:"side"`
	Quantity    int      `json:"quantity"`
	OrderType   string   `json:"order_type"`
	TimeInForce string   `json:"time_in_force"`
	LimitPrice  *float64 `json:"limit_price"`
}

func (p orderPayload) toDomain() (*domaintrading.OrderRequest, error) {
	side, err := domaintrading.NewOrderSide(p.Side)
	if err != nil {
		return nil, err
	}
	return &domaintrading.OrderRequest{
		Symbol:      p.Symbol,
		Side:        side,
		Quantity:    p.Quantity,
		OrderType:   p.OrderType,
		TimeInForce: p.TimeInForce,
		LimitPrice:  p.LimitPrice,
	}, nil
}

// placeOrder submits a simulated order
// @Summary      Place order
// @Description  Accepts the order in simulation mode; nothing is routed to a venue
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        order  body      orderPayload  true  "Order request"
// @Success      200  {object}  trading.OrderResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /order [post]
func (h *Handler) placeOrder(c *gin.Context) {
	var payload orderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	req, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.trading.SubmitOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apptrading.ErrEmptySymbol) || errors.Is(err, apptrading.ErrInvalidQuantity) {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Helpers

func parseDaysQuery(c *gin.Context) (int, error) {
	value := c.Query("days")
	if value == "" {
		return appmarketdata.DefaultDays, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 {
		return 0, errInvalidDays
	}
	return days, nil
}

// writeMarketDataError maps service errors to statuses: missing data stays a
// 404 with the symbol in the message, anything upstream becomes an opaque 500
// (details are already logged at the adapter).
func writeMarketDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appmarketdata.ErrNoData), errors.Is(err, appmarketdata.ErrArchiveDisabled):
		writeError(c, http.StatusNotFound, err)
	case errors.Is(err, appmarketdata.ErrEmptySymbol), errors.Is(err, appoptions.ErrEmptySymbol):
		writeError(c, http.StatusBadRequest, err)
	default:
		writeError(c, http.StatusInternalServerError, errInternal)
	}
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// cacheMiddleware caches GET responses in Redis.
func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := h.cacheKey(c)
		ctx := c.Request.Context()

		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			_ = h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL).Err()
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context) string {
	return fmt.Sprintf("cache:%s:%s?%s", c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery)
}
