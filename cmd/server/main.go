package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "main/docs"
	appmarketdata "main/internal/application/service/marketdata"
	appoptions "main/internal/application/service/options"
	apptrading "main/internal/application/service/trading"
	"main/internal/config"
	interfaces "main/internal/domain/interfaces"
	infraalpaca "main/internal/infrastructure/alpaca"
	"main/internal/infrastructure/barstore"
	"main/internal/infrastructure/simulated"
	infrahttp "main/internal/interfaces/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	brokerage := infraalpaca.NewRepository(infraalpaca.Config{
		APIKey:    cfg.Alpaca.APIKey,
		APISecret: cfg.Alpaca.APISecret,
		BaseURL:   cfg.Alpaca.BaseURL,
		DataURL:   cfg.Alpaca.DataURL,
	}, logger)

	// The bar archive stays disabled (nil) without a DSN.
	var archive interfaces.BarArchive
	if cfg.Postgres.DSN != "" {
		repo, err := barstore.NewRepository(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Fatalf("failed to init bar archive: %v", err)
		}
		defer repo.Close()
		archive = repo
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	marketdataService := appmarketdata.NewService(brokerage, archive, logger)
	optionsService := appoptions.NewService(marketdataService)
	tradingService := apptrading.NewService(brokerage, simulated.NewOrderGateway(logger))

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	handler := infrahttp.NewHandler(marketdataService, optionsService, tradingService, cfg.CORS.Origins, redisClient, cacheTTL)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
