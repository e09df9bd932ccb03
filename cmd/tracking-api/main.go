package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ike-nanino/tracking/internal/api"
	"github.com/ike-nanino/tracking/internal/core/service"
	"github.com/ike-nanino/tracking/internal/infrastructure/carrier"
	redisdb "github.com/ike-nanino/tracking/internal/infrastructure/db/redis"
	"github.com/ike-nanino/tracking/internal/infrastructure/geocode"
	"github.com/ike-nanino/tracking/internal/infrastructure/routing"
	"github.com/ike-nanino/tracking/internal/pkg/config"
	"github.com/ike-nanino/tracking/pkg/logger"
)

// @title        Shipment Tracking API
// @version      1.0
// @description  Shipment tracking lookups with geocoding and route resolution.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// The Redis geocode cache is optional: a missing or unreachable instance
	// only disables caching, it never blocks startup.
	var rdb *goredis.Client
	var cache service.GeocodeCache
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, geocode cache disabled")
		} else {
			rdb = client
			cache = redisdb.NewGeocodeCache(client, cfg.Redis.CacheTTL)
		}
	}

	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, log)
	routeProvider := routing.NewClient(cfg.Routing.BaseURL, log)

	geocodeService := service.NewGeocodeService(geocoder, cache, log)
	routeService := service.NewRouteResolver(routeProvider, log)
	trackingService := service.NewTrackingService(carrier.NewMockSource(), geocodeService, routeService, log)

	e := api.NewRouter(api.Dependencies{
		Tracking: trackingService,
		Geocode:  geocodeService,
		Routes:   routeService,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("tracking api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
