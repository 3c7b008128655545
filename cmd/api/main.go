package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/config"
	"storefront/internal/core/httpclient"
	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"
	"storefront/internal/core/server"
	banneradapter "storefront/internal/features/banners/adapters"
	bannerhandler "storefront/internal/features/banners/handler"
	"storefront/internal/features/banners/ports"
	bannerservice "storefront/internal/features/banners/service"
	checkouthandler "storefront/internal/features/checkout/handler"
	homehandler "storefront/internal/features/home/handler"
	marqueehandler "storefront/internal/features/marquee/handler"
	paymenthandler "storefront/internal/features/payment/handler"

	"go.uber.org/zap"
)

// @title Storefront API
// @version 1.0
// @description Banner message management and storefront pages (marquee, checkout QR, payment failure).
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("gateway_driver", cfg.Gateway.Driver),
	)

	// Initialize Redis and run Health Check
	redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisAdapter.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisAdapter.Ping(pingCtx); err != nil {
		cancel()
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Redis connection verified")

	// Initialize Banner Gateway
	gateway, closeGateway, err := openGateway(cfg, redisAdapter)
	if err != nil {
		l.Fatal("Failed to open banner gateway", zap.Error(err))
	}
	defer closeGateway()

	// Initialize Banner Service & Handlers
	queries := cache.NewVersioned(redisAdapter, bannerservice.CacheNamespace, cfg.Banners.CacheTTL)
	bannerSvc := bannerservice.NewBannerService(gateway, queries, bannerservice.DefaultQueryOptions(uint(max(cfg.Banners.FetchAllRetries, 0))))

	bannerHdl := bannerhandler.NewBannerHandler(bannerSvc)
	marqueeHdl := marqueehandler.NewMarqueeHandler(bannerSvc, cfg.Marquee.FetchTimeout)
	homeHdl := homehandler.NewHomeHandler(marqueeHdl)
	checkoutHdl := checkouthandler.NewCheckoutHandler(cfg.Checkout)
	paymentHdl := paymenthandler.NewPaymentHandler()

	srv := server.New(cfg)

	// Register Routes
	bannerHdl.Register(srv.App)
	marqueeHdl.Register(srv.App)
	homeHdl.Register(srv.App)
	checkoutHdl.Register(srv.App)
	paymentHdl.Register(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// openGateway builds the banner gateway selected by GATEWAY_DRIVER.
func openGateway(cfg *config.AppConfig, redisAdapter *cache.RedisAdapter) (ports.Gateway, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Gateway.Driver {
	case config.GatewayDriverRedis:
		return banneradapter.NewRedisGateway(redisAdapter), noop, nil

	case config.GatewayDriverSQLite:
		gw, err := banneradapter.OpenSQLiteGateway(cfg.Gateway.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return gw, gw.Close, nil

	case config.GatewayDriverHTTP:
		client, err := httpclient.NewProxiedClient(cfg.Gateway.Timeout, proxy.FromConfig(cfg.Gateway.Proxy))
		if err != nil {
			return nil, noop, err
		}
		return banneradapter.NewHTTPGateway(cfg.Gateway.URL, client), noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported GATEWAY_DRIVER: %q", cfg.Gateway.Driver)
	}
}
