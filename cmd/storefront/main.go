package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Aritro-Git/AIzMarketplace/internal/analytics"
	cartapp "github.com/Aritro-Git/AIzMarketplace/internal/cart/app"
	carthttp "github.com/Aritro-Git/AIzMarketplace/internal/cart/httpapi"
	cartfile "github.com/Aritro-Git/AIzMarketplace/internal/cart/infra/file"
	cartmem "github.com/Aritro-Git/AIzMarketplace/internal/cart/infra/memory"
	"github.com/Aritro-Git/AIzMarketplace/internal/cart/infra/redisstore"
	catalogapp "github.com/Aritro-Git/AIzMarketplace/internal/catalog/app"
	cataloghttp "github.com/Aritro-Git/AIzMarketplace/internal/catalog/httpapi"
	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/infra/jsonfile"
	"github.com/Aritro-Git/AIzMarketplace/internal/telemetry"
	"github.com/Aritro-Git/AIzMarketplace/pkg/config"
	"github.com/Aritro-Git/AIzMarketplace/pkg/logger"
	"github.com/Aritro-Git/AIzMarketplace/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	emitter := analytics.NewLogEmitter(log)
	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)

	catalog := catalogapp.NewService(jsonfile.New(cfg.CatalogPath), emitter)
	if err := catalog.Load(ctx); err != nil {
		// An unreadable dataset is not fatal: the listing degrades to
		// "0 of 0 results".
		log.Warn("catalogue load failed, serving empty catalogue", slog.Any("err", err))
	} else {
		log.Info("catalogue loaded", slog.Int("agents", len(catalog.Agents())))
	}

	storage, err := newCartStorage(cfg)
	if err != nil {
		log.Error("cart storage init failed", slog.Any("err", err))
		os.Exit(1)
	}

	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		log.Warn("invalid tax rate, defaulting to zero", slog.String("tax_rate", cfg.TaxRate))
		taxRate = decimal.Zero
	}

	cart := cartapp.NewService(storage, cartapp.Options{
		TaxRate: taxRate,
		Emitter: emitter,
		Logger:  log,
	})
	cart.Load(ctx)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	cataloghttp.NewHandler(catalog, metrics, cfg.CurrencyPrefix).Register(api)
	carthttp.NewHandler(cart, catalog, metrics, cfg.CurrencyPrefix).Register(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("storefront exited with error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func loadConfig() config.Config {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err := config.FromFile(path)
		if err != nil {
			slog.Warn("config file unusable, using environment", "path", path, "err", err)
		}
		return cfg
	}
	return config.Load()
}

func newCartStorage(cfg config.Config) (cartapp.Storage, error) {
	switch cfg.CartBackend {
	case config.BackendMemory:
		return cartmem.New(), nil
	case config.BackendRedis:
		client, err := cfg.Redis.New()
		if err != nil {
			return nil, fmt.Errorf("redis cart backend: %w", err)
		}
		return redisstore.New(client, cfg.CartKey), nil
	case config.BackendFile, "":
		return cartfile.New(cfg.CartPath), nil
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.CartBackend)
	}
}
