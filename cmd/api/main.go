package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/bloomstitch/storefront-backend/api/routes"
	"github.com/bloomstitch/storefront-backend/internal/checkout"
	"github.com/bloomstitch/storefront-backend/internal/orders"
	"github.com/bloomstitch/storefront-backend/internal/session"
	"github.com/bloomstitch/storefront-backend/pkg/config"
	"github.com/bloomstitch/storefront-backend/pkg/db"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
	"github.com/bloomstitch/storefront-backend/pkg/metrics"
	"github.com/bloomstitch/storefront-backend/pkg/migrate"
	"github.com/bloomstitch/storefront-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Session state lives in redis when an endpoint is configured, otherwise
	// in process memory. Memory is fine for a single instance; redis keeps
	// carts alive across restarts and replicas.
	var sessions session.Store
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		sessions = session.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
		logg.Info(context.Background(), "session store: redis")
	} else {
		sessions = session.NewMemoryStore(cfg.Cart.SessionTTL)
		logg.Info(context.Background(), "session store: in-memory")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	ordersRepo := orders.NewRepository(dbClient.DB())
	ordersSvc := orders.NewService(ordersRepo)
	checkoutSvc := checkout.NewService(sessions, ordersRepo, cfg.Shipping, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Sessions: sessions,
			Checkout: checkoutSvc,
			Orders:   ordersSvc,
			Metrics:  httpMetrics,
			Registry: registry,
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeAll(ctx, logg, dbClient, redisClient)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	closeAll(ctx, logg, dbClient, redisClient)
	logg.Info(ctx, "api server stopped")
}

func closeAll(ctx context.Context, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	var errs error
	if dbClient != nil {
		errs = multierr.Append(errs, dbClient.Close())
	}
	if redisClient != nil {
		errs = multierr.Append(errs, redisClient.Close())
	}
	if errs != nil {
		logg.Error(ctx, "error closing resources", errs)
	}
}
