package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "zapshift/internal/app"
	"zapshift/internal/handlers/rest/healthcheck_head"
	"zapshift/internal/handlers/rest/parcel_assign_patch"
	"zapshift/internal/handlers/rest/parcel_get"
	"zapshift/internal/handlers/rest/parcel_post"
	"zapshift/internal/handlers/rest/parcel_status_counts_get"
	"zapshift/internal/handlers/rest/parcel_status_patch"
	"zapshift/internal/handlers/rest/parcels_get"
	"zapshift/internal/handlers/rest/parcels_rider_get"
	"zapshift/internal/handlers/rest/payment_checkout_post"
	"zapshift/internal/handlers/rest/payment_success_patch"
	"zapshift/internal/handlers/rest/payments_get"
	"zapshift/internal/handlers/rest/ping_get"
	"zapshift/internal/handlers/rest/rider_decision_patch"
	"zapshift/internal/handlers/rest/rider_deliveries_per_day_get"
	"zapshift/internal/handlers/rest/rider_post"
	"zapshift/internal/handlers/rest/riders_get"
	"zapshift/internal/handlers/rest/tracking_logs_get"
	"zapshift/internal/pkg/config"
	"zapshift/internal/pkg/dotenv"
	metrics_system "zapshift/internal/pkg/metrics"
	"zapshift/internal/pkg/middlewares/auth"
	"zapshift/internal/pkg/middlewares/graceful_shutdown"
	"zapshift/internal/pkg/middlewares/metrics"
	"zapshift/internal/pkg/middlewares/rate_limiter"
	"zapshift/internal/pkg/middlewares/timeout"
	"zapshift/internal/pkg/postgres"
	"zapshift/pkg/logger"
	"zapshift/pkg/logger/zap_adapter"
	"zapshift/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting zapshift application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // наследование от context.Background() — часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс игнорируется
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	authRequired := auth.Middleware(log, cfg.Auth.JWTSecret)

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels", authRequired(parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/rider", authRequired(parcels_rider_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/status/counts", parcel_status_counts_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{id}/assign", authRequired(parcel_assign_patch.New(log, app.ServiceParcel, app.ServiceRider))).Methods("PATCH")
	router.Handle("/parcels/{id}/status", authRequired(parcel_status_patch.New(log, app.ServiceParcel))).Methods("PATCH")

	router.Handle("/riders", rider_post.New(log, app.ServiceRider)).Methods("POST")
	router.Handle("/riders", authRequired(riders_get.New(log, app.ServiceRider))).Methods("GET")
	router.Handle("/riders/deliveries/per-day", authRequired(rider_deliveries_per_day_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/riders/{id}/decision", authRequired(rider_decision_patch.New(log, app.ServiceRider, app.ServiceUser))).Methods("PATCH")

	router.Handle("/payments/checkout", authRequired(payment_checkout_post.New(log, app.ServicePayment))).Methods("POST")
	router.Handle("/payments/success/{sessionId}", payment_success_patch.New(log, app.ServicePayment)).Methods("PATCH")
	router.Handle("/payments", authRequired(payments_get.New(log, app.ServicePayment))).Methods("GET")

	router.Handle("/trackings/{trackingId}/logs", tracking_logs_get.New(log, app.ServiceTracking)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
