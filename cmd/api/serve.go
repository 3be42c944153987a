package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	health "github.com/Brendon2203/techsolutions/gen/health"
	healthsvr "github.com/Brendon2203/techsolutions/gen/http/health/server"
	quotesvr "github.com/Brendon2203/techsolutions/gen/http/quote/server"
	quote "github.com/Brendon2203/techsolutions/gen/quote"
	"github.com/Brendon2203/techsolutions/internal/config"
	"github.com/Brendon2203/techsolutions/internal/database"
	"github.com/Brendon2203/techsolutions/internal/logging"
	"github.com/Brendon2203/techsolutions/internal/metrics"
	"github.com/Brendon2203/techsolutions/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

// appStore is what the HTTP layer needs from the database
type appStore interface {
	services.QuoteStore
	services.HealthChecker
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

// loadConfig reads the configuration and applies command line overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.configPath != "" {
		if err := os.Setenv("CONFIG_PATH", opts.configPath); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.host != "" {
		cfg.App.Host = opts.host
	}
	if opts.port != "" {
		cfg.App.Port = opts.port
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logging.Init(cfg.Log, cfg.App.Debug)

	logging.Info("starting server", "name", cfg.App.Name, "version", cfg.App.Version,
		"debug", cfg.App.Debug, "host", cfg.App.Host, "port", cfg.App.Port)

	store, err := database.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		logging.Info("closing database connections")
		if err := store.Close(); err != nil {
			logging.Error("error closing database", "error", err)
		}
	}()

	if err := store.Initialize(cmd.Context()); err != nil {
		return err
	}

	emailSvc := services.NewEmailService(&cfg.Email)
	if !emailSvc.IsEnabled() {
		logging.Warn("email settings incomplete, notifications disabled")
	}

	addr := net.JoinHostPort(cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      newHandler(cfg, store, emailSvc),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logging.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logging.Info("shutdown signal received, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("error during graceful shutdown", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			_ = httpServer.Close()
		}
	}

	logging.Info("server shutdown complete")
	return nil
}

// newHandler wires the goa servers, the site and /metrics behind the
// middleware chain.
func newHandler(cfg *config.Config, store appStore, notifier services.Notifier) http.Handler {
	healthSvc := services.NewHealthService(cfg.App.Name, store)
	quoteSvc := services.NewQuoteService(store, notifier, cfg.App.ExposeStorageErrors)

	healthEndpoints := health.NewEndpoints(healthSvc)
	quoteEndpoints := quote.NewEndpoints(quoteSvc)

	mux := goahttp.NewMuxer()

	healthServer := healthsvr.New(healthEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, services.ErrorHandler, services.FormatError)
	healthServer.Use(middleware.RequestID())
	healthServer.Use(middleware.PopulateRequestContext())
	healthServer.Mount(mux)

	quoteServer := quotesvr.New(quoteEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, services.ErrorHandler, services.FormatError)
	quoteServer.Use(middleware.RequestID())
	quoteServer.Use(middleware.PopulateRequestContext())
	quoteServer.Mount(mux)

	services.NewSiteHandler(cfg.App.SiteDir).Mount(mux)

	metricsHandler := promhttp.Handler()
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	// Security -> CORS -> Logging -> Prometheus -> Handler
	return setupSecurityHeaders(setupCORS(requestLogging(metrics.PrometheusMiddleware(rootHandler)), cfg), cfg)
}
