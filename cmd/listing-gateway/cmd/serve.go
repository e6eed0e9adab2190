package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/okarpenko/listing-gateway/api/openapi"
	"github.com/okarpenko/listing-gateway/internal/api/handlers"
	"github.com/okarpenko/listing-gateway/internal/api/middleware"
	"github.com/okarpenko/listing-gateway/internal/backend"
	"github.com/okarpenko/listing-gateway/internal/config"
	"github.com/okarpenko/listing-gateway/internal/enrich"
	"github.com/okarpenko/listing-gateway/internal/media"
	"github.com/okarpenko/listing-gateway/internal/sweeper"
	"github.com/okarpenko/listing-gateway/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	// Backend client with rate limiting.
	limiter := backend.NewRateLimiter(
		cfg.Backend.RateLimit.PerSecond,
		cfg.Backend.RateLimit.Burst,
		cfg.Backend.RateLimit.DailyLimit,
	)
	backendClient := backend.NewHTTPClient(
		cfg.Backend.BaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		backend.WithRateLimiter(limiter),
	)

	enricher := enrich.New(backendClient, enrich.WithLogger(log))

	// Media pipeline.
	store := media.NewStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
	pipeline := media.NewPipeline(
		media.NewNormalizer(
			cfg.Uploads.MaxDimension,
			cfg.Uploads.Quality,
			cfg.Uploads.ThumbDimension,
			cfg.Uploads.ThumbQuality,
		),
		store,
		cfg.Uploads.AllowedExts,
		media.WithLogger(log),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	// Health and metrics endpoints.
	health := handlers.NewHealthHandler(backendClient)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Listing and catalog endpoints via Huma.
	api := humaecho.New(e, huma.DefaultConfig("Listing Gateway API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(enricher))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(enricher))
	openapi.RegisterRoutes(e)

	// Photo uploads and the stored assets themselves.
	uploads := handlers.NewUploadsHandler(
		pipeline,
		cfg.Uploads.FormField,
		cfg.Uploads.MaxFileMB,
		handlers.WithUploadsLogger(log),
	)
	e.POST("/api/v1/listings/photos", uploads.Upload)
	e.Static(cfg.Uploads.PublicPath, cfg.Uploads.Dir)

	// Content directory sweeper.
	sw, err := sweeper.New(cfg.Uploads.Dir, cfg.Sweep.Interval, sweeper.WithLogger(log))
	if err != nil {
		return fmt.Errorf("creating sweeper: %w", err)
	}
	sw.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "backend", cfg.Backend.BaseURL)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-sw.Stop().Done()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
