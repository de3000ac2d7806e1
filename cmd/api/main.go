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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/souldevsoul/majaz-sub001/api/routes"
	"github.com/souldevsoul/majaz-sub001/internal/events"
	"github.com/souldevsoul/majaz-sub001/internal/messages"
	"github.com/souldevsoul/majaz-sub001/internal/reports"
	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/internal/scraping"
	"github.com/souldevsoul/majaz-sub001/pkg/config"
	"github.com/souldevsoul/majaz-sub001/pkg/db"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	"github.com/souldevsoul/majaz-sub001/pkg/metrics"
	"github.com/souldevsoul/majaz-sub001/pkg/migrate"
	"github.com/souldevsoul/majaz-sub001/pkg/payments"
	"github.com/souldevsoul/majaz-sub001/pkg/redis"
	"github.com/souldevsoul/majaz-sub001/pkg/scraper"
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
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	paymentsClient, err := payments.NewClient(context.Background(), cfg.Payments, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap payments client", err)
		os.Exit(1)
	}

	scraperClient, err := scraper.NewClient(cfg.Scraper, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap scraper client", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	eventsRepo := events.NewRepository(dbClient.DB())
	eventsRecorder, err := events.NewRecorder(eventsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create event recorder", err)
		os.Exit(1)
	}

	requestsRepo := requests.NewRepository(dbClient.DB())
	requestsService, err := requests.NewService(requestsRepo, dbClient, eventsRecorder, paymentsClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create requests service", err)
		os.Exit(1)
	}

	messagesService, err := messages.NewService(messages.NewRepository(dbClient.DB()), requestsService, dbClient, eventsRecorder)
	if err != nil {
		logg.Error(context.Background(), "failed to create messages service", err)
		os.Exit(1)
	}

	reportsService, err := reports.NewService(reports.NewRepository(dbClient.DB()), requestsService, dbClient, eventsRecorder)
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	scrapingService, err := scraping.NewService(requestsService, requestsRepo, scraperClient, dbClient, eventsRecorder, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create scraping service", err)
		os.Exit(1)
	}

	eventsService, err := events.NewService(eventsRepo, requestsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create events service", err)
		os.Exit(1)
	}

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
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			httpMetrics,
			requestsService,
			messagesService,
			reportsService,
			scrapingService,
			eventsService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
