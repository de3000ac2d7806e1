package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/souldevsoul/majaz-sub001/api/controllers"
	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/internal/events"
	"github.com/souldevsoul/majaz-sub001/internal/messages"
	"github.com/souldevsoul/majaz-sub001/internal/reports"
	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/internal/scraping"
	"github.com/souldevsoul/majaz-sub001/pkg/config"
	"github.com/souldevsoul/majaz-sub001/pkg/db"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	"github.com/souldevsoul/majaz-sub001/pkg/metrics"
	pkgredis "github.com/souldevsoul/majaz-sub001/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	httpMetrics *metrics.HTTPMetrics,
	requestsService requests.Service,
	messagesService messages.Service,
	reportsService reports.Service,
	scrapingService scraping.Service,
	eventsService events.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	var redisPinger pkgredis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(dbP, redisPinger, logg))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.Ping())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		if redisClient != nil {
			r.Use(middleware.Idempotency(redisClient, logg))
		}

		r.Get("/ping", controllers.PingAuthed())

		r.Route("/requests", func(r chi.Router) {
			r.Post("/quote", controllers.RequestQuote(logg))
			r.Post("/", controllers.RequestCreate(requestsService, logg))
			r.Get("/", controllers.RequestList(requestsService, logg))
			r.Route("/{requestId}", func(r chi.Router) {
				r.Get("/", controllers.RequestGet(requestsService, logg))
				r.Patch("/", controllers.RequestUpdateStatus(requestsService, logg))
				r.Delete("/", controllers.RequestDelete(requestsService, logg))
				r.Get("/report", controllers.RequestReport(reportsService, logg))
				r.Get("/events", controllers.RequestEventList(eventsService, logg))
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", controllers.MessageList(messagesService, logg))
			r.Post("/", controllers.MessageCreate(messagesService, logg))
		})

		r.Route("/ops", func(r chi.Router) {
			r.Use(middleware.RequireRole("operator", logg))
			r.Post("/requests/{requestId}/scrape", controllers.OpsRequestScrape(scrapingService, logg))
		})
	})

	return r
}
