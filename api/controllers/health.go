package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/pkg/db"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	pkgredis "github.com/souldevsoul/majaz-sub001/pkg/redis"
)

const readinessTimeout = 2 * time.Second

// HealthLive answers as long as the process is up.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"status": "ok"})
	}
}

// HealthReady checks the dependencies the API cannot serve without.
func HealthReady(database db.Pinger, cache pkgredis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if database != nil {
			if err := database.Ping(ctx); err != nil {
				checks["database"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness database ping failed", err)
				}
			} else {
				checks["database"] = "ok"
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				checks["redis"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness redis ping failed", err)
				}
			} else {
				checks["redis"] = "ok"
			}
		}

		if !healthy {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ok", "checks": checks})
	}
}
