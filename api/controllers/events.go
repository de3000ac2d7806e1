package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/internal/events"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

// RequestEventList returns the audit trail for a request, newest first
// unless order=asc is passed.
func RequestEventList(svc events.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "events service unavailable"))
			return
		}

		requestID, err := requestIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
		}

		descending := true
		if raw := strings.TrimSpace(r.URL.Query().Get("order")); raw != "" {
			switch strings.ToLower(raw) {
			case "asc":
				descending = false
			case "desc":
			default:
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order must be asc or desc"))
				return
			}
		}

		rows, err := svc.List(ctx, middleware.ActorFromContext(ctx), requestID, limit, descending)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
