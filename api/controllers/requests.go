package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/api/validators"
	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

type createRequestPayload struct {
	Mode           string           `json:"mode" validate:"required"`
	ServiceTier    string           `json:"serviceTier" validate:"required"`
	Country        string           `json:"country" validate:"required"`
	Currency       string           `json:"currency" validate:"required"`
	ServiceFee     decimal.Decimal  `json:"serviceFee"`
	IncludeDeposit bool             `json:"includeDeposit"`
	MaxBid         *decimal.Decimal `json:"maxBid,omitempty"`
	ListingURL     *string          `json:"listingUrl,omitempty"`
	SourcingBrief  *string          `json:"sourcingBrief,omitempty"`
}

type updateRequestStatusPayload struct {
	Status string `json:"status" validate:"required"`
}

// RequestCreate opens a new assessment request and mints payment intents.
func RequestCreate(svc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
			return
		}

		var payload createRequestPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		mode, err := enums.ParseServiceMode(strings.ToLower(strings.TrimSpace(payload.Mode)))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mode"))
			return
		}
		tier, err := enums.ParseServiceTier(strings.ToLower(strings.TrimSpace(payload.ServiceTier)))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service tier"))
			return
		}
		country, err := enums.ParseCountry(strings.ToUpper(strings.TrimSpace(payload.Country)))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid country"))
			return
		}
		currency, err := enums.ParseCurrency(strings.ToUpper(strings.TrimSpace(payload.Currency)))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid currency"))
			return
		}

		result, err := svc.Create(ctx, middleware.ActorFromContext(ctx), requests.CreateRequestInput{
			Mode:           mode,
			Tier:           tier,
			Country:        country,
			Currency:       currency,
			ServiceFee:     payload.ServiceFee,
			IncludeDeposit: payload.IncludeDeposit,
			MaxBid:         payload.MaxBid,
			ListingURL:     payload.ListingURL,
			SourcingBrief:  payload.SourcingBrief,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// RequestList returns the caller's requests, newest first.
func RequestList(svc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.List(ctx, middleware.ActorFromContext(ctx), params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// RequestGet returns the full request detail with relations.
func RequestGet(svc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
			return
		}

		requestID, err := requestIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		request, err := svc.Get(ctx, middleware.ActorFromContext(ctx), requestID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, request)
	}
}

// RequestUpdateStatus moves the request through its lifecycle.
func RequestUpdateStatus(svc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
			return
		}

		requestID, err := requestIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateRequestStatusPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		target, err := enums.ParseRequestStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		request, err := svc.Transition(ctx, middleware.ActorFromContext(ctx), requestID, target)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, request)
	}
}

// RequestDelete soft-deletes by failing the request.
func RequestDelete(svc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
			return
		}

		requestID, err := requestIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.SoftDelete(ctx, middleware.ActorFromContext(ctx), requestID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": requestID, "deleted": true})
	}
}

func requestIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "requestId"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request id")
	}
	return id, nil
}
