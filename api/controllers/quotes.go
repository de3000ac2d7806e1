package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/api/validators"
	"github.com/souldevsoul/majaz-sub001/internal/quotes"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

type quotePayload struct {
	Mode           string           `json:"mode" validate:"required"`
	ServiceTier    string           `json:"serviceTier" validate:"required"`
	Country        string           `json:"country" validate:"required"`
	Currency       string           `json:"currency" validate:"required"`
	IncludeDeposit bool             `json:"includeDeposit"`
	MaxBid         *decimal.Decimal `json:"maxBid,omitempty"`
}

// RequestQuote prices a prospective request without persisting anything.
func RequestQuote(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload quotePayload
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

		breakdown, err := quotes.Calculate(quotes.Input{
			Mode:           mode,
			Tier:           tier,
			Country:        country,
			Currency:       currency,
			IncludeDeposit: payload.IncludeDeposit,
			MaxBid:         payload.MaxBid,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, breakdown)
	}
}
