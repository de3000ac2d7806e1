package controllers

import (
	"net/http"
	"strings"

	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/internal/reports"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

// RequestReport delivers the latest generated report for a request in the
// requested language and format. Defaults to English HTML.
func RequestReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		requestID, err := requestIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		language := enums.ReportLanguageEN
		if raw := strings.TrimSpace(r.URL.Query().Get("language")); raw != "" {
			language, err = enums.ParseReportLanguage(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report language"))
				return
			}
		}

		format := enums.ReportFormatHTML
		if raw := strings.TrimSpace(r.URL.Query().Get("format")); raw != "" {
			format, err = enums.ParseReportFormat(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report format"))
				return
			}
		}

		delivery, err := svc.Deliver(ctx, middleware.ActorFromContext(ctx), requestID, language, format)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, delivery)
	}
}
