package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/api/responses"
	"github.com/souldevsoul/majaz-sub001/api/validators"
	"github.com/souldevsoul/majaz-sub001/internal/messages"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

type postMessagePayload struct {
	RequestID   string   `json:"requestId" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Attachments []string `json:"attachments,omitempty"`
}

// MessageCreate appends a message to a request's thread.
func MessageCreate(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messages service unavailable"))
			return
		}

		var payload postMessagePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		requestID, err := uuid.Parse(strings.TrimSpace(payload.RequestID))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request id"))
			return
		}

		message, err := svc.Post(ctx, middleware.ActorFromContext(ctx), messages.PostMessageInput{
			RequestID:   requestID,
			Content:     payload.Content,
			Attachments: types.StringList(payload.Attachments),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}

// MessageList returns a request's thread oldest first. Reading the thread
// marks the other party's messages as read.
func MessageList(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messages service unavailable"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("requestId"))
		if raw == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "requestId query parameter required"))
			return
		}
		requestID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request id"))
			return
		}

		thread, err := svc.List(ctx, middleware.ActorFromContext(ctx), requestID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, thread)
	}
}
