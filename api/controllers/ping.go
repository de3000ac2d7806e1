package controllers

import (
	"net/http"

	"github.com/souldevsoul/majaz-sub001/api/middleware"
	"github.com/souldevsoul/majaz-sub001/api/responses"
)

// Ping is a trivial reachability probe. The authed variant echoes the caller
// so clients can verify their token resolves to the right account.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"message": "pong"})
	}
}

func PingAuthed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFromContext(r.Context())
		responses.WriteSuccess(w, map[string]any{
			"message": "pong",
			"userId":  actor.ID,
			"role":    actor.Role,
		})
	}
}
