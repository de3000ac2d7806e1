package middleware

import (
	"context"

	"github.com/google/uuid"

	pkgauth "github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

type contextKey string

const (
	ctxUserID   contextKey = "user_id"
	ctxUserName contextKey = "user_name"
	ctxEmail    contextKey = "user_email"
	ctxRole     contextKey = "actor_role"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

// WithActor seeds the context with the authenticated actor's identity.
func WithActor(ctx context.Context, actor pkgauth.Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, actor.ID.String())
	ctx = context.WithValue(ctx, ctxUserName, actor.DisplayName)
	ctx = context.WithValue(ctx, ctxEmail, actor.Email)
	return context.WithValue(ctx, ctxRole, string(actor.Role))
}

// ActorFromContext rebuilds the actor seeded by the Auth middleware. The
// zero actor (Nil id) means the request was not authenticated.
func ActorFromContext(ctx context.Context) pkgauth.Actor {
	if ctx == nil {
		return pkgauth.Actor{}
	}
	actor := pkgauth.Actor{}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			actor.ID = id
		}
	}
	if v, ok := ctx.Value(ctxUserName).(string); ok {
		actor.DisplayName = v
	}
	if v, ok := ctx.Value(ctxEmail).(string); ok {
		actor.Email = v
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		actor.Role = enums.ActorRole(v)
	}
	return actor
}
