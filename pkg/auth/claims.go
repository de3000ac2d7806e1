package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// AccessTokenClaims is the typed view of the identity provider's JWT. The
// service never mints these; it only verifies and reads them.
type AccessTokenClaims struct {
	UserID      uuid.UUID       `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Email       string          `json:"email,omitempty"`
	Role        enums.ActorRole `json:"role"`
	jwt.RegisteredClaims
}
