package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/config"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "majaz-test"}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	signed, err := MintAccessToken(cfg, time.Now(), time.Hour, AccessTokenClaims{
		UserID:      userID,
		DisplayName: "Amina",
		Email:       "amina@example.com",
		Role:        enums.ActorRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s got %s", userID, claims.UserID)
	}
	if claims.Role != enums.ActorRoleCustomer {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.DisplayName != "Amina" {
		t.Fatalf("unexpected display name %q", claims.DisplayName)
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	signed, err := MintAccessToken(config.JWTConfig{Secret: "test-secret", Issuer: "other"}, time.Now(), time.Hour, AccessTokenClaims{
		UserID: uuid.New(),
		Role:   enums.ActorRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(testJWTConfig(), signed); err == nil {
		t.Fatal("expected issuer mismatch error")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), time.Hour, AccessTokenClaims{
		UserID: uuid.New(),
		Role:   enums.ActorRoleOperator,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(testJWTConfig(), time.Now(), time.Hour, AccessTokenClaims{
		UserID: uuid.New(),
		Role:   enums.ActorRole("superuser"),
	})
	if err == nil {
		t.Fatal("expected role validation error")
	}
}
