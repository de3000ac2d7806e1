package payments

import (
	"context"
	"io"
	"testing"

	"github.com/souldevsoul/majaz-sub001/pkg/config"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), config.PaymentsConfig{}, testLogger())
	if err == nil {
		t.Fatal("expected missing api key error")
	}
}

func TestNewClientRejectsMismatchedKey(t *testing.T) {
	cfg := config.PaymentsConfig{StripeAPIKey: "sk_live_abc", StripeEnv: "test"}
	if _, err := NewClient(context.Background(), cfg, testLogger()); err == nil {
		t.Fatal("expected key/env mismatch error")
	}
}

func TestNewClientNormalizesEnvironment(t *testing.T) {
	cfg := config.PaymentsConfig{StripeAPIKey: "sk_test_abc", StripeEnv: " Test "}
	client, err := NewClient(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("unexpected environment %q", client.Environment())
	}
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	cfg := config.PaymentsConfig{StripeAPIKey: "sk_test_abc"}
	client, err := NewClient(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, gotErr := client.CreatePaymentIntent(context.Background(), 0, "AED", "fee")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}
