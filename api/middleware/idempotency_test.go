package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type memoryStore struct {
	values map[string]string
	setTTL time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *memoryStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = value.(string)
	s.setTTL = ttl
	return true, nil
}

func (s *memoryStore) IdempotencyKey(scope, id string) string {
	return "idem:" + scope + ":" + id
}

func TestRouteTTLMatching(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   time.Duration
		ok     bool
	}{
		{http.MethodPost, "/api/v1/requests", paymentIdempotencyTTL, true},
		{http.MethodPost, "/api/v1/requests/", paymentIdempotencyTTL, true},
		{http.MethodPost, "/api/v1/messages", defaultIdempotencyTTL, true},
		{http.MethodPost, "/api/v1/ops/requests/0c6b7a9e-4242-4f11-9eb6-6a3ce2e9d6a1/scrape", defaultIdempotencyTTL, true},
		{http.MethodGet, "/api/v1/requests", 0, false},
		{http.MethodPost, "/api/v1/requests/quote", 0, false},
		{http.MethodPost, "/api/v1/requests/0c6b7a9e-4242-4f11-9eb6-6a3ce2e9d6a1/report", 0, false},
	}

	for _, tc := range cases {
		ttl, ok := routeTTL(tc.method, tc.path)
		if ok != tc.ok || ttl != tc.want {
			t.Fatalf("%s %s: got (%v,%v) want (%v,%v)", tc.method, tc.path, ttl, ok, tc.want, tc.ok)
		}
	}
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	store := newMemoryStore()
	handler := Idempotency(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without idempotency key")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := Idempotency(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"r1"}}`))
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(`{"mode":"remote_assessment"}`))
		req.Header.Set("Idempotency-Key", "key-1")
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		return resp
	}

	first := send()
	second := send()

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("expected both responses 201, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("replayed body should match original")
	}
	if store.setTTL != paymentIdempotencyTTL {
		t.Fatalf("expected 7d TTL for request creation, got %v", store.setTTL)
	}
}

func TestIdempotencyRejectsReusedKeyWithDifferentBody(t *testing.T) {
	store := newMemoryStore()
	handler := Idempotency(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	first := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(`{"content":"a"}`))
	first.Header.Set("Idempotency-Key", "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(`{"content":"b"}`))
	second.Header.Set("Idempotency-Key", "key-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, second)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestIdempotencySkipsUnlistedRoutes(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := Idempotency(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if calls != 1 {
		t.Fatal("expected handler to run for unlisted route")
	}
	if len(store.values) != 0 {
		t.Fatal("nothing should be stored for unlisted routes")
	}
}
