package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/souldevsoul/majaz-sub001/pkg/config"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(config.ScraperConfig{APIKey: "key"}, nil); err == nil {
		t.Fatal("expected base url error")
	}
	if _, err := NewClient(config.ScraperConfig{BaseURL: "http://proxy"}, nil); err == nil {
		t.Fatal("expected api key error")
	}
}

func TestScrapeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/scrape" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req scrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.URL != "https://dubizzle.com/car/123" {
			t.Fatalf("unexpected url %s", req.URL)
		}
		json.NewEncoder(w).Encode(scrapeResponse{
			Success: true,
			Data: &Result{
				HTML:     "<html>car</html>",
				Markdown: "# car",
				Metadata: Metadata{Title: "2019 Nissan Patrol", Images: []string{"https://img/1.jpg"}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(config.ScraperConfig{BaseURL: server.URL, APIKey: "key"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.Scrape(context.Background(), "https://dubizzle.com/car/123")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if result.Metadata.Title != "2019 Nissan Patrol" {
		t.Fatalf("unexpected title %q", result.Metadata.Title)
	}
	if len(result.Metadata.Images) != 1 {
		t.Fatalf("expected one image, got %d", len(result.Metadata.Images))
	}
}

func TestScrapeProxyFailureIsDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(config.ScraperConfig{BaseURL: server.URL, APIKey: "key"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, gotErr := client.Scrape(context.Background(), "https://dubizzle.com/car/123")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}

func TestScrapeTimeoutSurfacesRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := NewClient(config.ScraperConfig{BaseURL: server.URL, APIKey: "key", Timeout: 20 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, gotErr := client.Scrape(context.Background(), "https://dubizzle.com/car/123")
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
	if !pkgerrors.MetadataFor(typed.Code()).Retryable {
		t.Fatal("expected timeout to map to a retryable code")
	}
}

func TestScrapeRejectsEmptyURL(t *testing.T) {
	client, err := NewClient(config.ScraperConfig{BaseURL: "http://proxy", APIKey: "key"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, gotErr := client.Scrape(context.Background(), " ")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}
