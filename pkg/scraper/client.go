package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/souldevsoul/majaz-sub001/pkg/config"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
)

const defaultTimeout = 45 * time.Second

var (
	errBaseURLRequired = errors.New("scraper base url is required")
	errAPIKeyRequired  = errors.New("scraper api key is required")
)

// Result is the raw scrape output for one listing URL.
type Result struct {
	HTML     string   `json:"html"`
	Markdown string   `json:"markdown"`
	Metadata Metadata `json:"metadata"`
}

// Metadata carries the extracted page attributes the parser consumes.
type Metadata struct {
	Title     string   `json:"title"`
	SourceURL string   `json:"sourceURL"`
	Images    []string `json:"images"`
}

// Fetcher is the surface the scraping ingestion service depends on.
type Fetcher interface {
	Scrape(ctx context.Context, url string) (*Result, error)
}

// Client calls the scraping-proxy API over HTTP with a bounded timeout.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *logger.Logger
}

// NewClient validates the scraping-proxy credentials and builds the client.
func NewClient(cfg config.ScraperConfig, logg *logger.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logg,
	}, nil
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool    `json:"success"`
	Data    *Result `json:"data"`
	Error   string  `json:"error"`
}

// Scrape fetches the raw page for url through the proxy. Timeouts and proxy
// failures surface as retryable upstream errors.
func (c *Client) Scrape(ctx context.Context, url string) (*Result, error) {
	if strings.TrimSpace(url) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "listing url required")
	}

	body, err := json.Marshal(scrapeRequest{URL: url, Formats: []string{"html", "markdown"}})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode scrape request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build scrape request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	if c.logger != nil {
		c.logger.Info(c.logger.WithFields(ctx, map[string]any{
			"operation": "scrape",
			"url":       url,
		}), "scraper request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "scrape proxy unreachable")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read scrape response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("scrape proxy returned %d", resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	var decoded scrapeResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode scrape response")
	}
	if !decoded.Success || decoded.Data == nil {
		msg := decoded.Error
		if msg == "" {
			msg = "scrape failed without detail"
		}
		return nil, pkgerrors.New(pkgerrors.CodeDependency, msg)
	}

	return decoded.Data, nil
}
