// Package headlines fetches top news headlines from the NewsAPI REST service.
// The adapter is deliberately forgiving: a missing key, a transport failure,
// or a malformed response all yield an empty slice so the generation pipeline
// can record a skip instead of aborting the batch.
package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"newsradar/internal/domain/entity"
)

const defaultBaseURL = "https://newsapi.org/v2/top-headlines"

// Headlines originate from a single market for now.
const country = "us"

// Client calls the NewsAPI top-headlines endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a NewsAPI client. The free NewsAPI tier allows a small
// daily quota, so outbound calls are rate limited client-side.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiResponse mirrors the top-headlines payload shape.
type apiResponse struct {
	Status   string       `json:"status"`
	Articles []apiArticle `json:"articles"`
}

type apiArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// TopHeadlines returns up to count headlines for the category. Failures are
// logged and reported as an empty slice, never as an error.
func (c *Client) TopHeadlines(ctx context.Context, category entity.Category, count int) []entity.Headline {
	if !c.keyConfigured() {
		slog.Warn("NewsAPI key not configured, returning sample headline",
			slog.String("category", category.String()))
		return sampleHeadlines(category)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		slog.Warn("headline fetch aborted waiting for rate limit", slog.Any("error", err))
		return nil
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, url.Values{
		"category": {category.String()},
		"pageSize": {strconv.Itoa(count)},
		"country":  {country},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		slog.Error("failed to build headline request", slog.Any("error", err))
		return nil
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("headline fetch failed",
			slog.String("category", category.String()),
			slog.Any("error", err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Error("headline fetch returned non-OK status",
			slog.String("category", category.String()),
			slog.Int("status", resp.StatusCode))
		return nil
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Error("failed to decode headline response", slog.Any("error", err))
		return nil
	}

	headlines := make([]entity.Headline, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		h := entity.Headline{
			Title:       a.Title,
			Description: a.Description,
			SourceName:  a.Source.Name,
			URL:         a.URL,
		}
		if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			h.PublishedAt = ts
		}
		headlines = append(headlines, h)
	}

	slog.Debug("fetched headlines",
		slog.String("category", category.String()),
		slog.Int("count", len(headlines)))
	return headlines
}

func (c *Client) keyConfigured() bool {
	return c.apiKey != "" && !strings.HasSuffix(c.apiKey, "_placeholder")
}

// sampleHeadlines lets the pipeline run end to end in development
// environments that have no NewsAPI key.
func sampleHeadlines(category entity.Category) []entity.Headline {
	return []entity.Headline{{
		Title:       fmt.Sprintf("This is a sample title for %s", category),
		Description: fmt.Sprintf("This is a sample description for an article about %s.", category),
		SourceName:  "Sample News",
		URL:         "#",
		PublishedAt: time.Now().UTC(),
	}}
}
