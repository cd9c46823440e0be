// Package images searches stock photos on the Pexels API for article covers.
// Like the headline adapter it degrades to an empty result on any failure;
// the pipeline substitutes a placeholder cover image in that case.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"newsradar/internal/domain/entity"
)

const defaultBaseURL = "https://api.pexels.com/v1/search"

// Keys left at the documented placeholder value are treated as unset.
const placeholderKey = "your_pexels_key_here"

// Client calls the Pexels photo search endpoint.
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

// NewClient creates a Pexels client with a bounded request timeout and a
// client-side rate limit.
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

type searchResponse struct {
	Photos []photo `json:"photos"`
}

type photo struct {
	Photographer string `json:"photographer"`
	Src          struct {
		Large    string `json:"large"`
		Original string `json:"original"`
	} `json:"src"`
}

// Search returns up to count candidate images for the query. Failures are
// logged and reported as an empty slice, never as an error.
func (c *Client) Search(ctx context.Context, query string, count int) []entity.ImageResult {
	if c.apiKey == "" || c.apiKey == placeholderKey {
		slog.Warn("Pexels API key not configured, placeholder cover will be used")
		return nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		slog.Warn("image search aborted waiting for rate limit", slog.Any("error", err))
		return nil
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, url.Values{
		"query":    {query},
		"per_page": {strconv.Itoa(count)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		slog.Error("failed to build image search request", slog.Any("error", err))
		return nil
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("image search failed",
			slog.String("query", query),
			slog.Any("error", err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Error("image search returned non-OK status",
			slog.String("query", query),
			slog.Int("status", resp.StatusCode))
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Error("failed to decode image search response", slog.Any("error", err))
		return nil
	}

	results := make([]entity.ImageResult, 0, len(payload.Photos))
	for _, p := range payload.Photos {
		if p.Src.Large == "" {
			continue
		}
		results = append(results, entity.ImageResult{
			URL:          p.Src.Large,
			OriginalURL:  p.Src.Original,
			Photographer: p.Photographer,
		})
	}

	slog.Debug("image search completed",
		slog.String("query", query),
		slog.Int("count", len(results)))
	return results
}
