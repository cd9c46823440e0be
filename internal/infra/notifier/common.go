package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"newsradar/internal/domain/entity"
)

// RateLimitError is a 429 from the webhook service with its retry hint.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// ClientError is a non-429 4xx: the payload or webhook URL is wrong, so a
// retry would fail identically.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string { return e.Message }

// ServerError is a 5xx from the webhook service.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// truncateText cuts text at maxLength, spending the tail on suffix when a
// cut was made.
func truncateText(text string, maxLength int, suffix string) string {
	if len(text) <= maxLength {
		return text
	}
	cut := maxLength - len(suffix)
	if cut < 0 {
		cut = 0
	}
	return text[:cut] + suffix
}

// extractRetryAfter reads the retry hint from a 429: the JSON retry_after
// field wins, then the Retry-After header, then a flat 5s.
func extractRetryAfter(resp *http.Response, body []byte) time.Duration {
	var hint struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(body, &hint); err == nil && hint.RetryAfter > 0 {
		return time.Duration(hint.RetryAfter * float64(time.Second))
	}
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 5 * time.Second
}

// webhookClient is the delivery machinery shared by the Slack and Discord
// notifiers: token-bucket pacing, response classification, and a short
// retry loop. The payload shape is the only thing that differs per service.
type webhookClient struct {
	service string
	url     string
	http    *http.Client
	limiter *RateLimiter
}

const (
	webhookMaxAttempts = 2
	webhookBaseDelay   = 5 * time.Second
)

// deliver sends one payload for article, waiting on the limiter first.
// 429 waits out the advertised retry_after, server and network errors back
// off linearly, other client errors fail immediately.
func (c *webhookClient) deliver(ctx context.Context, article *entity.Article, payload any) error {
	requestID := uuid.New().String()
	logger := slog.Default().With(
		slog.String("service", c.service),
		slog.String("request_id", requestID),
		slog.String("article_id", article.ID),
	)
	logger.Info("sending article notification", slog.String("slug", article.Slug))

	if err := c.limiter.Allow(ctx); err != nil {
		logger.Error("rate limiter wait failed", slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= webhookMaxAttempts; attempt++ {
		err := c.post(ctx, payload)
		if err == nil {
			logger.Info("notification delivered", slog.Int("attempt", attempt))
			return nil
		}
		lastErr = err

		var wait time.Duration
		var throttled *RateLimitError
		switch {
		case errors.As(err, &throttled):
			wait = throttled.RetryAfter
			logger.Warn("webhook throttled, backing off",
				slog.Duration("retry_after", wait),
				slog.Int("attempt", attempt))
		case retryableDelivery(err):
			if attempt == webhookMaxAttempts {
				break
			}
			wait = webhookBaseDelay * time.Duration(attempt)
			logger.Warn("webhook delivery failed, retrying",
				slog.Any("error", err),
				slog.Duration("delay", wait),
				slog.Int("attempt", attempt))
		default:
			logger.Error("webhook rejected payload", slog.Any("error", err))
			return err
		}
		if wait == 0 {
			continue
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return fmt.Errorf("notification backoff interrupted: %w", ctx.Err())
		}
	}

	logger.Error("notification abandoned",
		slog.Any("error", lastErr),
		slog.Int("max_attempts", webhookMaxAttempts))
	return fmt.Errorf("%s notification failed after %d attempts: %w", c.service, webhookMaxAttempts, lastErr)
}

// retryableDelivery treats server and transport errors as transient.
// ClientError is deterministic and RateLimitError has its own path.
func retryableDelivery(err error) bool {
	var clientErr *ClientError
	return !errors.As(err, &clientErr)
}

// post sends the payload once and classifies the response by status class.
func (c *webhookClient) post(ctx context.Context, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			Message:    c.service + " rate limit exceeded",
			RetryAfter: extractRetryAfter(resp, body),
		}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s webhook client error: %s", c.service, string(body)),
		}
	case resp.StatusCode >= 500:
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s webhook server error: %s", c.service, string(body)),
		}
	default:
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
}
