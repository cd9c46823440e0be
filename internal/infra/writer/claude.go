package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"newsradar/internal/resilience/circuitbreaker"
	"newsradar/internal/resilience/retry"
)

// Claude implements Writer using Anthropic's Claude API. It wraps every call
// in retry logic and a circuit breaker; schema violations are never retried.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
	metrics        MetricsRecorder
}

// NewClaude creates a Claude writer with the given API key.
func NewClaude(apiKey string) *Claude {
	cfg := LoadConfig()
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5-20250929"
	}

	slog.Info("Initialized Claude writer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:    retry.WriterAPIConfig(),
		config:         cfg,
		metrics:        NewPrometheusMetrics(),
	}
}

// Generate produces an article draft for the given headline.
func (c *Claude) Generate(ctx context.Context, in Input) (*Draft, error) {
	raw, err := c.complete(ctx, buildGeneratePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	draft, err := parseDraft(raw)
	if err != nil {
		c.metrics.RecordMalformed("claude")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	c.metrics.RecordContentLength(len(draft.Content))
	return draft, nil
}

// Enhance reworks an existing article body for SEO and readability.
func (c *Claude) Enhance(ctx context.Context, in EnhanceInput) (*Enhanced, error) {
	raw, err := c.complete(ctx, buildEnhancePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("Enhance: %w", err)
	}

	enhanced, err := parseEnhanced(raw)
	if err != nil {
		c.metrics.RecordMalformed("claude")
		return nil, fmt.Errorf("Enhance: %w", err)
	}

	return enhanced, nil
}

// complete runs one prompt through retry and circuit breaker and returns the
// raw model text.
func (c *Claude) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doComplete(ctx, prompt)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", retryErr
	}

	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (c *Claude) doComplete(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "Starting article generation",
		slog.String("request_id", requestID),
		slog.String("backend", "claude"))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)
	c.metrics.RecordDuration("claude", duration)

	if err != nil {
		slog.ErrorContext(ctx, "Article generation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("%w: empty response", ErrMalformedOutput)
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("%w: unexpected response type", ErrMalformedOutput)
	}

	slog.InfoContext(ctx, "Article generation completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration),
		slog.Int("response_length", len(textBlock.Text)))

	return textBlock.Text, nil
}
