package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"newsradar/internal/resilience/circuitbreaker"
	"newsradar/internal/resilience/retry"
)

// OpenAI implements Writer using OpenAI's chat completion API.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
	metrics        MetricsRecorder
}

// NewOpenAI creates an OpenAI writer with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	cfg := LoadConfig()
	if cfg.Model == "" {
		cfg.Model = openai.GPT4o
	}

	slog.Info("Initialized OpenAI writer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:    retry.WriterAPIConfig(),
		config:         cfg,
		metrics:        NewPrometheusMetrics(),
	}
}

// Generate produces an article draft for the given headline.
func (o *OpenAI) Generate(ctx context.Context, in Input) (*Draft, error) {
	raw, err := o.complete(ctx, buildGeneratePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	draft, err := parseDraft(raw)
	if err != nil {
		o.metrics.RecordMalformed("openai")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	o.metrics.RecordContentLength(len(draft.Content))
	return draft, nil
}

// Enhance reworks an existing article body for SEO and readability.
func (o *OpenAI) Enhance(ctx context.Context, in EnhanceInput) (*Enhanced, error) {
	raw, err := o.complete(ctx, buildEnhancePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("Enhance: %w", err)
	}

	enhanced, err := parseEnhanced(raw)
	if err != nil {
		o.metrics.RecordMalformed("openai")
		return nil, fmt.Errorf("Enhance: %w", err)
	}

	return enhanced, nil
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doComplete(ctx, prompt)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
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
func (o *OpenAI) doComplete(ctx context.Context, prompt string) (string, error) {
	slog.InfoContext(ctx, "Starting article generation",
		slog.String("backend", "openai"))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})

	duration := time.Since(start)
	o.metrics.RecordDuration("openai", duration)

	if err != nil {
		slog.ErrorContext(ctx, "Article generation failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return "", fmt.Errorf("%w: empty response", ErrMalformedOutput)
	}

	slog.InfoContext(ctx, "Article generation completed",
		slog.Duration("duration", duration),
		slog.Int("response_length", len(resp.Choices[0].Message.Content)))

	return resp.Choices[0].Message.Content, nil
}
