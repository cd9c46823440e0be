// Package writer provides generative-text backends that turn a news headline
// into a full article draft. It includes adapters for Claude (Anthropic) and
// OpenAI APIs with reliability patterns, plus a deterministic noop backend for
// development. All backends share a fixed prompt template and a strict JSON
// response contract.
package writer

import (
	"context"
	"errors"
)

// ErrMalformedOutput reports that the backend responded but the payload did
// not satisfy the draft schema (not JSON, or a required field empty). It is
// never retried: the same prompt is overwhelmingly likely to fail the same way.
var ErrMalformedOutput = errors.New("writer: malformed model output")

// Input carries the source material for a new article draft.
type Input struct {
	Headline      string
	Description   string
	Category      string
	AffiliateLink string
}

// Draft is the structured result of a generation call. All fields are
// guaranteed non-empty by the adapters.
type Draft struct {
	SEOTitle        string
	MetaDescription string
	Content         string
}

// EnhanceInput carries an existing article body for SEO rework.
type EnhanceInput struct {
	Title    string
	Content  string
	Category string
}

// Enhanced is the structured result of an enhance call.
type Enhanced struct {
	SEOTitle        string
	MetaDescription string
	EnhancedContent string
}

// Writer generates article drafts from headlines and reworks existing
// article bodies.
type Writer interface {
	Generate(ctx context.Context, in Input) (*Draft, error)
	Enhance(ctx context.Context, in EnhanceInput) (*Enhanced, error)
}
