package writer

import (
	"context"
	"fmt"
)

// Noop is a writer that produces a deterministic canned draft. Useful for
// development and tests when no API key is available.
type Noop struct{}

// NewNoop creates a new Noop writer.
func NewNoop() *Noop {
	return &Noop{}
}

// Generate returns a fixed draft derived from the input headline.
func (n *Noop) Generate(_ context.Context, in Input) (*Draft, error) {
	return &Draft{
		SEOTitle:        fmt.Sprintf("%s Update", in.Category),
		MetaDescription: fmt.Sprintf("The latest %s news: %s", in.Category, in.Headline),
		Content: fmt.Sprintf("<h2>%s</h2><p>%s</p><p>Read more at <a href=%q>our partner</a>.</p>",
			in.Headline, in.Description, in.AffiliateLink),
	}, nil
}

// Enhance returns the input content unchanged with derived metadata.
func (n *Noop) Enhance(_ context.Context, in EnhanceInput) (*Enhanced, error) {
	return &Enhanced{
		SEOTitle:        in.Title,
		MetaDescription: fmt.Sprintf("An article about %s.", in.Category),
		EnhancedContent: in.Content,
	}, nil
}
