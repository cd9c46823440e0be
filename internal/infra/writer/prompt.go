package writer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// buildGeneratePrompt constructs the article generation prompt. The template
// is fixed: a 400-word post, an SEO title distinct from the headline, HTML
// restricted to a small tag set, and the affiliate link woven in naturally.
func buildGeneratePrompt(in Input) string {
	return fmt.Sprintf(`Write a 400-word news blog post in a clear, engaging, and neutral tone.

Headline: %s
Summary: %s
Category: %s

Requirements:
1. Create a catchy SEO title (different from the headline, max 60 characters)
2. Write a compelling meta description (150 characters max)
3. Write the main article content in HTML format using <h2>, <p>, <strong>, and <em> tags
4. Include 3-4 paragraphs with proper structure:
   - Opening paragraph with key information
   - 2-3 body paragraphs expanding on details
   - Closing paragraph with conclusion or future outlook
5. Naturally incorporate a relevant product or service recommendation with this affiliate link: %s
6. Use engaging subheadings where appropriate
7. Make the content informative and reader-friendly
8. Ensure the content is original and not copied from the source

Format your response as JSON:
{
  "seoTitle": "SEO optimized title here",
  "metaDescription": "Brief compelling description here",
  "content": "Full HTML article content here"
}
`, in.Headline, in.Description, in.Category, in.AffiliateLink)
}

// buildEnhancePrompt constructs the prompt for reworking an existing article.
func buildEnhancePrompt(in EnhanceInput) string {
	return fmt.Sprintf(`Enhance this article for SEO and readability:

Title: %s
Category: %s
Content: %s

Requirements:
1. Create an SEO-optimized title (max 60 characters)
2. Generate a compelling meta description (max 150 characters)
3. Enhance the content with proper HTML formatting (<h2>, <p>, <strong>, <em>)
4. Add engaging subheadings if needed
5. Improve readability and flow
6. Ensure the content is well-structured and engaging

Format as JSON:
{
  "seoTitle": "SEO title here",
  "metaDescription": "Meta description here",
  "enhancedContent": "Enhanced HTML content here"
}
`, in.Title, in.Category, in.Content)
}

// stripFences removes a leading/trailing markdown code fence. Models often
// wrap JSON responses in ```json blocks despite instructions not to.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type draftPayload struct {
	SEOTitle        string `json:"seoTitle"`
	MetaDescription string `json:"metaDescription"`
	Content         string `json:"content"`
}

// parseDraft decodes a model response into a Draft, enforcing the schema:
// valid JSON with all three fields non-empty. Violations map to
// ErrMalformedOutput.
func parseDraft(raw string) (*Draft, error) {
	var p draftPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if p.SEOTitle == "" || p.MetaDescription == "" || p.Content == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrMalformedOutput)
	}
	return &Draft{
		SEOTitle:        p.SEOTitle,
		MetaDescription: p.MetaDescription,
		Content:         p.Content,
	}, nil
}

type enhancedPayload struct {
	SEOTitle        string `json:"seoTitle"`
	MetaDescription string `json:"metaDescription"`
	EnhancedContent string `json:"enhancedContent"`
}

// parseEnhanced decodes a model response into an Enhanced result under the
// same schema rules as parseDraft.
func parseEnhanced(raw string) (*Enhanced, error) {
	var p enhancedPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if p.SEOTitle == "" || p.MetaDescription == "" || p.EnhancedContent == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrMalformedOutput)
	}
	return &Enhanced{
		SEOTitle:        p.SEOTitle,
		MetaDescription: p.MetaDescription,
		EnhancedContent: p.EnhancedContent,
	}, nil
}
