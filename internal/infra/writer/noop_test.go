package writer

import (
	"context"
	"strings"
	"testing"

	"newsradar/internal/domain/entity"
)

func TestNoopGenerate(t *testing.T) {
	n := NewNoop()

	draft, err := n.Generate(context.Background(), Input{
		Headline:      "Local team wins title",
		Description:   "A dramatic final.",
		Category:      entity.CategorySports.String(),
		AffiliateLink: "https://partner.example.com/sports",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.SEOTitle == "" || draft.MetaDescription == "" || draft.Content == "" {
		t.Error("noop draft must populate all fields")
	}
	if !strings.Contains(draft.Content, "Local team wins title") {
		t.Errorf("content should embed the headline, got %q", draft.Content)
	}
}

func TestNoopEnhance(t *testing.T) {
	n := NewNoop()

	enhanced, err := n.Enhance(context.Background(), EnhanceInput{
		Title:    "Old title",
		Content:  "<p>Body</p>",
		Category: entity.CategoryTech.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if enhanced.EnhancedContent != "<p>Body</p>" {
		t.Errorf("noop enhance should pass content through, got %q", enhanced.EnhancedContent)
	}
	if enhanced.SEOTitle != "Old title" {
		t.Errorf("SEOTitle = %q", enhanced.SEOTitle)
	}
}
