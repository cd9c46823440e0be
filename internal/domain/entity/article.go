// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Category, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// DefaultAuthor is the author label attached to generated articles.
const DefaultAuthor = "NewsRadar Staff"

// Article represents a generated news article in the system.
// Content is an HTML body produced by the writer backend and is opaque to the store.
type Article struct {
	ID              string
	Title           string
	Slug            string
	SourceHeadline  string
	Category        Category
	Content         string
	MetaDescription string
	CoverImage      string
	Author          string
	AffiliateLink   string
	Published       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants every persisted article must satisfy:
// a non-empty ID and slug, a category drawn from the fixed set, and valid
// URLs on the optional link fields.
func (a *Article) Validate() error {
	if a.ID == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if a.Slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if err := a.Category.Validate(); err != nil {
		return err
	}
	// CoverImage and AffiliateLink are optional, but must be real URLs
	// when present.
	for _, link := range []string{a.CoverImage, a.AffiliateLink} {
		if link == "" {
			continue
		}
		if err := ValidateURL(link); err != nil {
			return err
		}
	}
	return nil
}
