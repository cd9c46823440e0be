// Package article provides the article management use cases backing the
// public and admin HTTP surfaces.
package article

import (
	"context"
	"fmt"
	"time"

	"newsradar/internal/domain/entity"
	"newsradar/internal/infra/writer"
	"newsradar/internal/pkg/slugify"
	"newsradar/internal/repository"
)

// defaultListLimit caps list queries when the caller does not specify one.
const defaultListLimit = 50

// UpdateInput represents the input parameters for updating an article.
// Nil fields are left unchanged; a title change re-derives the slug.
type UpdateInput struct {
	ID              string
	Title           *string
	Content         *string
	MetaDescription *string
	CoverImage      *string
	Category        *string
	AffiliateLink   *string
	Published       *bool
}

// Service provides article management use cases.
// The Writer is only needed for Enhance and may be nil otherwise.
type Service struct {
	Repo   repository.ArticleRepository
	Writer writer.Writer
}

// Get retrieves a single article by its ID, drafts included.
// Returns ErrInvalidArticleID for an empty ID and ErrArticleNotFound if absent.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetBySlug retrieves a published article by its slug for the public site.
// Drafts are hidden: an unpublished match reports ErrArticleNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	art, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if art == nil || !art.Published {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// ListPublished returns published articles, newest first.
func (s *Service) ListPublished(ctx context.Context, limit int) ([]*entity.Article, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	articles, err := s.Repo.List(ctx, false, limit)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return articles, nil
}

// ListAll returns all articles including drafts, newest first. Admin only.
func (s *Service) ListAll(ctx context.Context, limit int) ([]*entity.Article, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	articles, err := s.Repo.List(ctx, true, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByCategory returns published articles in a category, newest first.
func (s *Service) ListByCategory(ctx context.Context, category entity.Category, limit int) ([]*entity.Article, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	articles, err := s.Repo.ListByCategory(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

// Update merges the provided fields into an existing article and persists it.
// A title change re-derives the slug; UpdatedAt is always refreshed.
// Returns ErrArticleNotFound if the ID is absent and a ValidationError for
// invalid field values.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID == "" {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		slug := slugify.Make(*in.Title)
		if slug == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "yields an empty slug"}
		}
		art.Title = *in.Title
		art.Slug = slug
	}
	if in.Category != nil {
		category, err := entity.ParseCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		art.Category = category
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.MetaDescription != nil {
		art.MetaDescription = *in.MetaDescription
	}
	if in.CoverImage != nil {
		art.CoverImage = *in.CoverImage
	}
	if in.AffiliateLink != nil {
		art.AffiliateLink = *in.AffiliateLink
	}
	if in.Published != nil {
		art.Published = *in.Published
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID. Deleting an absent ID is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Enhance rewrites an existing article through the writer backend and
// persists the improved title, meta description, and content. The slug is
// re-derived from the new title.
func (s *Service) Enhance(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}
	if s.Writer == nil {
		return nil, fmt.Errorf("enhance article: no writer backend configured")
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	enhanced, err := s.Writer.Enhance(ctx, writer.EnhanceInput{
		Title:    art.Title,
		Content:  art.Content,
		Category: art.Category.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("enhance article: %w", err)
	}

	slug := slugify.Make(enhanced.SEOTitle)
	if slug == "" {
		return nil, fmt.Errorf("enhance article: enhanced title yields empty slug")
	}

	art.Title = enhanced.SEOTitle
	art.Slug = slug
	art.MetaDescription = enhanced.MetaDescription
	art.Content = enhanced.EnhancedContent
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update enhanced article: %w", err)
	}
	return art, nil
}
