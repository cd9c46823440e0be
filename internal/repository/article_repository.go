// Package repository declares the persistence contracts the use case layer depends on.
package repository

import (
	"context"

	"newsradar/internal/domain/entity"
)

// ArticleRepository is the storage contract for articles. Two implementations
// exist: a Postgres document table and a flat-file JSON collection, selected
// at startup by configuration.
//
// Lookup methods return (nil, nil) when no article matches; only operational
// failures are reported as errors. Delete is idempotent: removing an absent
// ID is not an error. The store enforces no uniqueness on slug or
// source_headline; callers must not assume atomic dedup under concurrent
// writes.
type ArticleRepository interface {
	// Save persists a fully-populated article. ID and timestamps are set by
	// the caller before Save.
	Save(ctx context.Context, article *entity.Article) error
	// Update rewrites the full record for article.ID.
	// Returns entity.ErrNotFound if the ID is absent.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article with the given ID. Idempotent.
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// ListByCategory returns published articles in the category, newest first,
	// capped at limit.
	ListByCategory(ctx context.Context, category entity.Category, limit int) ([]*entity.Article, error)
	// List returns articles newest first, capped at limit. Unpublished drafts
	// are included only when includeUnpublished is true.
	List(ctx context.Context, includeUnpublished bool, limit int) ([]*entity.Article, error)
	// ExistsBySourceHeadline reports whether any article was generated from
	// the given original headline. Used for best-effort duplicate detection.
	ExistsBySourceHeadline(ctx context.Context, headline string) (bool, error)
}
