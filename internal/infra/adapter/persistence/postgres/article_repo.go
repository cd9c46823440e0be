// Package postgres provides the Postgres implementation of the article repository.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsradar/internal/domain/entity"
	"newsradar/internal/observability/metrics"
	"newsradar/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository using Postgres.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new Postgres-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, title, slug, source_headline, category, content,
meta_description, cover_image, author, affiliate_link, published, created_at, updated_at`

// observe records the query duration under the given operation label.
// Call as: defer observe("insert_article")().
func observe(operation string) func() {
	start := time.Now()
	return func() { metrics.RecordDBQuery(operation, time.Since(start)) }
}

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.SourceHeadline,
		&article.Category, &article.Content, &article.MetaDescription,
		&article.CoverImage, &article.Author, &article.AffiliateLink,
		&article.Published, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Save persists a new article record.
func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) error {
	defer observe("insert_article")()
	const query = `
INSERT INTO articles (id, title, slug, source_headline, category, content,
meta_description, cover_image, author, affiliate_link, published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.SourceHeadline,
		article.Category, article.Content, article.MetaDescription,
		article.CoverImage, article.Author, article.AffiliateLink,
		article.Published, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Update rewrites the full record for article.ID.
// Returns entity.ErrNotFound if no row matches.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer observe("update_article")()
	const query = `
UPDATE articles
SET title = $2, slug = $3, source_headline = $4, category = $5, content = $6,
    meta_description = $7, cover_image = $8, author = $9, affiliate_link = $10,
    published = $11, updated_at = $12
WHERE id = $1`

	res, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.SourceHeadline,
		article.Category, article.Content, article.MetaDescription,
		article.CoverImage, article.Author, article.AffiliateLink,
		article.Published, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the article with the given ID. Deleting an absent ID is a no-op.
func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	defer observe("delete_article")()
	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	defer observe("select_article")()
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	defer observe("select_article_by_slug")()
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1
LIMIT 1`

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return article, nil
}

// ListByCategory returns published articles in the category, newest first.
func (repo *ArticleRepo) ListByCategory(ctx context.Context, category entity.Category, limit int) ([]*entity.Article, error) {
	defer observe("select_articles_by_category")()
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE category = $1 AND published = TRUE
ORDER BY created_at DESC
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByCategory: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// List returns articles newest first, optionally including unpublished drafts.
func (repo *ArticleRepo) List(ctx context.Context, includeUnpublished bool, limit int) ([]*entity.Article, error) {
	defer observe("select_articles")()
	query := `
SELECT ` + articleColumns + `
FROM articles
`
	if !includeUnpublished {
		query += "WHERE published = TRUE\n"
	}
	query += `ORDER BY created_at DESC
LIMIT $1`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// ExistsBySourceHeadline reports whether any article originated from the headline.
func (repo *ArticleRepo) ExistsBySourceHeadline(ctx context.Context, headline string) (bool, error) {
	defer observe("exists_by_source_headline")()
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE source_headline = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, headline).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsBySourceHeadline: %w", err)
	}
	return exists, nil
}
