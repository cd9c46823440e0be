package db

import "database/sql"

// MigrateUp creates the articles table and its supporting indexes.
// All statements are idempotent so repeated startup runs are safe.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id               TEXT PRIMARY KEY,
    title            TEXT NOT NULL,
    slug             TEXT NOT NULL,
    source_headline  TEXT NOT NULL DEFAULT '',
    category         VARCHAR(20) NOT NULL,
    content          TEXT NOT NULL,
    meta_description TEXT NOT NULL DEFAULT '',
    cover_image      TEXT NOT NULL DEFAULT '',
    author           TEXT NOT NULL DEFAULT '',
    affiliate_link   TEXT NOT NULL DEFAULT '',
    published        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Public pages read published articles newest-first.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// Slug lookups on the article detail page.
		`CREATE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug)`,
		// Category pages filter by category + published.
		`CREATE INDEX IF NOT EXISTS idx_articles_category_published ON articles(category, published)`,
		// Duplicate check is an equality probe on the original headline.
		`CREATE INDEX IF NOT EXISTS idx_articles_source_headline ON articles(source_headline)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
