// Package jsonfile provides a flat-file JSON implementation of the article
// repository for deployments without a database. Every write serializes the
// whole collection back to disk; a mutex guards the read-modify-write cycle.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"newsradar/internal/domain/entity"
	"newsradar/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository against a single JSON file.
type ArticleRepo struct {
	path string
	mu   sync.Mutex
}

// NewArticleRepo creates a flat-file repository rooted at path.
// The file and its parent directory are created on first use.
func NewArticleRepo(path string) (repository.ArticleRepository, error) {
	repo := &ArticleRepo{path: path}
	if err := repo.ensureFile(); err != nil {
		return nil, fmt.Errorf("init json store: %w", err)
	}
	return repo, nil
}

func (repo *ArticleRepo) ensureFile() error {
	if _, err := os.Stat(repo.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(repo.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(repo.path, []byte("[]"), 0o644)
}

// storedArticle is the on-disk representation. Field names match the
// historical articles.json layout so existing data files keep loading.
type storedArticle struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	SourceHeadline  string `json:"sourceHeadline,omitempty"`
	Category        string `json:"category"`
	Content         string `json:"content"`
	MetaDescription string `json:"metaDescription"`
	CoverImage      string `json:"coverImage"`
	Author          string `json:"author"`
	AffiliateLink   string `json:"affiliateLink"`
	Published       bool   `json:"published"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func toStored(a *entity.Article) storedArticle {
	return storedArticle{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		SourceHeadline:  a.SourceHeadline,
		Category:        string(a.Category),
		Content:         a.Content,
		MetaDescription: a.MetaDescription,
		CoverImage:      a.CoverImage,
		Author:          a.Author,
		AffiliateLink:   a.AffiliateLink,
		Published:       a.Published,
		CreatedAt:       a.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:       a.UpdatedAt.UTC().Format(timeLayout),
	}
}

// load reads the whole collection. Caller must hold repo.mu.
func (repo *ArticleRepo) load() ([]storedArticle, error) {
	if err := repo.ensureFile(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(repo.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", repo.path, err)
	}
	var stored []storedArticle
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repo.path, err)
	}
	return stored, nil
}

// store rewrites the whole collection. Caller must hold repo.mu.
// The write goes through a temp file + rename so a crash mid-write
// cannot leave a truncated collection behind.
func (repo *ArticleRepo) store(articles []storedArticle) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode articles: %w", err)
	}
	tmp := repo.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, repo.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Save persists a new article record.
func (repo *ArticleRepo) Save(_ context.Context, article *entity.Article) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	stored = append(stored, toStored(article))
	if err := repo.store(stored); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Update rewrites the record for article.ID.
// Returns entity.ErrNotFound if the ID is absent.
func (repo *ArticleRepo) Update(_ context.Context, article *entity.Article) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	for i := range stored {
		if stored[i].ID == article.ID {
			stored[i] = toStored(article)
			if err := repo.store(stored); err != nil {
				return fmt.Errorf("Update: %w", err)
			}
			return nil
		}
	}
	return entity.ErrNotFound
}

// Delete removes the article with the given ID. Deleting an absent ID is a no-op.
func (repo *ArticleRepo) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	kept := stored[:0]
	for _, s := range stored {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(stored) {
		return nil
	}
	if err := repo.store(kept); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	for _, s := range stored {
		if s.ID == id {
			return fromStored(s)
		}
	}
	return nil, nil
}

func (repo *ArticleRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	for _, s := range stored {
		if s.Slug == slug {
			return fromStored(s)
		}
	}
	return nil, nil
}

// ListByCategory returns published articles in the category, newest first.
func (repo *ArticleRepo) ListByCategory(_ context.Context, category entity.Category, limit int) ([]*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	return repo.filter(stored, limit, func(s storedArticle) bool {
		return s.Category == string(category) && s.Published
	})
}

// List returns articles newest first, optionally including unpublished drafts.
func (repo *ArticleRepo) List(_ context.Context, includeUnpublished bool, limit int) ([]*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return repo.filter(stored, limit, func(s storedArticle) bool {
		return includeUnpublished || s.Published
	})
}

// ExistsBySourceHeadline reports whether any article originated from the headline.
func (repo *ArticleRepo) ExistsBySourceHeadline(_ context.Context, headline string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.load()
	if err != nil {
		return false, fmt.Errorf("ExistsBySourceHeadline: %w", err)
	}
	for _, s := range stored {
		if s.SourceHeadline == headline {
			return true, nil
		}
	}
	return false, nil
}

func (repo *ArticleRepo) filter(stored []storedArticle, limit int, keep func(storedArticle) bool) ([]*entity.Article, error) {
	matched := make([]storedArticle, 0, len(stored))
	for _, s := range stored {
		if keep(s) {
			matched = append(matched, s)
		}
	}
	// createdAt strings are RFC3339, so lexicographic order is chronological.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	articles := make([]*entity.Article, 0, len(matched))
	for _, s := range matched {
		article, err := fromStored(s)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

var errBadTimestamp = errors.New("malformed article timestamp")
