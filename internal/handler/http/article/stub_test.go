package article

import (
	"context"
	"time"

	"newsradar/internal/domain/entity"
	"newsradar/internal/infra/writer"
)

// stubRepo is a map-backed ArticleRepository for handler tests.
type stubRepo struct {
	articles map[string]*entity.Article
	getErr   error
	listErr  error
	deleted  []string
	updated  *entity.Article
}

func newStubRepo(articles ...*entity.Article) *stubRepo {
	r := &stubRepo{articles: map[string]*entity.Article{}}
	for _, a := range articles {
		r.articles[a.ID] = a
	}
	return r
}

func (r *stubRepo) Save(_ context.Context, a *entity.Article) error {
	r.articles[a.ID] = a
	return nil
}

func (r *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if _, ok := r.articles[a.ID]; !ok {
		return entity.ErrNotFound
	}
	r.articles[a.ID] = a
	r.updated = a
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	delete(r.articles, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.articles[id], nil
}

func (r *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, a := range r.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListByCategory(_ context.Context, category entity.Category, limit int) ([]*entity.Article, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Article
	for _, a := range r.articles {
		if a.Category == category && a.Published && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubRepo) List(_ context.Context, includeUnpublished bool, limit int) ([]*entity.Article, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Article
	for _, a := range r.articles {
		if (includeUnpublished || a.Published) && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubRepo) ExistsBySourceHeadline(_ context.Context, headline string) (bool, error) {
	for _, a := range r.articles {
		if a.SourceHeadline == headline {
			return true, nil
		}
	}
	return false, nil
}

// stubWriter fulfils just enough of writer.Writer for Enhance tests.
type stubWriter struct {
	enhanced   writer.Enhanced
	enhanceErr error
}

func (w *stubWriter) Generate(context.Context, writer.Input) (*writer.Draft, error) {
	return nil, nil
}

func (w *stubWriter) Enhance(context.Context, writer.EnhanceInput) (*writer.Enhanced, error) {
	if w.enhanceErr != nil {
		return nil, w.enhanceErr
	}
	out := w.enhanced
	return &out, nil
}

func testArticle(id, slug string, published bool) *entity.Article {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID:              id,
		Title:           "Quantum Chip Breakthrough",
		Slug:            slug,
		SourceHeadline:  "Quantum chip announced",
		Category:        entity.CategoryTech,
		Content:         "<p>body</p>",
		MetaDescription: "A quantum chip breakthrough.",
		CoverImage:      "https://images.example.com/chip.jpeg",
		Author:          entity.DefaultAuthor,
		AffiliateLink:   "https://example.com/tech-gadgets?ref=ainews",
		Published:       published,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
