package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsradar/internal/infra/writer"
	artUC "newsradar/internal/usecase/article"
)

func TestEnhanceHandler(t *testing.T) {
	enhanced := writer.Enhanced{
		SEOTitle:        "Quantum Chips Explained: What the Breakthrough Means",
		MetaDescription: "A clear look at the quantum chip breakthrough.",
		EnhancedContent: "<p>rewritten body</p>",
	}

	t.Run("rewrites and persists", func(t *testing.T) {
		repo := newStubRepo(testArticle("a1", "quantum-chip-breakthrough", true))
		h := EnhanceHandler{&artUC.Service{Repo: repo, Writer: &stubWriter{enhanced: enhanced}}}

		req := httptest.NewRequest(http.MethodPost, "/admin/articles/a1/enhance", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var out DTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, enhanced.SEOTitle, out.Title)
		assert.Equal(t, "quantum-chips-explained-what-the-breakthrough-means", out.Slug)
		assert.Equal(t, "<p>rewritten body</p>", out.Content)
		require.NotNil(t, repo.updated)
	})

	t.Run("unknown id", func(t *testing.T) {
		h := EnhanceHandler{&artUC.Service{Repo: newStubRepo(), Writer: &stubWriter{enhanced: enhanced}}}

		req := httptest.NewRequest(http.MethodPost, "/admin/articles/missing/enhance", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed model output", func(t *testing.T) {
		repo := newStubRepo(testArticle("a1", "quantum-chip-breakthrough", true))
		h := EnhanceHandler{&artUC.Service{Repo: repo, Writer: &stubWriter{enhanceErr: writer.ErrMalformedOutput}}}

		req := httptest.NewRequest(http.MethodPost, "/admin/articles/a1/enhance", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Nil(t, repo.updated)
	})

	t.Run("writer failure", func(t *testing.T) {
		repo := newStubRepo(testArticle("a1", "quantum-chip-breakthrough", true))
		h := EnhanceHandler{&artUC.Service{Repo: repo, Writer: &stubWriter{enhanceErr: errors.New("backend down")}}}

		req := httptest.NewRequest(http.MethodPost, "/admin/articles/a1/enhance", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing enhance suffix", func(t *testing.T) {
		h := EnhanceHandler{&artUC.Service{Repo: newStubRepo(), Writer: &stubWriter{enhanced: enhanced}}}

		req := httptest.NewRequest(http.MethodPost, "/admin/articles/a1", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
