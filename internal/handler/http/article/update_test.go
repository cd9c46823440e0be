package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	artUC "newsradar/internal/usecase/article"
)

func TestUpdateHandler(t *testing.T) {
	newHandler := func() (UpdateHandler, *stubRepo) {
		repo := newStubRepo(testArticle("a1", "quantum-chip-breakthrough", true))
		return UpdateHandler{&artUC.Service{Repo: repo}}, repo
	}

	t.Run("partial update re-slugs title", func(t *testing.T) {
		h, repo := newHandler()
		body := `{"title":"Brand New Title","published":false}`
		req := httptest.NewRequest(http.MethodPut, "/admin/articles/a1", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var out DTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "Brand New Title", out.Title)
		assert.Equal(t, "brand-new-title", out.Slug)
		assert.False(t, out.Published)
		// Untouched fields survive the merge.
		assert.Equal(t, "<p>body</p>", out.Content)

		require.NotNil(t, repo.updated)
		assert.Equal(t, "brand-new-title", repo.updated.Slug)
	})

	t.Run("unknown id", func(t *testing.T) {
		h, _ := newHandler()
		req := httptest.NewRequest(http.MethodPut, "/admin/articles/missing", strings.NewReader(`{"title":"X"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid category", func(t *testing.T) {
		h, _ := newHandler()
		req := httptest.NewRequest(http.MethodPut, "/admin/articles/a1", strings.NewReader(`{"category":"gardening"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty title", func(t *testing.T) {
		h, _ := newHandler()
		req := httptest.NewRequest(http.MethodPut, "/admin/articles/a1", strings.NewReader(`{"title":""}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newHandler()
		req := httptest.NewRequest(http.MethodPut, "/admin/articles/a1", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
