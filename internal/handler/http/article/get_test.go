package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	artUC "newsradar/internal/usecase/article"
)

func TestGetHandler(t *testing.T) {
	repo := newStubRepo(
		testArticle("a1", "quantum-chip-breakthrough", true),
		testArticle("a2", "hidden-draft", false),
	)
	h := GetHandler{&artUC.Service{Repo: repo}}

	t.Run("published article by slug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/quantum-chip-breakthrough", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var out DTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "a1", out.ID)
		assert.Equal(t, "quantum-chip-breakthrough", out.Slug)
		assert.Equal(t, "tech", out.Category)
		assert.True(t, out.Published)
	})

	t.Run("draft is hidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/hidden-draft", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown slug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/no-such-slug", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("nested path rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/a/b", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminGetHandler(t *testing.T) {
	repo := newStubRepo(testArticle("a2", "hidden-draft", false))
	h := AdminGetHandler{&artUC.Service{Repo: repo}}

	t.Run("draft visible to admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/articles/a2", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var out DTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "a2", out.ID)
		assert.False(t, out.Published)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/articles/missing", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
