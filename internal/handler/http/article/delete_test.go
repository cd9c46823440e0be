package article

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	artUC "newsradar/internal/usecase/article"
)

func TestDeleteHandler(t *testing.T) {
	repo := newStubRepo(testArticle("a1", "quantum-chip-breakthrough", true))
	h := DeleteHandler{&artUC.Service{Repo: repo}}

	t.Run("deletes existing article", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/articles/a1", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"a1"}, repo.deleted)
	})

	t.Run("absent id is still 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/articles/missing", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("empty id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/articles/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
