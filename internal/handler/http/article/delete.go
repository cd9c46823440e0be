package article

import (
	"net/http"

	"newsradar/internal/handler/http/pathutil"
	"newsradar/internal/handler/http/respond"
	artUC "newsradar/internal/usecase/article"
)

// DeleteHandler serves DELETE /admin/articles/{id}. Deleting an absent ID
// still returns 204.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
