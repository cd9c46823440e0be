package article

import (
	"errors"
	"net/http"

	"newsradar/internal/handler/http/pathutil"
	"newsradar/internal/handler/http/respond"
	"newsradar/internal/infra/writer"
	artUC "newsradar/internal/usecase/article"
)

// EnhanceHandler serves POST /admin/articles/{id}/enhance: the article is run
// back through the writer backend and the improved version is persisted.
type EnhanceHandler struct{ Svc *artUC.Service }

func (h EnhanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractIDAction(r.URL.Path, "/admin/articles/", "enhance")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	art, err := h.Svc.Enhance(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, writer.ErrMalformedOutput):
			respond.AppOrSafeError(w, http.StatusBadGateway,
				respond.NewAppError(http.StatusBadGateway, "writer produced an unusable draft", err))
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, FromEntity(art))
}
