package article

import (
	"errors"
	"net/http"
	"strconv"

	"newsradar/internal/domain/entity"
	"newsradar/internal/handler/http/pathutil"
	"newsradar/internal/handler/http/respond"
	artUC "newsradar/internal/usecase/article"
)

// maxListLimit caps the number of articles a single list request may return.
const maxListLimit = 100

// parseLimit reads the optional limit query parameter. Zero means "use the
// service default".
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	if limit > maxListLimit {
		return 0, errors.New("limit must be at most " + strconv.Itoa(maxListLimit))
	}
	return limit, nil
}

// ListHandler serves GET /articles: published articles, newest first.
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ListPublished(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

// CategoryListHandler serves GET /categories/{category}/articles: published
// articles in one category, newest first.
type CategoryListHandler struct{ Svc *artUC.Service }

func (h CategoryListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, err := pathutil.ExtractIDAction(r.URL.Path, "/categories/", "articles")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	category, err := entity.ParseCategory(raw)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ListByCategory(r.Context(), category, limit)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrInvalidCategory) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

// AdminListHandler serves GET /admin/articles: all articles including drafts.
type AdminListHandler struct{ Svc *artUC.Service }

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ListAll(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
