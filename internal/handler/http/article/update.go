package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsradar/internal/domain/entity"
	"newsradar/internal/handler/http/pathutil"
	"newsradar/internal/handler/http/respond"
	artUC "newsradar/internal/usecase/article"
)

// UpdateHandler serves PUT /admin/articles/{id}. Only fields present in the
// request body are changed; a title change re-derives the slug.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title           *string `json:"title"`
		Content         *string `json:"content"`
		MetaDescription *string `json:"metaDescription"`
		CoverImage      *string `json:"coverImage"`
		Category        *string `json:"category"`
		AffiliateLink   *string `json:"affiliateLink"`
		Published       *bool   `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:              id,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		CoverImage:      req.CoverImage,
		Category:        req.Category,
		AffiliateLink:   req.AffiliateLink,
		Published:       req.Published,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			code = http.StatusNotFound
		case errors.Is(err, artUC.ErrInvalidArticleID),
			errors.Is(err, entity.ErrInvalidCategory),
			errors.As(err, &vErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, FromEntity(art))
}
