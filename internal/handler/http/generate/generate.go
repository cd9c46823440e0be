// Package generate exposes the article generation pipeline over HTTP: an
// authenticated on-demand endpoint and the batch endpoint for external cron
// triggers.
package generate

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsradar/internal/domain/entity"
	articleHandler "newsradar/internal/handler/http/article"
	"newsradar/internal/handler/http/respond"
	genUC "newsradar/internal/usecase/generate"
)

// Handler serves POST /admin/generate: run the pipeline once for a single
// category, on demand.
type Handler struct{ Svc *genUC.Service }

type generateRequest struct {
	Category string `json:"category"`
}

type generateResponse struct {
	Status  genUC.Status        `json:"status"`
	Reason  string              `json:"reason,omitempty"`
	Article *articleHandler.DTO `json:"article,omitempty"`
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	// Reject bad categories before any external call is made.
	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	outcome, err := h.Svc.Run(r.Context(), category, genUC.Options{Scheduled: false})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrInvalidCategory) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	resp := generateResponse{Status: outcome.Status, Reason: outcome.Reason}
	switch outcome.Status {
	case genUC.StatusGenerated:
		dto := articleHandler.FromEntity(outcome.Article)
		resp.Article = &dto
		respond.JSON(w, http.StatusCreated, resp)
	case genUC.StatusSkipped:
		respond.JSON(w, http.StatusOK, resp)
	default:
		respond.JSON(w, http.StatusBadGateway, resp)
	}
}
