package generate

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"newsradar/internal/handler/http/respond"
	genUC "newsradar/internal/usecase/generate"
)

// CronHandler serves POST /cron: run the batch pipeline across every
// category. The caller authenticates with a shared bearer secret instead of
// an admin token so external schedulers can trigger it.
type CronHandler struct {
	Svc    *genUC.Service
	secret [32]byte
}

// NewCronHandler builds the handler around a pre-hashed shared secret.
func NewCronHandler(svc *genUC.Service, secret string) CronHandler {
	return CronHandler{Svc: svc, secret: sha256.Sum256([]byte(secret))}
}

type cronResponse struct {
	GeneratedCount int             `json:"generatedCount"`
	SkippedCount   int             `json:"skippedCount"`
	FailedCount    int             `json:"failedCount"`
	Outcomes       []genUC.Outcome `json:"outcomes"`
}

func (h CronHandler) authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return false
	}
	got := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(got[:], h.secret[:]) == 1
}

func (h CronHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// No pipeline work happens before the secret check.
	if !h.authorized(r) {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid cron secret"))
		return
	}

	summary, err := h.Svc.RunAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, cronResponse{
		GeneratedCount: summary.Generated,
		SkippedCount:   summary.Skipped,
		FailedCount:    summary.Failed,
		Outcomes:       summary.Outcomes,
	})
}

// Register wires the generation routes. Admin middleware guards the
// on-demand endpoint; the cron endpoint carries its own secret check.
func Register(mux *http.ServeMux, svc *genUC.Service, cronSecret string, admin func(http.Handler) http.Handler) {
	mux.Handle("POST /admin/generate", admin(Handler{svc}))
	mux.Handle("POST /cron", NewCronHandler(svc, cronSecret))
}
