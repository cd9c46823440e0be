package article

import (
	"net/http"

	artUC "newsradar/internal/usecase/article"
)

// Register wires the article routes into the given mux. Admin routes are
// wrapped with the provided middleware, which is expected to enforce
// authentication.
func Register(mux *http.ServeMux, svc *artUC.Service, admin func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", ListHandler{svc})
	mux.Handle("GET /articles/", GetHandler{svc})
	mux.Handle("GET /categories/", CategoryListHandler{svc})

	mux.Handle("GET /admin/articles", admin(AdminListHandler{svc}))
	mux.Handle("GET /admin/articles/", admin(AdminGetHandler{svc}))
	mux.Handle("PUT /admin/articles/", admin(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/articles/", admin(DeleteHandler{svc}))
	mux.Handle("POST /admin/articles/", admin(EnhanceHandler{svc}))
}
