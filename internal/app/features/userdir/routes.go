// internal/app/features/userdir/routes.go
package userdir

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)                  // mounted under /users
	r.Get("/{userID}", h.Get)
	r.Get("/{userID}/posts", h.Posts)
	return r
}
