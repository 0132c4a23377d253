// internal/app/features/threads/routes.go
package threads

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create) // mounted under /threads
	return r
}
