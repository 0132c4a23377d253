// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the profile surface.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Update) // mounted under /profile
	return r
}
