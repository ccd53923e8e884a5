// internal/app/features/banners/routes.go
package banners

import (
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the banner routes. GET is public; mutations need a
// verified token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
