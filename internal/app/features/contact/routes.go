// internal/app/features/contact/routes.go
package contact

import (
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the contact routes. Submission is public; the
// admin routes need a verified token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Submit)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/", h.List)
		r.Patch("/{id}", h.SetRead)
		r.Delete("/{id}", h.Delete)
	})
}
