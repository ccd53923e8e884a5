// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the analytics routes. The beacon is public; the
// report needs a verified token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Track)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/", h.Report)
	})
}
