// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the auth routes. Login is public; the account
// routes require a verified token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/me", h.Me)
		r.Put("/profile", h.UpdateProfile)
		r.Put("/change-password", h.ChangePassword)
	})
}
