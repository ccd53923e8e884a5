// internal/app/features/settings/settings.go

// Package settings implements the site-settings singleton endpoints.
// GET is public (the site footer needs it); PUT requires
// authentication.
package settings

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	settingsstore "github.com/brightharbor/schoolhub/internal/app/store/settings"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the settings endpoints.
type Handler struct {
	Store  *settingsstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a settings Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  settingsstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// MountRoutes mounts the settings routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Put("/", h.Save)
	})
}

// Get returns the site settings, defaults when never saved.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	settings, err := h.Store.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load site settings", err, "Failed to load settings")
		return
	}
	respond.OK(w, settings)
}

// Save replaces the site settings.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var settings models.SiteSettings
	if err := shared.DecodeBody(r, &settings, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode settings body", err, "Invalid request body")
		return
	}
	if settings.SiteName == "" {
		respond.Fail(w, http.StatusBadRequest, "Site name is required")
		return
	}
	if settings.Email != "" && !inputval.IsValidEmail(settings.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if claims, ok := auth.CurrentUser(r); ok {
		settings.UpdatedBy = claims.Email
	}

	stored, err := h.Store.Save(ctx, settings)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save site settings", err, "Failed to save settings")
		return
	}
	respond.OK(w, stored)
}
