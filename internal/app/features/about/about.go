// internal/app/features/about/about.go

// Package about implements the about-page singleton endpoints. GET is
// public; PUT requires authentication. Stored HTML is sanitized.
package about

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	aboutstore "github.com/brightharbor/schoolhub/internal/app/store/about"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/htmlsanitize"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the about endpoints.
type Handler struct {
	Store  *aboutstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs an about Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  aboutstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// MountRoutes mounts the about routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Put("/", h.Save)
	})
}

var requiredFields = []inputval.Required{
	{Key: "title", Label: "Title"},
	{Key: "content", Label: "Content"},
}

// Get returns the about content, empty when never saved.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	about, err := h.Store.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load about content", err, "Failed to load about content")
		return
	}
	respond.OK(w, about)
}

// Save replaces the about content.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var about models.AboutContent
	var raw map[string]any
	if err := shared.DecodeBody(r, &about, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode about body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	about.Content = htmlsanitize.Sanitize(about.Content)
	if claims, ok := auth.CurrentUser(r); ok {
		about.UpdatedBy = claims.Email
	}

	stored, err := h.Store.Save(ctx, about)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save about content", err, "Failed to save about content")
		return
	}
	respond.OK(w, stored)
}
