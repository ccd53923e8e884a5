// internal/app/features/media/media.go
package media

import (
	"context"
	"net/http"
	"strconv"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// probePages caps the total-count walk. Libraries larger than
	// probePages pages report the count seen so far and stay
	// approximate.
	probePages = 10
)

// Handler owns the media library endpoints.
type Handler struct {
	Lib    Library
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a media Handler.
func NewHandler(lib Library, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Lib:    lib,
		Log:    logger,
		ErrLog: errLog,
	}
}

// MountRoutes mounts the media routes. All of them need a verified
// token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(auth.RequireAuth)
	r.Get("/", h.List)
	r.Delete("/", h.Delete)
}

// List returns one cursor page of assets. The total in the pagination
// block is counted by walking the listing from the front, so it stays
// stable as the caller advances the cursor; past probePages pages it is
// approximate.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "media library list")
	defer cancel()

	limit := defaultPageSize
	if v := query.Get(r, "limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
			if limit > maxPageSize {
				limit = maxPageSize
			}
		}
	}
	cursor := query.Get(r, "cursor")

	page, err := h.Lib.List(ctx, cursor, limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list media assets", err, "Failed to load media library")
		return
	}

	total, err := h.approxTotal(ctx, limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count media assets", err, "Failed to load media library")
		return
	}

	respond.CursorPage(w, page.Assets, respond.CursorPagination{
		NextCursor: page.NextCursor,
		HasMore:    page.NextCursor != "",
		Total:      total,
		Pages:      (total + limit - 1) / limit,
		Limit:      limit,
	})
}

// approxTotal counts the library by walking up to probePages cursor
// pages from the front of the listing.
func (h *Handler) approxTotal(ctx context.Context, limit int) (int, error) {
	total := 0
	cursor := ""
	for i := 0; i < probePages; i++ {
		page, err := h.Lib.List(ctx, cursor, limit)
		if err != nil {
			return 0, err
		}
		total += len(page.Assets)
		cursor = page.NextCursor
		if cursor == "" {
			break
		}
	}
	return total, nil
}

type deleteRequest struct {
	PublicIDs []string `json:"public_ids"`
}

// Delete removes the given assets from the upstream library.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req deleteRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode media delete body", err, "Invalid request body")
		return
	}
	if len(req.PublicIDs) == 0 {
		respond.Fail(w, http.StatusBadRequest, "public_ids is required")
		return
	}

	if err := h.Lib.Delete(ctx, req.PublicIDs); err != nil {
		h.ErrLog.LogServerError(w, r, "delete media assets", err, "Failed to delete media")
		return
	}
	respond.OKMessage(w, "Media deleted successfully")
}
