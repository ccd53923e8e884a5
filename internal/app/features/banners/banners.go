// internal/app/features/banners/banners.go
package banners

import (
	"context"
	"net/http"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/paging"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var requiredFields = []inputval.Required{
	{Key: "image", Label: "Image"},
	{Key: "heading", Label: "Heading"},
}

// List returns one page of banners in display order. Anonymous callers
// see only active slides.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, authed := auth.CurrentUser(r)
	p := paging.Parse(r)

	items, total, err := h.Store.List(ctx, !authed, p.Skip(), int64(p.Limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list banners", err, "Failed to load banners")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

// Create stores a new banner.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var banner models.Banner
	var raw map[string]any
	if err := shared.DecodeBody(r, &banner, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode banner body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	// New content is visible unless the request says otherwise.
	if _, ok := raw["is_active"]; !ok {
		banner.IsActive = true
	}

	now := time.Now().UTC()
	banner.ID = primitive.NewObjectID()
	banner.CreatedAt = now
	banner.UpdatedAt = now
	if claims, ok := auth.CurrentUser(r); ok {
		banner.CreatedBy = claims.Email
		banner.UpdatedBy = claims.Email
	}

	if err := h.Store.Insert(ctx, banner); err != nil {
		h.ErrLog.LogServerError(w, r, "insert banner", err, "Failed to create banner")
		return
	}
	respond.Created(w, banner)
}

// Update merges the supplied fields into one banner.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Banner not found")
		return
	}

	var patch models.BannerPatch
	if err := shared.DecodeBody(r, &patch, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode banner patch", err, "Invalid request body")
		return
	}
	set, err := content.SetFields(patch)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build banner update", err, "Failed to update banner")
		return
	}
	if len(set) == 0 {
		respond.Fail(w, http.StatusBadRequest, "No fields to update")
		return
	}
	set["updated_at"] = time.Now().UTC()
	if claims, ok := auth.CurrentUser(r); ok {
		set["updated_by"] = claims.Email
	}

	if err := h.Store.UpdateByID(ctx, id, set); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Banner not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update banner", err, "Failed to update banner")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload banner", err, "Failed to update banner")
		return
	}
	respond.OK(w, updated)
}

// Delete removes one banner.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Banner not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Banner not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete banner", err, "Failed to delete banner")
		return
	}
	respond.OKMessage(w, "Banner deleted successfully")
}
