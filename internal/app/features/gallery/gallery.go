// internal/app/features/gallery/gallery.go
package gallery

import (
	"context"
	"net/http"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/content"
	gallerystore "github.com/brightharbor/schoolhub/internal/app/store/gallery"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/paging"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var requiredFields = []inputval.Required{
	{Key: "url", Label: "URL"},
	{Key: "alt", Label: "Alt text"},
}

// List returns one page of gallery items in display order. Anonymous
// callers see only active items. Supports a category query param.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, authed := auth.CurrentUser(r)
	p := paging.Parse(r)

	f := gallerystore.ListFilter{
		Category:   query.Get(r, "category"),
		ActiveOnly: !authed,
	}

	items, total, err := h.Store.List(ctx, f, p.Skip(), int64(p.Limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list gallery items", err, "Failed to load gallery")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

// Create stores a new gallery item.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var item models.GalleryItem
	var raw map[string]any
	if err := shared.DecodeBody(r, &item, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode gallery body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	// New content is visible unless the request says otherwise.
	if _, ok := raw["is_active"]; !ok {
		item.IsActive = true
	}

	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now
	if claims, ok := auth.CurrentUser(r); ok {
		item.CreatedBy = claims.Email
		item.UpdatedBy = claims.Email
	}

	if err := h.Store.Insert(ctx, item); err != nil {
		h.ErrLog.LogServerError(w, r, "insert gallery item", err, "Failed to create gallery item")
		return
	}
	respond.Created(w, item)
}

// Update merges the supplied fields into one gallery item.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Gallery item not found")
		return
	}

	var patch models.GalleryItemPatch
	if err := shared.DecodeBody(r, &patch, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode gallery patch", err, "Invalid request body")
		return
	}

	set, err := content.SetFields(patch)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build gallery update", err, "Failed to update gallery item")
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
			h.ErrLog.NotFound(w, "Gallery item not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update gallery item", err, "Failed to update gallery item")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload gallery item", err, "Failed to update gallery item")
		return
	}
	respond.OK(w, updated)
}

// Delete removes one gallery item.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Gallery item not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Gallery item not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete gallery item", err, "Failed to delete gallery item")
		return
	}
	respond.OKMessage(w, "Gallery item deleted successfully")
}
