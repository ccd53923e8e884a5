// internal/app/features/testimonials/testimonials.go
package testimonials

import (
	"context"
	"net/http"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/content"
	testimonialstore "github.com/brightharbor/schoolhub/internal/app/store/testimonials"
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
	{Key: "name", Label: "Name"},
	{Key: "quote", Label: "Quote"},
	{Key: "rating", Label: "Rating"},
}

// List returns one page of testimonials, newest first. Anonymous
// callers see only active entries. Supports a featured query param.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, authed := auth.CurrentUser(r)
	p := paging.Parse(r)

	f := testimonialstore.ListFilter{ActiveOnly: !authed}
	switch query.Get(r, "featured") {
	case "true":
		v := true
		f.Featured = &v
	case "false":
		v := false
		f.Featured = &v
	}

	items, total, err := h.Store.List(ctx, f, p.Skip(), int64(p.Limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list testimonials", err, "Failed to load testimonials")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

// Create stores a new testimonial.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var t models.Testimonial
	var raw map[string]any
	if err := shared.DecodeBody(r, &t, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode testimonial body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	// New content is visible unless the request says otherwise.
	if _, ok := raw["is_active"]; !ok {
		t.IsActive = true
	}
	if !inputval.RatingInRange(t.Rating) {
		respond.Fail(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if claims, ok := auth.CurrentUser(r); ok {
		t.CreatedBy = claims.Email
		t.UpdatedBy = claims.Email
	}

	if err := h.Store.Insert(ctx, t); err != nil {
		h.ErrLog.LogServerError(w, r, "insert testimonial", err, "Failed to create testimonial")
		return
	}
	respond.Created(w, t)
}

// Update merges the supplied fields into one testimonial.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Testimonial not found")
		return
	}

	var patch models.TestimonialPatch
	if err := shared.DecodeBody(r, &patch, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode testimonial patch", err, "Invalid request body")
		return
	}
	if patch.Rating != nil && !inputval.RatingInRange(*patch.Rating) {
		respond.Fail(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	set, err := content.SetFields(patch)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build testimonial update", err, "Failed to update testimonial")
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
			h.ErrLog.NotFound(w, "Testimonial not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update testimonial", err, "Failed to update testimonial")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload testimonial", err, "Failed to update testimonial")
		return
	}
	respond.OK(w, updated)
}

// Delete removes one testimonial.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Testimonial not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Testimonial not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete testimonial", err, "Failed to delete testimonial")
		return
	}
	respond.OKMessage(w, "Testimonial deleted successfully")
}
