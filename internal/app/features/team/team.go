// internal/app/features/team/team.go
package team

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
	{Key: "name", Label: "Name"},
	{Key: "photo", Label: "Photo"},
	{Key: "designation", Label: "Designation"},
}

// List returns one page of team members in display order. Anonymous
// callers see only active members.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, authed := auth.CurrentUser(r)
	p := paging.Parse(r)

	items, total, err := h.Store.List(ctx, !authed, p.Skip(), int64(p.Limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list team members", err, "Failed to load team members")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

// Create stores a new team member.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var member models.TeamMember
	var raw map[string]any
	if err := shared.DecodeBody(r, &member, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode team member body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	// New content is visible unless the request says otherwise.
	if _, ok := raw["is_active"]; !ok {
		member.IsActive = true
	}
	if member.Email != "" && !inputval.IsValidEmail(member.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	now := time.Now().UTC()
	member.ID = primitive.NewObjectID()
	member.CreatedAt = now
	member.UpdatedAt = now
	if claims, ok := auth.CurrentUser(r); ok {
		member.CreatedBy = claims.Email
		member.UpdatedBy = claims.Email
	}

	if err := h.Store.Insert(ctx, member); err != nil {
		h.ErrLog.LogServerError(w, r, "insert team member", err, "Failed to create team member")
		return
	}
	respond.Created(w, member)
}

// Update merges the supplied fields into one team member.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Team member not found")
		return
	}

	var patch models.TeamMemberPatch
	if err := shared.DecodeBody(r, &patch, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode team member patch", err, "Invalid request body")
		return
	}
	if patch.Email != nil && *patch.Email != "" && !inputval.IsValidEmail(*patch.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	set, err := content.SetFields(patch)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build team member update", err, "Failed to update team member")
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
			h.ErrLog.NotFound(w, "Team member not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update team member", err, "Failed to update team member")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload team member", err, "Failed to update team member")
		return
	}
	respond.OK(w, updated)
}

// Delete removes one team member.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Team member not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Team member not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete team member", err, "Failed to delete team member")
		return
	}
	respond.OKMessage(w, "Team member deleted successfully")
}
