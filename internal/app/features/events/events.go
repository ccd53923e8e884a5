// internal/app/features/events/events.go
package events

import (
	"context"
	"net/http"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/content"
	eventstore "github.com/brightharbor/schoolhub/internal/app/store/events"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/htmlsanitize"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/paging"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var requiredFields = []inputval.Required{
	{Key: "title", Label: "Title"},
	{Key: "description", Label: "Description"},
	{Key: "date", Label: "Date"},
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD days, the
// two shapes the admin date picker sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// eventInput shadows the date fields with strings so date-only input
// decodes; parseDate turns them back into times.
type eventInput struct {
	models.Event
	Date    string  `json:"date"`
	EndDate *string `json:"end_date"`
}

type eventPatchInput struct {
	models.EventPatch
	Date    *string `json:"date"`
	EndDate *string `json:"end_date"`
}

// List returns one page of events, newest first. Anonymous callers see
// only active events. Supports search and featured query params.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, authed := auth.CurrentUser(r)
	p := paging.Parse(r)

	f := eventstore.ListFilter{
		Search:     query.Get(r, "search"),
		ActiveOnly: !authed,
	}
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
		h.ErrLog.LogServerError(w, r, "list events", err, "Failed to load events")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

// Get returns one event by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Event not found")
		return
	}
	event, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "get event", err, "Failed to load event")
		return
	}
	if _, authed := auth.CurrentUser(r); !authed && !event.IsActive {
		h.ErrLog.NotFound(w, "Event not found")
		return
	}
	respond.OK(w, event)
}

// Create stores a new event. HTML content is sanitized first.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var in eventInput
	var raw map[string]any
	if err := shared.DecodeBody(r, &in, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode event body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}

	event := in.Event
	date, err := parseDate(in.Date)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	event.Date = date
	if in.EndDate != nil {
		end, err := parseDate(*in.EndDate)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		event.EndDate = &end
	}
	// New content is visible unless the request says otherwise.
	if _, ok := raw["is_active"]; !ok {
		event.IsActive = true
	}

	event.Content = htmlsanitize.Sanitize(event.Content)

	now := time.Now().UTC()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now
	if claims, ok := auth.CurrentUser(r); ok {
		event.CreatedBy = claims.Email
		event.UpdatedBy = claims.Email
	}

	if err := h.Store.Insert(ctx, event); err != nil {
		h.ErrLog.LogServerError(w, r, "insert event", err, "Failed to create event")
		return
	}
	respond.Created(w, event)
}

// Update merges the supplied fields into one event.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Event not found")
		return
	}

	var in eventPatchInput
	if err := shared.DecodeBody(r, &in, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode event patch", err, "Invalid request body")
		return
	}
	patch := in.EventPatch
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		patch.Date = &date
	}
	if in.EndDate != nil {
		end, err := parseDate(*in.EndDate)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		patch.EndDate = &end
	}
	if patch.Content != nil {
		clean := htmlsanitize.Sanitize(*patch.Content)
		patch.Content = &clean
	}

	set, err := content.SetFields(patch)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build event update", err, "Failed to update event")
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
			h.ErrLog.NotFound(w, "Event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "update event", err, "Failed to update event")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload event", err, "Failed to update event")
		return
	}
	respond.OK(w, updated)
}

// Delete removes one event.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Event not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Event not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete event", err, "Failed to delete event")
		return
	}
	respond.OKMessage(w, "Event deleted successfully")
}
