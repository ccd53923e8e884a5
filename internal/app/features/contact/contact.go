// internal/app/features/contact/contact.go
package contact

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/paging"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

var requiredFields = []inputval.Required{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "subject", Label: "Subject"},
	{Key: "message", Label: "Message"},
}

// Submit stores a contact-form submission from the public site.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var sub models.ContactSubmission
	var raw map[string]any
	if err := shared.DecodeBody(r, &sub, &raw); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode contact body", err, "Invalid request body")
		return
	}
	if label, missing := inputval.FirstMissing(raw, requiredFields); missing {
		respond.Fail(w, http.StatusBadRequest, label+" is required")
		return
	}
	if !inputval.IsValidEmail(sub.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	stored, err := h.Store.Create(ctx, sub)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert contact submission", err, "Failed to send message")
		return
	}
	respond.Created(w, stored)
}

// List returns one page of submissions, newest first. The unread query
// param restricts to unread messages.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	unreadOnly := query.Get(r, "unread") == "true"

	items, total, err := h.Store.List(ctx, unreadOnly, p.Skip(), int64(p.Limit))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list contact submissions", err, "Failed to load messages")
		return
	}
	respond.Page(w, items, p.Meta(total))
}

type readRequest struct {
	IsRead *bool `json:"is_read"`
}

// SetRead marks one submission read or unread.
func (h *Handler) SetRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Message not found")
		return
	}

	var req readRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode read body", err, "Invalid request body")
		return
	}
	// Absent is_read means mark read, the common case.
	read := true
	if req.IsRead != nil {
		read = *req.IsRead
	}

	if err := h.Store.SetRead(ctx, id, read); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Message not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "mark contact submission", err, "Failed to update message")
		return
	}
	respond.OKMessage(w, "Message updated")
}

// Delete removes one submission.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := shared.PathID(r)
	if !ok {
		h.ErrLog.NotFound(w, "Message not found")
		return
	}
	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if err == content.ErrNotFound {
			h.ErrLog.NotFound(w, "Message not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete contact submission", err, "Failed to delete message")
		return
	}
	respond.OKMessage(w, "Message deleted")
}
