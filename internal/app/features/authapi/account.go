// internal/app/features/authapi/account.go
package authapi

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	userstore "github.com/brightharbor/schoolhub/internal/app/store/users"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// currentDBUser resolves the request's claims to the stored account.
// A token that outlived its user yields a 401.
func (h *Handler) currentDBUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	claims, ok := auth.CurrentUser(r)
	if !ok {
		h.ErrLog.Unauthorized(w, "Authentication required")
		return nil, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		h.ErrLog.Unauthorized(w, "Authentication required")
		return nil, false
	}
	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrLog.Unauthorized(w, "Authentication required")
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load current user", err, "Failed to load account")
		return nil, false
	}
	return user, true
}

// Me returns the authenticated user's account.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentDBUser(w, r)
	if !ok {
		return
	}
	respond.OK(w, user)
}

type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateProfile changes the account's name and email.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, ok := h.currentDBUser(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode profile body", err, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respond.Fail(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := h.Users.UpdateProfile(ctx, user.ID, req.Name, req.Email); err != nil {
		if err == userstore.ErrDuplicateEmail {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "update profile", err, "Failed to update profile")
		return
	}

	updated, err := h.Users.GetByID(ctx, user.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload profile", err, "Failed to update profile")
		return
	}
	respond.OK(w, updated)
}

type passwordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword verifies the current password and stores a new hash.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, ok := h.currentDBUser(w, r)
	if !ok {
		return
	}

	var req passwordRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode password body", err, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respond.Fail(w, http.StatusBadRequest, "Current and new password are required")
		return
	}
	if len(req.NewPassword) < inputval.MinPasswordLength {
		respond.Fail(w, http.StatusBadRequest, "New password must be at least 6 characters")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash password", err, "Failed to change password")
		return
	}
	if err := h.Users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		h.ErrLog.LogServerError(w, r, "store password", err, "Failed to change password")
		return
	}
	respond.OKMessage(w, "Password changed successfully")
}
