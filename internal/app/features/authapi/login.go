// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// msgBadCredentials is returned for both an unknown email and a wrong
// password so the endpoint cannot be used to probe which emails exist.
const msgBadCredentials = "Invalid email or password"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login checks credentials and issues a token. The token is returned in
// the body and also set as a cookie for browser clients.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req loginRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode login body", err, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respond.Fail(w, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		h.ErrLog.LogServerError(w, r, "look up user for login", err, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Fail(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}
	// Deactivation is checked after the password so the message does not
	// reveal account status to guessers.
	if !user.IsActive {
		respond.Fail(w, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "issue token", err, "Login failed")
		return
	}

	if err := h.Users.RecordLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is advisory.
		h.Log.Warn("record login failed", zap.Error(err), zap.String("user", user.ID.Hex()))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respond.OK(w, loginResponse{Token: token, User: *user})
}
