// internal/app/features/seed/seed.go

// Package seed implements the one-shot admin bootstrap endpoint. It is
// guarded by a shared secret header and no-ops once an admin exists.
package seed

import (
	"context"
	"net/http"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	userstore "github.com/brightharbor/schoolhub/internal/app/store/users"
	"github.com/brightharbor/schoolhub/internal/app/system/inputval"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SecretHeader carries the seed secret.
const SecretHeader = "X-Seed-Secret"

// Handler owns the seed endpoint.
type Handler struct {
	Users  *userstore.Store
	Secret string
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a seed Handler.
func NewHandler(db *mongo.Database, secret string, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Secret: secret,
		Log:    logger,
		ErrLog: errLog,
	}
}

// MountRoutes mounts the seed route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Seed)
}

type seedRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Seed creates the initial admin account. Refused without the correct
// secret header; a no-op once any admin exists.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if h.Secret == "" || r.Header.Get(SecretHeader) != h.Secret {
		respond.Fail(w, http.StatusUnauthorized, "Invalid seed secret")
		return
	}

	exists, err := h.Users.AdminExists(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check for admin", err, "Seeding failed")
		return
	}
	if exists {
		respond.Fail(w, http.StatusConflict, "An admin account already exists")
		return
	}

	var req seedRequest
	if err := shared.DecodeBody(r, &req, nil); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode seed body", err, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respond.Fail(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < inputval.MinPasswordLength {
		respond.Fail(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash seed password", err, "Seeding failed")
		return
	}

	user, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "create seed admin", err, "Seeding failed")
		return
	}

	h.Log.Info("seeded initial admin", zap.String("email", user.Email))
	respond.Created(w, user)
}
