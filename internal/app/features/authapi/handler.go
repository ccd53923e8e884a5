// internal/app/features/authapi/handler.go

// Package authapi implements login and the authenticated account
// endpoints (me, profile, change-password).
package authapi

import (
	userstore "github.com/brightharbor/schoolhub/internal/app/store/users"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all auth handlers.
type Handler struct {
	Users  *userstore.Store
	Tokens *auth.Tokens
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs an auth Handler.
func NewHandler(db *mongo.Database, tokens *auth.Tokens, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Log:    logger,
		ErrLog: errLog,
	}
}
