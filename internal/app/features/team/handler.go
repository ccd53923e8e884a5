// internal/app/features/team/handler.go

// Package team implements the staff profile endpoints. Listing is
// public and order-ascending; mutations require authentication.
package team

import (
	teamstore "github.com/brightharbor/schoolhub/internal/app/store/team"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all team handlers.
type Handler struct {
	Store  *teamstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a team Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  teamstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
