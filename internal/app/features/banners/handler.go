// internal/app/features/banners/handler.go

// Package banners implements the home-page banner endpoints. Listing is
// public (active slides only for anonymous callers); mutations require
// authentication.
package banners

import (
	bannerstore "github.com/brightharbor/schoolhub/internal/app/store/banners"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all banner handlers.
type Handler struct {
	Store  *bannerstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a banners Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  bannerstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
