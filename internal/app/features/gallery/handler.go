// internal/app/features/gallery/handler.go

// Package gallery implements the photo gallery endpoints. Listing is
// public with a category filter; mutations require authentication.
package gallery

import (
	gallerystore "github.com/brightharbor/schoolhub/internal/app/store/gallery"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all gallery handlers.
type Handler struct {
	Store  *gallerystore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a gallery Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  gallerystore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
