// internal/app/features/testimonials/handler.go

// Package testimonials implements the testimonial endpoints. Listing
// is public with a featured filter; mutations require authentication.
package testimonials

import (
	testimonialstore "github.com/brightharbor/schoolhub/internal/app/store/testimonials"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all testimonial handlers.
type Handler struct {
	Store  *testimonialstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a testimonials Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  testimonialstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
