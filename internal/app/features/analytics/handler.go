// internal/app/features/analytics/handler.go

// Package analytics implements the page-view beacon and the admin
// traffic report. The beacon is public and never fails the page it is
// embedded in; the report requires authentication.
package analytics

import (
	"github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the analytics endpoints.
type Handler struct {
	Store  *analytics.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs an analytics Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  analytics.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
