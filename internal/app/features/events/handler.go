// internal/app/features/events/handler.go

// Package events implements the school event endpoints. Listing is
// public with text search; mutations require authentication. Rich
// content is sanitized before storage.
package events

import (
	eventstore "github.com/brightharbor/schoolhub/internal/app/store/events"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all event handlers.
type Handler struct {
	Store  *eventstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs an events Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  eventstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
