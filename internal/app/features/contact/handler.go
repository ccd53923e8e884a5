// internal/app/features/contact/handler.go

// Package contact implements the contact-form endpoints. Submission is
// public; reading, read-marking, and deletion require authentication.
package contact

import (
	contactstore "github.com/brightharbor/schoolhub/internal/app/store/contacts"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all contact handlers.
type Handler struct {
	Store  *contactstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a contact Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  contactstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
