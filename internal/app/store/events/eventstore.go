// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"regexp"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the shared content contract with the event-specific list
// query (text search plus date-descending sort).
type Store struct {
	*content.Store[models.Event]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.Event](db, "events")}
}

// ListFilter narrows an event listing.
type ListFilter struct {
	Search     string // case-insensitive match on title or description
	ActiveOnly bool   // true for unauthenticated callers
	Featured   *bool
}

// List returns one date-descending page of events plus the total match
// count.
func (s *Store) List(ctx context.Context, f ListFilter, skip, limit int64) ([]models.Event, int64, error) {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}

	sort := bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}
