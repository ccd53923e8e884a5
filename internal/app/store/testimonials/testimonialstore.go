// internal/app/store/testimonials/testimonialstore.go
package testimonialstore

import (
	"context"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the shared content contract with the testimonial listing
// (newest first, optional featured and active filters).
type Store struct {
	*content.Store[models.Testimonial]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.Testimonial](db, "testimonials")}
}

// ListFilter narrows a testimonial listing.
type ListFilter struct {
	ActiveOnly bool
	Featured   *bool
}

// List returns one page of testimonials, newest first, plus the total
// match count.
func (s *Store) List(ctx context.Context, f ListFilter, skip, limit int64) ([]models.Testimonial, int64, error) {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}
