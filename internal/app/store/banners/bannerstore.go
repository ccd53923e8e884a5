// internal/app/store/banners/bannerstore.go
package bannerstore

import (
	"context"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the shared content contract with the banner listing
// (order-ascending, optionally restricted to active slides).
type Store struct {
	*content.Store[models.Banner]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.Banner](db, "banners")}
}

// List returns one page of banners in display order plus the total
// match count.
func (s *Store) List(ctx context.Context, activeOnly bool, skip, limit int64) ([]models.Banner, int64, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	sort := bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}
