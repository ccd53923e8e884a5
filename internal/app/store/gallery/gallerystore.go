// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the shared content contract with the gallery listing
// (order-ascending, optional category and active filters).
type Store struct {
	*content.Store[models.GalleryItem]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.GalleryItem](db, "gallery_items")}
}

// ListFilter narrows a gallery listing.
type ListFilter struct {
	Category   string
	ActiveOnly bool
}

// List returns one page of gallery items in display order plus the
// total match count.
func (s *Store) List(ctx context.Context, f ListFilter, skip, limit int64) ([]models.GalleryItem, int64, error) {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	sort := bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}
