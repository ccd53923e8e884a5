// internal/app/store/about/aboutstore.go
package aboutstore

import (
	"context"
	"time"

	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the about_content singleton. There is at
// most one document; Save upserts it, so two identical saves leave the
// document identical apart from updated_at (last writer wins, no merge
// detection).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about_content")}
}

// Get returns the about content, or an empty document when none has
// been saved yet.
func (s *Store) Get(ctx context.Context) (models.AboutContent, error) {
	var about models.AboutContent
	err := s.c.FindOne(ctx, bson.M{}).Decode(&about)
	if err == mongo.ErrNoDocuments {
		return models.AboutContent{}, nil
	}
	if err != nil {
		return models.AboutContent{}, err
	}
	return about, nil
}

// Save upserts the singleton and returns the stored document.
func (s *Store) Save(ctx context.Context, about models.AboutContent) (models.AboutContent, error) {
	about.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"title":      about.Title,
			"content":    about.Content,
			"image":      about.Image,
			"mission":    about.Mission,
			"vision":     about.Vision,
			"updated_at": about.UpdatedAt,
			"updated_by": about.UpdatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return models.AboutContent{}, err
	}
	return s.Get(ctx)
}
