// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_settings singleton document.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

// Get returns the site settings. If none exist, returns defaults with
// the public sections enabled.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.SiteSettings{
			SiteName:         models.DefaultSiteName,
			ShowEvents:       true,
			ShowGallery:      true,
			ShowTestimonials: true,
		}, nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Save upserts the singleton so it works whether settings exist or not,
// and returns the stored document.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	settings.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"site_name":         settings.SiteName,
			"tagline":           settings.Tagline,
			"logo":              settings.Logo,
			"email":             settings.Email,
			"phone":             settings.Phone,
			"address":           settings.Address,
			"social_links":      settings.SocialLinks,
			"business_hours":    settings.BusinessHours,
			"show_events":       settings.ShowEvents,
			"show_gallery":      settings.ShowGallery,
			"show_testimonials": settings.ShowTestimonials,
			"updated_at":        settings.UpdatedAt,
			"updated_by":        settings.UpdatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return models.SiteSettings{}, err
	}
	return s.Get(ctx)
}
