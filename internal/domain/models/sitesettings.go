// internal/domain/models/sitesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is the singleton site-wide configuration document.
// Writes upsert it; reads fall back to defaults when it does not exist.
type SiteSettings struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SiteName string             `bson:"site_name" json:"site_name"`
	Tagline  string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Logo     string             `bson:"logo,omitempty" json:"logo,omitempty"`

	// Contact block shown in the site footer
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`

	SocialLinks   map[string]string `bson:"social_links,omitempty" json:"social_links,omitempty"`
	BusinessHours map[string]string `bson:"business_hours,omitempty" json:"business_hours,omitempty"`

	// Feature toggles for public site sections
	ShowEvents       bool `bson:"show_events" json:"show_events"`
	ShowGallery      bool `bson:"show_gallery" json:"show_gallery"`
	ShowTestimonials bool `bson:"show_testimonials" json:"show_testimonials"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// DefaultSiteName is used when no settings document exists yet.
const DefaultSiteName = "Brightharbor School"
