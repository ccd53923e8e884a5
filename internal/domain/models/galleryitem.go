// internal/domain/models/galleryitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a photo in the site gallery. Category is a free-text
// tag used for client-side filtering.
type GalleryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL         string             `bson:"url" json:"url"`
	Alt         string             `bson:"alt" json:"alt"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// GalleryItemPatch holds the fields an update may change.
type GalleryItemPatch struct {
	URL         *string `json:"url,omitempty" bson:"url,omitempty"`
	Alt         *string `json:"alt,omitempty" bson:"alt,omitempty"`
	Title       *string `json:"title,omitempty" bson:"title,omitempty"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	Category    *string `json:"category,omitempty" bson:"category,omitempty"`
	Order       *int    `json:"order,omitempty" bson:"order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty" bson:"is_active,omitempty"`
}
