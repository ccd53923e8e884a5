// internal/domain/models/banner.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a home-page hero slide. Public listings return active
// banners sorted by Order.
type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image       string             `bson:"image" json:"image"`
	Heading     string             `bson:"heading" json:"heading"`
	Subheading  string             `bson:"subheading,omitempty" json:"subheading,omitempty"`
	ButtonLabel string             `bson:"button_label,omitempty" json:"button_label,omitempty"`
	ButtonLink  string             `bson:"button_link,omitempty" json:"button_link,omitempty"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// BannerPatch holds the fields an update may change. Nil pointers are
// left untouched.
type BannerPatch struct {
	Image       *string `json:"image,omitempty" bson:"image,omitempty"`
	Heading     *string `json:"heading,omitempty" bson:"heading,omitempty"`
	Subheading  *string `json:"subheading,omitempty" bson:"subheading,omitempty"`
	ButtonLabel *string `json:"button_label,omitempty" bson:"button_label,omitempty"`
	ButtonLink  *string `json:"button_link,omitempty" bson:"button_link,omitempty"`
	Order       *int    `json:"order,omitempty" bson:"order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty" bson:"is_active,omitempty"`
}
