// internal/domain/models/testimonial.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a quote from a parent or student. Rating is 1-5.
type Testimonial struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Quote      string             `bson:"quote" json:"quote"`
	Rating     int                `bson:"rating" json:"rating"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
	IsFeatured bool               `bson:"is_featured" json:"is_featured"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// TestimonialPatch holds the fields an update may change.
type TestimonialPatch struct {
	Name       *string `json:"name,omitempty" bson:"name,omitempty"`
	Role       *string `json:"role,omitempty" bson:"role,omitempty"`
	Company    *string `json:"company,omitempty" bson:"company,omitempty"`
	Quote      *string `json:"quote,omitempty" bson:"quote,omitempty"`
	Rating     *int    `json:"rating,omitempty" bson:"rating,omitempty"`
	Image      *string `json:"image,omitempty" bson:"image,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty" bson:"is_active,omitempty"`
	IsFeatured *bool   `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
}
