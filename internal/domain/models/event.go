// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a school event. Content is rich HTML and is sanitized
// before it is stored. Lists sort date-descending and support a text
// search over title and description.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Content     string             `bson:"content,omitempty" json:"content,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	IsFeatured  bool               `bson:"is_featured" json:"is_featured"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// EventPatch holds the fields an update may change.
type EventPatch struct {
	Title       *string    `json:"title,omitempty" bson:"title,omitempty"`
	Description *string    `json:"description,omitempty" bson:"description,omitempty"`
	Content     *string    `json:"content,omitempty" bson:"content,omitempty"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Location    *string    `json:"location,omitempty" bson:"location,omitempty"`
	Image       *string    `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty" bson:"is_active,omitempty"`
	IsFeatured  *bool      `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
}
