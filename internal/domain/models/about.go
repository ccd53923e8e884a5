// internal/domain/models/about.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutContent is the singleton about-page document. There is at most
// one per deployment; writes upsert it.
type AboutContent struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"` // sanitized HTML
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Mission  string             `bson:"mission,omitempty" json:"mission,omitempty"`
	Vision   string             `bson:"vision,omitempty" json:"vision,omitempty"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
