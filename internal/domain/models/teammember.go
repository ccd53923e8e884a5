// internal/domain/models/teammember.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a staff profile shown on the team page.
// SocialLinks maps a platform name ("twitter", "linkedin", ...) to a URL;
// the set of platforms is not constrained.
type TeamMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Photo       string             `bson:"photo" json:"photo"`
	Designation string             `bson:"designation" json:"designation"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	SocialLinks map[string]string  `bson:"social_links,omitempty" json:"social_links,omitempty"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// TeamMemberPatch holds the fields an update may change.
type TeamMemberPatch struct {
	Name        *string            `json:"name,omitempty" bson:"name,omitempty"`
	Photo       *string            `json:"photo,omitempty" bson:"photo,omitempty"`
	Designation *string            `json:"designation,omitempty" bson:"designation,omitempty"`
	Bio         *string            `json:"bio,omitempty" bson:"bio,omitempty"`
	Email       *string            `json:"email,omitempty" bson:"email,omitempty"`
	Phone       *string            `json:"phone,omitempty" bson:"phone,omitempty"`
	SocialLinks *map[string]string `json:"social_links,omitempty" bson:"social_links,omitempty"`
	Order       *int               `json:"order,omitempty" bson:"order,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty" bson:"is_active,omitempty"`
}
