// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/app/system/normalize"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store manages contact-form submissions. Creation is public; reads,
// read-marking, and deletion are admin operations.
type Store struct {
	*content.Store[models.ContactSubmission]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.ContactSubmission](db, "contact_submissions")}
}

// Create stores a new submission and returns it with its generated ID.
func (s *Store) Create(ctx context.Context, sub models.ContactSubmission) (models.ContactSubmission, error) {
	sub.ID = primitive.NewObjectID()
	sub.Name = normalize.Name(sub.Name)
	sub.Email = normalize.Email(sub.Email)
	sub.IsRead = false
	sub.CreatedAt = time.Now().UTC()

	if err := s.Insert(ctx, sub); err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

// List returns newest-first submissions, optionally only unread ones.
func (s *Store) List(ctx context.Context, unreadOnly bool, skip, limit int64) ([]models.ContactSubmission, int64, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["is_read"] = false
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}

// SetRead marks a submission read or unread.
func (s *Store) SetRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	return s.UpdateByID(ctx, id, bson.M{"is_read": read})
}

// CountUnread is used by the dashboard.
func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.Collection().CountDocuments(ctx, bson.M{"is_read": false})
}
