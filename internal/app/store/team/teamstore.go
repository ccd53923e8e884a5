// internal/app/store/team/teamstore.go
package teamstore

import (
	"context"

	"github.com/brightharbor/schoolhub/internal/app/store/content"
	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the shared content contract with the team listing
// (order-ascending, optionally restricted to active members).
type Store struct {
	*content.Store[models.TeamMember]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: content.New[models.TeamMember](db, "team_members")}
}

// List returns one page of team members in display order plus the
// total match count.
func (s *Store) List(ctx context.Context, activeOnly bool, skip, limit int64) ([]models.TeamMember, int64, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	sort := bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}
	return s.Store.List(ctx, filter, sort, skip, limit)
}
