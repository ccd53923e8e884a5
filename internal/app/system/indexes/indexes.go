// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. CreateMany is idempotent for identical
definitions, and errors are aggregated so any problem is visible and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, models []mongo.IndexModel) {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_users_email").SetUnique(true),
		},
	})

	ensure("banners", orderIndex("banners"))
	ensure("team_members", orderIndex("team_members"))
	ensure("gallery_items", orderIndex("gallery_items"))

	ensure("events", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_events_date"),
		},
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_events_active_date"),
		},
	})

	ensure("contact_submissions", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_contacts_created"),
		},
		{
			Keys:    bson.D{{Key: "is_read", Value: 1}},
			Options: options.Index().SetName("idx_contacts_read"),
		},
	})

	ensure("analytics_days", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_analytics_date").SetUnique(true),
		},
	})

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// orderIndex is the shared display-order index every ordered content
// collection carries.
func orderIndex(coll string) []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "order", Value: 1}},
			Options: options.Index().SetName("idx_" + coll + "_active_order"),
		},
	}
}
