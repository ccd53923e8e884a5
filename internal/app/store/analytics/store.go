// internal/app/store/analytics/store.go
package analytics

import (
	"context"
	"time"

	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DateFormat keys day documents. Days roll over at UTC midnight.
const DateFormat = "2006-01-02"

// Store manages the per-day analytics documents.
//
// All mutation goes through atomic update operators so two concurrent
// page views never lose an increment: the day counter uses $inc, the
// visitor set uses $addToSet, and the session sub-record uses a
// positional $inc with a guarded $push for the first view of a session.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("analytics_days")}
}

// PageView is one tracked view from the public beacon.
type PageView struct {
	SessionID   string
	Fingerprint string // visitor dedup key (hashed UA+IP)
	Browser     string
	OS          string
}

// RecordPageView applies one page view to today's document.
func (s *Store) RecordPageView(ctx context.Context, pv PageView, now time.Time) error {
	now = now.UTC()
	day := now.Format(DateFormat)

	// Day counters. The upsert also creates the document on the first
	// view of a day; the unique index on date makes a duplicate-key race
	// here retryable by the driver's matched update on the next call.
	dayUpdate := bson.M{
		"$inc":       bson.M{"page_views": 1},
		"$addToSet":  bson.M{"visitors": pv.Fingerprint},
		"$set":       bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"date": day}, dayUpdate, opts); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		// Lost the first-view-of-day race; the document now exists, so
		// the plain update applies.
		if _, err := s.c.UpdateOne(ctx, bson.M{"date": day}, dayUpdate); err != nil {
			return err
		}
	}

	return s.bumpSession(ctx, day, pv, now)
}

// bumpSession increments the embedded session record, creating it on
// the session's first view. The $ne guard on the push keeps a
// concurrent first view from inserting the session twice; the loser of
// that race retries the positional increment.
func (s *Store) bumpSession(ctx context.Context, day string, pv PageView, now time.Time) error {
	inc := bson.M{
		"$inc": bson.M{"sessions.$.page_views": 1},
		"$set": bson.M{"sessions.$.last_activity": now},
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"date": day, "sessions.session_id": pv.SessionID}, inc)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	push := bson.M{
		"$push": bson.M{"sessions": models.AnalyticsSession{
			SessionID:    pv.SessionID,
			StartedAt:    now,
			LastActivity: now,
			PageViews:    1,
			Browser:      pv.Browser,
			OS:           pv.OS,
		}},
	}
	res, err = s.c.UpdateOne(ctx, bson.M{"date": day, "sessions.session_id": bson.M{"$ne": pv.SessionID}}, push)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// A concurrent view pushed the session between our two updates;
	// apply the increment to the now-existing record.
	_, err = s.c.UpdateOne(ctx, bson.M{"date": day, "sessions.session_id": pv.SessionID}, inc)
	return err
}

// GetDay loads one day document. Missing days return a zeroed document
// keyed by the date.
func (s *Store) GetDay(ctx context.Context, day string) (models.AnalyticsDay, error) {
	var doc models.AnalyticsDay
	err := s.c.FindOne(ctx, bson.M{"date": day}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.AnalyticsDay{Date: day}, nil
	}
	if err != nil {
		return models.AnalyticsDay{}, err
	}
	return doc, nil
}

// Range returns the day documents between from and to inclusive,
// oldest first. Days with no traffic have no document and are simply
// absent.
func (s *Store) Range(ctx context.Context, from, to string) ([]models.AnalyticsDay, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var days []models.AnalyticsDay
	if err := cur.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}
