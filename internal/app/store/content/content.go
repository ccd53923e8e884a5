// internal/app/store/content/content.go

// Package content implements the repository contract shared by the
// ordered content collections (banners, team members, testimonials,
// gallery items). Each resource instantiates Store with its own model
// type and collection name; entity-specific queries live in dedicated
// store packages.
package content

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an operation targets a document that
// does not exist (or was already removed).
var ErrNotFound = errors.New("document not found")

// Store provides typed access to one Mongo collection.
type Store[T any] struct {
	c *mongo.Collection
}

// New creates a store for the given collection.
func New[T any](db *mongo.Database, collection string) *Store[T] {
	return &Store[T]{c: db.Collection(collection)}
}

// List returns one page of documents matching filter, plus the total
// match count for pagination.
func (s *Store[T]) List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]T, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(sort).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// GetByID loads one document by ObjectID.
func (s *Store[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Insert stores a new document. The caller assigns the ObjectID and
// timestamps before calling.
func (s *Store[T]) Insert(ctx context.Context, doc T) error {
	_, err := s.c.InsertOne(ctx, doc)
	return err
}

// UpdateByID merges the given fields into one document. Returns
// ErrNotFound when no document matched.
func (s *Store[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes one document. Returns ErrNotFound when nothing was
// removed.
func (s *Store[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Collection exposes the underlying handle for entity stores that need
// queries outside the shared contract.
func (s *Store[T]) Collection() *mongo.Collection {
	return s.c
}

// SetFields converts a patch struct (pointer fields, omitempty bson
// tags) into the $set document for UpdateByID. Nil fields drop out, so
// only supplied values are merged.
func SetFields(patch any) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
