// internal/domain/models/analytics.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsDay is one document per UTC calendar day. Counters are
// mutated only with atomic update operators ($inc, $addToSet,
// positional $set) so concurrent page views never lose an increment.
type AnalyticsDay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      string             `bson:"date" json:"date"` // "2006-01-02", UTC
	PageViews int64              `bson:"page_views" json:"page_views"`
	Visitors  []string           `bson:"visitors,omitempty" json:"visitors,omitempty"` // fingerprint set
	Sessions  []AnalyticsSession `bson:"sessions,omitempty" json:"sessions,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AnalyticsSession is an embedded per-session record inside a day
// document. Duration is derived from LastActivity-StartedAt at read
// time rather than stored.
type AnalyticsSession struct {
	SessionID    string    `bson:"session_id" json:"session_id"`
	StartedAt    time.Time `bson:"started_at" json:"started_at"`
	LastActivity time.Time `bson:"last_activity" json:"last_activity"`
	PageViews    int64     `bson:"page_views" json:"page_views"`
	Browser      string    `bson:"browser,omitempty" json:"browser,omitempty"`
	OS           string    `bson:"os,omitempty" json:"os,omitempty"`
}

// Duration returns the elapsed session time.
func (s AnalyticsSession) Duration() time.Duration {
	if s.LastActivity.Before(s.StartedAt) {
		return 0
	}
	return s.LastActivity.Sub(s.StartedAt)
}
