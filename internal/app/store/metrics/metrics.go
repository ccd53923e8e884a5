// internal/app/store/metrics/metrics.go
package metrics

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DashboardCounts is the count block on the admin dashboard.
type DashboardCounts struct {
	ActiveBanners      int64 `json:"active_banners"`
	TotalEvents        int64 `json:"total_events"`
	UpcomingEvents     int64 `json:"upcoming_events"`
	ActiveTeamMembers  int64 `json:"active_team_members"`
	ActiveTestimonials int64 `json:"active_testimonials"`
	ActiveGalleryItems int64 `json:"active_gallery_items"`
	TotalContacts      int64 `json:"total_contacts"`
	UnreadContacts     int64 `json:"unread_contacts"`
}

// Store runs the dashboard count queries.
type Store struct {
	db  *mongo.Database
	log *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// FetchDashboardCounts runs the eight count queries concurrently. A
// failing count is logged and reported as zero rather than failing the
// whole dashboard.
func (s *Store) FetchDashboardCounts(ctx context.Context, now time.Time) DashboardCounts {
	active := bson.M{"is_active": true}

	var counts DashboardCounts
	jobs := []struct {
		coll   string
		filter bson.M
		dst    *int64
	}{
		{"banners", active, &counts.ActiveBanners},
		{"events", bson.M{}, &counts.TotalEvents},
		{"events", bson.M{"date": bson.M{"$gte": now.UTC()}}, &counts.UpcomingEvents},
		{"team_members", active, &counts.ActiveTeamMembers},
		{"testimonials", active, &counts.ActiveTestimonials},
		{"gallery_items", active, &counts.ActiveGalleryItems},
		{"contact_submissions", bson.M{}, &counts.TotalContacts},
		{"contact_submissions", bson.M{"is_read": false}, &counts.UnreadContacts},
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(coll string, filter bson.M, dst *int64) {
			defer wg.Done()
			n, err := s.db.Collection(coll).CountDocuments(ctx, filter)
			if err != nil {
				s.log.Warn("dashboard count failed",
					zap.String("collection", coll),
					zap.Error(err))
				return
			}
			*dst = n
		}(job.coll, job.filter, job.dst)
	}
	wg.Wait()

	return counts
}
