package metrics_test

import (
	"testing"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/store/metrics"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.uber.org/zap"
)

func TestFetchDashboardCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	fx.CreateBanner(ctx, "Active", 1, true)
	fx.CreateBanner(ctx, "Inactive", 2, false)
	fx.CreateEvent(ctx, "Past", -7, true)
	fx.CreateEvent(ctx, "Upcoming", 7, true)
	fx.CreateTeamMember(ctx, "Active Teacher", 1, true)
	fx.CreateTeamMember(ctx, "Former Teacher", 2, false)
	fx.CreateContactSubmission(ctx, "Read", true)
	fx.CreateContactSubmission(ctx, "Unread", false)

	store := metrics.New(db, zap.NewNop())
	counts := store.FetchDashboardCounts(ctx, time.Now())

	if counts.ActiveBanners != 1 {
		t.Errorf("active banners = %d, want 1", counts.ActiveBanners)
	}
	if counts.TotalEvents != 2 {
		t.Errorf("total events = %d, want 2", counts.TotalEvents)
	}
	if counts.UpcomingEvents != 1 {
		t.Errorf("upcoming events = %d, want 1", counts.UpcomingEvents)
	}
	if counts.ActiveTeamMembers != 1 {
		t.Errorf("active team members = %d, want 1", counts.ActiveTeamMembers)
	}
	if counts.TotalContacts != 2 {
		t.Errorf("total contacts = %d, want 2", counts.TotalContacts)
	}
	if counts.UnreadContacts != 1 {
		t.Errorf("unread contacts = %d, want 1", counts.UnreadContacts)
	}
}

func TestFetchDashboardCounts_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	store := metrics.New(db, zap.NewNop())
	counts := store.FetchDashboardCounts(ctx, time.Now())

	if counts != (metrics.DashboardCounts{}) {
		t.Errorf("counts = %+v, want all zeros", counts)
	}
}
