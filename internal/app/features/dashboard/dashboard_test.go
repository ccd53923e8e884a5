package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/dashboard"
	"github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*dashboard.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return dashboard.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

type statsBody struct {
	Counts map[string]int64 `json:"counts"`
	Today  struct {
		Date           string `json:"date"`
		PageViews      int64  `json:"page_views"`
		UniqueVisitors int    `json:"unique_visitors"`
		Sessions       int    `json:"sessions"`
	} `json:"today"`
}

func TestStats_IncludesTodaySnapshot(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateBanner(ctx, "Welcome", 1, true)

	now := time.Now().UTC()
	store := analytics.New(db)
	pv := analytics.PageView{SessionID: "s1", Fingerprint: "fp1", Browser: "Chrome", OS: "Linux"}
	for i := 0; i < 2; i++ {
		if err := store.RecordPageView(ctx, pv, now); err != nil {
			t.Fatalf("record page view: %v", err)
		}
	}

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/dashboard/stats", nil))
	rec := httptest.NewRecorder()
	handler.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	var got statsBody
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if got.Counts["active_banners"] != 1 {
		t.Errorf("active_banners = %d, want 1", got.Counts["active_banners"])
	}
	if got.Today.Date != now.Format(analytics.DateFormat) {
		t.Errorf("today.date = %q, want %q", got.Today.Date, now.Format(analytics.DateFormat))
	}
	if got.Today.PageViews != 2 {
		t.Errorf("today.page_views = %d, want 2", got.Today.PageViews)
	}
	if got.Today.UniqueVisitors != 1 || got.Today.Sessions != 1 {
		t.Errorf("today = %+v, want one visitor and one session", got.Today)
	}
}

func TestStats_QuietDayIsZeroed(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/dashboard/stats", nil))
	rec := httptest.NewRecorder()
	handler.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	var got statsBody
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if got.Today.PageViews != 0 || got.Today.UniqueVisitors != 0 || got.Today.Sessions != 0 {
		t.Errorf("today = %+v, want all zero with no traffic", got.Today)
	}
	if got.Today.Date == "" {
		t.Error("today.date blank on a quiet day")
	}
}
