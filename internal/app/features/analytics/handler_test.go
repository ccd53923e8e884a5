package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	analyticsfeature "github.com/brightharbor/schoolhub/internal/app/features/analytics"
	analyticsstore "github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*analyticsfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return analyticsfeature.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func beacon(h *analyticsfeature.Handler, body, ua, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/analytics", strings.NewReader(body))
	req.Header.Set("User-Agent", ua)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.Track(rec, req)
	return rec
}

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestTrack_RecordsViewWithParsedUA(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	rec := beacon(handler, `{"session_id":"sess-1"}`, chromeUA, "203.0.113.9:5555")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	store := analyticsstore.New(db)
	days, err := store.Range(ctx, "2000-01-01", "2100-01-01")
	if err != nil {
		t.Fatalf("range failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("days = %d, want 1", len(days))
	}
	day := days[0]
	if day.PageViews != 1 || len(day.Sessions) != 1 {
		t.Fatalf("day = %d views, %d sessions; want 1/1", day.PageViews, len(day.Sessions))
	}
	if day.Sessions[0].Browser != "Chrome" {
		t.Errorf("browser = %q, want Chrome", day.Sessions[0].Browser)
	}
	if day.Sessions[0].SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", day.Sessions[0].SessionID)
	}
}

func TestTrack_SameClientDedupesVisitor(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	beacon(handler, `{"session_id":"sess-1"}`, chromeUA, "203.0.113.9:5555")
	beacon(handler, `{"session_id":"sess-1"}`, chromeUA, "203.0.113.9:6666")

	store := analyticsstore.New(db)
	days, _ := store.Range(ctx, "2000-01-01", "2100-01-01")
	if len(days) != 1 {
		t.Fatalf("days = %d, want 1", len(days))
	}
	// Same IP (the port differs) and UA hash to one fingerprint.
	if len(days[0].Visitors) != 1 {
		t.Errorf("visitors = %d, want 1", len(days[0].Visitors))
	}
}

func TestTrack_EmptyBodyStillCounts(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	rec := beacon(handler, "", chromeUA, "203.0.113.9:5555")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	store := analyticsstore.New(db)
	days, _ := store.Range(ctx, "2000-01-01", "2100-01-01")
	if len(days) != 1 || days[0].PageViews != 1 {
		t.Errorf("empty-body beacon did not record a view")
	}
}

func TestReport_BadDaysParam(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/analytics?days=banana", nil))
	rec := httptest.NewRecorder()
	handler.Report(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReport_SummarizesRecordedTraffic(t *testing.T) {
	handler, _ := newTestHandler(t)

	beacon(handler, `{"session_id":"sess-1"}`, chromeUA, "203.0.113.9:5555")
	beacon(handler, `{"session_id":"sess-1"}`, chromeUA, "203.0.113.9:5555")

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/analytics?days=7", nil))
	rec := httptest.NewRecorder()
	handler.Report(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	data := string(env.Data)
	if !strings.Contains(data, `"page_views":2`) {
		t.Errorf("summary missing page views: %s", data)
	}
	if !strings.Contains(data, `"unique_visitors":1`) {
		t.Errorf("summary missing visitor count: %s", data)
	}
	// Two views in one session: no bounce.
	if !strings.Contains(data, `"bounce_rate":0`) {
		t.Errorf("summary bounce rate wrong: %s", data)
	}
}
