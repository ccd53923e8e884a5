package banners_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightharbor/schoolhub/internal/app/features/banners"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*banners.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return banners.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func TestList_AnonymousSeesOnlyActive(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateBanner(ctx, "Welcome", 1, true)
	fx.CreateBanner(ctx, "Draft", 2, false)

	req := httptest.NewRequest("GET", "/api/banners", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if strings.Contains(string(env.Data), "Draft") {
		t.Errorf("anonymous listing includes inactive banner: %s", env.Data)
	}
	if !strings.Contains(string(env.Data), "Welcome") {
		t.Errorf("anonymous listing missing active banner: %s", env.Data)
	}
}

func TestList_AuthenticatedSeesAll(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateBanner(ctx, "Welcome", 1, true)
	fx.CreateBanner(ctx, "Draft", 2, false)

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/banners", nil))
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	env := testutil.DecodeEnvelope(t, rec)
	if !strings.Contains(string(env.Data), "Draft") {
		t.Errorf("admin listing missing inactive banner: %s", env.Data)
	}
	if !strings.Contains(string(env.Pagination), `"total":2`) {
		t.Errorf("pagination total wrong: %s", env.Pagination)
	}
}

func TestCreate_MissingRequiredField(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"image":"/uploads/x.jpg"}`
	req := testutil.WithAdmin(httptest.NewRequest("POST", "/api/banners", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Error != "Heading is required" {
		t.Errorf("error = %q, want %q", env.Error, "Heading is required")
	}
}

func TestCreate_StampsAuditFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"image":"/uploads/x.jpg","heading":"Open Day","order":3,"is_active":true}`
	req := testutil.WithAdmin(httptest.NewRequest("POST", "/api/banners", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !strings.Contains(string(env.Data), `"created_by":"admin@test.com"`) {
		t.Errorf("created banner missing audit stamp: %s", env.Data)
	}
}

func TestUpdate_MalformedIDIsNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.WithAdmin(httptest.NewRequest("PUT", "/api/banners/not-a-hex-id", strings.NewReader(`{"heading":"x"}`)))
	req = testutil.WithChiURLParam(req, "id", "not-a-hex-id")
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	banner := fx.CreateBanner(ctx, "Original", 1, true)

	body := `{"heading":"Renamed"}`
	req := testutil.WithAdmin(httptest.NewRequest("PUT", "/api/banners/"+banner.ID.Hex(), strings.NewReader(body)))
	req = testutil.WithChiURLParam(req, "id", banner.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	data := string(env.Data)
	if !strings.Contains(data, "Renamed") {
		t.Errorf("heading not updated: %s", data)
	}
	// Untouched fields survive the patch.
	if !strings.Contains(data, `"is_active":true`) {
		t.Errorf("is_active lost by patch: %s", data)
	}
	if !strings.Contains(data, "/uploads/test-banner.jpg") {
		t.Errorf("image lost by patch: %s", data)
	}
}

func TestUpdate_EmptyPatch(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	banner := fx.CreateBanner(ctx, "Original", 1, true)

	req := testutil.WithAdmin(httptest.NewRequest("PUT", "/api/banners/"+banner.ID.Hex(), strings.NewReader(`{}`)))
	req = testutil.WithChiURLParam(req, "id", banner.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDelete_MissingBanner(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := "64b000000000000000000000"
	req := testutil.WithAdmin(httptest.NewRequest("DELETE", "/api/banners/"+id, nil))
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDelete_RemovesBanner(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	banner := fx.CreateBanner(ctx, "Doomed", 1, true)

	req := testutil.WithAdmin(httptest.NewRequest("DELETE", "/api/banners/"+banner.ID.Hex(), nil))
	req = testutil.WithChiURLParam(req, "id", banner.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	n, err := db.Collection("banners").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("banner still present after delete")
	}
}

func TestCreate_DefaultsToActive(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"image":"/uploads/x.jpg","heading":"Welcome"}`
	req := testutil.WithAdmin(httptest.NewRequest("POST", "/api/banners", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !strings.Contains(string(env.Data), `"is_active":true`) {
		t.Errorf("banner created without is_active should default to active: %s", env.Data)
	}
}

func TestCreate_ExplicitInactiveRespected(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"image":"/uploads/x.jpg","heading":"Draft","is_active":false}`
	req := testutil.WithAdmin(httptest.NewRequest("POST", "/api/banners", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !strings.Contains(string(env.Data), `"is_active":false`) {
		t.Errorf("explicit is_active false was overridden: %s", env.Data)
	}
}
