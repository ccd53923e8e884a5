package seed_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightharbor/schoolhub/internal/app/features/seed"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, secret string) (*seed.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return seed.NewHandler(db, secret, respond.NewErrorLogger(logger), logger), db
}

func postSeed(h *seed.Handler, secret, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/seed", strings.NewReader(body))
	if secret != "" {
		req.Header.Set(seed.SecretHeader, secret)
	}
	rec := httptest.NewRecorder()
	h.Seed(rec, req)
	return rec
}

const validBody = `{"name":"First Admin","email":"admin@school.test","password":"secret123"}`

func TestSeed_CreatesFirstAdmin(t *testing.T) {
	handler, db := newTestHandler(t, "s3cret")
	ctx := testutil.TestContext(t)

	rec := postSeed(handler, "s3cret", validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	n, err := db.Collection("users").CountDocuments(ctx, map[string]any{"role": "admin"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("admin count = %d, want 1", n)
	}
}

func TestSeed_WrongSecret(t *testing.T) {
	handler, _ := newTestHandler(t, "s3cret")

	rec := postSeed(handler, "wrong", validBody)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSeed_DisabledWithoutSecret(t *testing.T) {
	handler, _ := newTestHandler(t, "")

	// A blank configured secret disables the endpoint even for a blank
	// header.
	rec := postSeed(handler, "", validBody)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSeed_NoOpWhenAdminExists(t *testing.T) {
	handler, db := newTestHandler(t, "s3cret")
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateAdmin(ctx, "existing@school.test", "secret123")

	rec := postSeed(handler, "s3cret", validBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	n, _ := db.Collection("users").CountDocuments(ctx, map[string]any{})
	if n != 1 {
		t.Errorf("user count = %d, want 1 (seed must not add another)", n)
	}
}

func TestSeed_ShortPassword(t *testing.T) {
	handler, _ := newTestHandler(t, "s3cret")

	rec := postSeed(handler, "s3cret", `{"name":"A","email":"a@b.test","password":"tiny"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
