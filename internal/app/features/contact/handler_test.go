package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightharbor/schoolhub/internal/app/features/contact"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*contact.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return contact.NewHandler(db, respond.NewErrorLogger(logger), logger), db
}

func TestSubmit_Valid(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx := testutil.TestContext(t)

	body := `{"name":"A Parent","email":"Parent@Example.com","subject":"Admissions","message":"Hello"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var stored struct {
		Email  string `bson:"email"`
		IsRead bool   `bson:"is_read"`
	}
	if err := db.Collection("contact_submissions").FindOne(ctx, bson.M{}).Decode(&stored); err != nil {
		t.Fatalf("submission not stored: %v", err)
	}
	if stored.Email != "parent@example.com" {
		t.Errorf("email not normalized: %q", stored.Email)
	}
	if stored.IsRead {
		t.Error("new submission marked read")
	}
}

func TestSubmit_MissingField(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"name":"A Parent","email":"parent@example.com","subject":"Admissions"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Error != "Message is required" {
		t.Errorf("error = %q, want %q", env.Error, "Message is required")
	}
}

func TestSubmit_BadEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"name":"X","email":"not an email","subject":"s","message":"m"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestList_UnreadFilter(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateContactSubmission(ctx, "Read One", true)
	fx.CreateContactSubmission(ctx, "Unread One", false)

	req := testutil.WithAdmin(httptest.NewRequest("GET", "/api/contact?unread=true", nil))
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if strings.Contains(string(env.Data), "Read One") {
		t.Errorf("unread filter returned a read submission: %s", env.Data)
	}
	if !strings.Contains(string(env.Data), "Unread One") {
		t.Errorf("unread filter missing unread submission: %s", env.Data)
	}
}

func TestSetRead_DefaultsToRead(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	sub := fx.CreateContactSubmission(ctx, "Unread", false)

	req := testutil.WithAdmin(httptest.NewRequest("PATCH", "/api/contact/"+sub.ID.Hex(), strings.NewReader(`{}`)))
	req = testutil.WithChiURLParam(req, "id", sub.ID.Hex())
	rec := httptest.NewRecorder()
	handler.SetRead(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var stored struct {
		IsRead bool `bson:"is_read"`
	}
	if err := db.Collection("contact_submissions").FindOne(ctx, bson.M{"_id": sub.ID}).Decode(&stored); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !stored.IsRead {
		t.Error("submission not marked read")
	}
}

func TestSetRead_MalformedID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.WithAdmin(httptest.NewRequest("PATCH", "/api/contact/zzz", strings.NewReader(`{}`)))
	req = testutil.WithChiURLParam(req, "id", "zzz")
	rec := httptest.NewRecorder()
	handler.SetRead(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
