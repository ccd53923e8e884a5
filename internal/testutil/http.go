package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AdminClaims returns token claims for a synthetic admin.
func AdminClaims() *auth.Claims {
	return &auth.Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "admin@test.com",
		Role:   "admin",
	}
}

// WithAdmin adds admin claims to the request context, bypassing the
// token middleware.
func WithAdmin(r *http.Request) *http.Request {
	return auth.WithUser(r, AdminClaims())
}

// Envelope mirrors the response envelope for decoding in tests.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Pagination json.RawMessage `json:"pagination"`
}

// DecodeEnvelope decodes a recorded response body.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}
