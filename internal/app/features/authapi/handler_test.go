package authapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/authapi"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*authapi.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := authapi.NewHandler(db, auth.NewTokens("test-secret", 0), respond.NewErrorLogger(logger), logger)
	return handler, db
}

func postLogin(t *testing.T, h *authapi.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	rec := postLogin(t, handler, `{"email":"admin@test.com","password":"secret123"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !env.Success {
		t.Errorf("success = false, want true")
	}
	if !strings.Contains(string(env.Data), `"token"`) {
		t.Errorf("response data missing token: %s", env.Data)
	}
	if strings.Contains(string(env.Data), "password_hash") {
		t.Errorf("response leaks password hash: %s", env.Data)
	}

	var gotCookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookie && c.Value != "" && c.HttpOnly {
			gotCookie = true
		}
	}
	if !gotCookie {
		t.Error("expected an HttpOnly token cookie")
	}
}

// An unknown email and a wrong password must be indistinguishable so
// the endpoint cannot be used to probe which accounts exist.
func TestLogin_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	unknown := postLogin(t, handler, `{"email":"nobody@test.com","password":"secret123"}`)
	wrongPw := postLogin(t, handler, `{"email":"admin@test.com","password":"wrong"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401, 401", unknown.Code, wrongPw.Code)
	}
	unknownEnv := testutil.DecodeEnvelope(t, unknown)
	wrongEnv := testutil.DecodeEnvelope(t, wrongPw)
	if unknownEnv.Error != wrongEnv.Error {
		t.Errorf("error messages differ: %q vs %q", unknownEnv.Error, wrongEnv.Error)
	}
	if unknownEnv.Error != "Invalid email or password" {
		t.Errorf("error = %q, want %q", unknownEnv.Error, "Invalid email or password")
	}
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateUser(ctx, "Former Admin", "gone@test.com", "secret123", "admin", false)

	rec := postLogin(t, handler, `{"email":"gone@test.com","password":"secret123"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Error != "Account is deactivated" {
		t.Errorf("error = %q, want %q", env.Error, "Account is deactivated")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postLogin(t, handler, `{"email":"admin@test.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	user := fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = auth.WithUser(req, &auth.Claims{UserID: user.ID.Hex(), Email: user.Email, Role: user.Role})
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !strings.Contains(string(env.Data), user.Email) {
		t.Errorf("response missing user email: %s", env.Data)
	}
}

func TestMe_TokenForDeletedUser(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = testutil.WithAdmin(req)
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	user := fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	body := `{"current_password":"wrong","new_password":"newsecret"}`
	req := httptest.NewRequest("PUT", "/api/auth/change-password", strings.NewReader(body))
	req = auth.WithUser(req, &auth.Claims{UserID: user.ID.Hex(), Email: user.Email, Role: user.Role})
	rec := httptest.NewRecorder()
	handler.ChangePassword(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChangePassword_RoundTrip(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	user := fx.CreateAdmin(ctx, "admin@test.com", "secret123")
	claims := &auth.Claims{UserID: user.ID.Hex(), Email: user.Email, Role: user.Role}

	body := `{"current_password":"secret123","new_password":"newsecret"}`
	req := httptest.NewRequest("PUT", "/api/auth/change-password", strings.NewReader(body))
	req = auth.WithUser(req, claims)
	rec := httptest.NewRecorder()
	handler.ChangePassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	// Old password no longer works, new one does.
	if rec := postLogin(t, handler, `{"email":"admin@test.com","password":"secret123"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("old password still accepted: status %d", rec.Code)
	}
	if rec := postLogin(t, handler, `{"email":"admin@test.com","password":"newsecret"}`); rec.Code != http.StatusOK {
		t.Errorf("new password rejected: status %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestUpdateProfile_InvalidEmail(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	user := fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	body := `{"name":"Admin","email":"not-an-email @"}`
	req := httptest.NewRequest("PUT", "/api/auth/profile", strings.NewReader(body))
	req = auth.WithUser(req, &auth.Claims{UserID: user.ID.Hex(), Email: user.Email, Role: user.Role})
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// The cookie must expire with the token, whatever TTL is configured.
func TestLogin_CookieAgeFollowsConfiguredTTL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := authapi.NewHandler(db, auth.NewTokens("test-secret", time.Hour), respond.NewErrorLogger(logger), logger)

	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateAdmin(ctx, "admin@test.com", "secret123")

	rec := postLogin(t, handler, `{"email":"admin@test.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var maxAge int
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookie {
			maxAge = c.MaxAge
		}
	}
	if maxAge != int(time.Hour.Seconds()) {
		t.Errorf("cookie MaxAge = %d, want %d", maxAge, int(time.Hour.Seconds()))
	}
}
