package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret-at-least-32-chars-long!!", time.Hour)

	raw, err := tokens.Issue("64f0c1d2e3a4b5c6d7e8f901", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID != "64f0c1d2e3a4b5c6d7e8f901" {
		t.Errorf("UserID: got %q", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email: got %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role: got %q", claims.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	tokens := NewTokens("test-secret-at-least-32-chars-long!!", -time.Minute)

	raw, err := tokens.Issue("id", "x@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := tokens.Verify(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokens("secret-one-abcdefghijklmnopqrstuv", time.Hour)
	verifier := NewTokens("secret-two-abcdefghijklmnopqrstuv", time.Hour)

	raw, err := issuer.Issue("id", "x@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	tokens := NewTokens("test-secret-at-least-32-chars-long!!", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := tokens.Verify(raw); err != ErrInvalidToken {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*http.Request)
		want   string
	}{
		{
			name:  "bearer header",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc123") },
			want:  "abc123",
		},
		{
			name:  "non-bearer header ignored",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic abc123") },
			want:  "",
		},
		{
			name:  "cookie fallback",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "xyz"}) },
			want:  "xyz",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer fromheader")
				r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "fromcookie"})
			},
			want: "fromheader",
		},
		{
			name:  "absent",
			setup: func(r *http.Request) {},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			tt.setup(r)
			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokens("test-secret-at-least-32-chars-long!!", time.Hour)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := tokens.LoadUser(RequireAuth(inner))

	// No token: 401.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/banners/123", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", rec.Code)
	}

	// Valid token: passes through.
	raw, _ := tokens.Issue("id", "x@example.com", "admin")
	req := httptest.NewRequest("DELETE", "/api/banners/123", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", rec.Code)
	}

	// Tampered token: 401.
	req = httptest.NewRequest("DELETE", "/api/banners/123", nil)
	req.Header.Set("Authorization", "Bearer "+raw+"x")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("tampered token: got %d, want 401", rec.Code)
	}
}
