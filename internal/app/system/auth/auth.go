// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookie is the cookie checked when no Authorization header is
// present.
const TokenCookie = "token"

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for every verification failure: malformed
// input, bad signature, wrong algorithm, or expiry. Callers never learn
// which, so the API cannot be used as a validity oracle.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity embedded in a token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies signed bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens creates a token service. A zero ttl falls back to
// DefaultTTL.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime. Cookie expiry follows it.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token carrying the user's id, email, and role.
func (t *Tokens) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry. Any failure yields ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the verified claims for the request, if any.
func CurrentUser(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(currentUserKey).(*Claims)
	return c, ok
}

// FromRequest extracts the raw token from the Authorization: Bearer
// header, falling back to the token cookie. Returns "" when absent.
func FromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		return ""
	}
	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// LoadUser injects verified claims into the request context when a
// valid token is presented. Requests without one pass through
// anonymously; RequireAuth decides whether that matters.
func (t *Tokens) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := FromRequest(r); raw != "" {
			if claims, err := t.Verify(raw); err == nil {
				r = withUser(r, claims)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests that carry no verified identity with a
// 401 envelope. Mount after LoadUser.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, c))
}

// WithUser returns a request carrying the given claims. Intended for
// handler tests.
func WithUser(r *http.Request, c *Claims) *http.Request {
	return withUser(r, c)
}
