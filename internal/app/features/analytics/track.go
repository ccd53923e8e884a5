// internal/app/features/analytics/track.go
package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/features/shared"
	"github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/mileusna/useragent"
)

type trackRequest struct {
	SessionID string `json:"session_id"`
	Page      string `json:"page"`
}

// Track records one page view. The visitor fingerprint is a hash of
// client IP and user agent; no raw identifier is stored. A missing
// session_id falls back to the fingerprint so repeat views from the
// same browser still group.
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req trackRequest
	// The beacon body is optional; a bare POST still counts the view.
	_ = shared.DecodeBody(r, &req, nil)

	ua := useragent.Parse(r.UserAgent())
	fp := fingerprint(clientIP(r), r.UserAgent())

	sid := strings.TrimSpace(req.SessionID)
	if sid == "" {
		sid = fp
	}

	pv := analytics.PageView{
		SessionID:   sid,
		Fingerprint: fp,
		Browser:     ua.Name,
		OS:          ua.OS,
	}
	if err := h.Store.RecordPageView(ctx, pv, time.Now()); err != nil {
		h.ErrLog.LogServerError(w, r, "record page view", err, "Failed to record view")
		return
	}
	respond.OKMessage(w, "Recorded")
}

// clientIP prefers the first X-Forwarded-For hop, then falls back to
// the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func fingerprint(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent))
	return hex.EncodeToString(sum[:16])
}
