// internal/app/features/analytics/report.go
package analytics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

const (
	defaultRangeDays = 7
	maxRangeDays     = 90
)

type reportResponse struct {
	From    string              `json:"from"`
	To      string              `json:"to"`
	Summary analytics.Summary   `json:"summary"`
	Days    []analytics.DayPoint `json:"days"`
}

// Report returns derived traffic metrics over the requested number of
// trailing days (default 7, max 90).
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	days := defaultRangeDays
	if v := query.Get(r, "days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respond.Fail(w, http.StatusBadRequest, "days must be a positive number")
			return
		}
		days = n
		if days > maxRangeDays {
			days = maxRangeDays
		}
	}

	now := time.Now().UTC()
	to := now.Format(analytics.DateFormat)
	from := now.AddDate(0, 0, -(days - 1)).Format(analytics.DateFormat)

	docs, err := h.Store.Range(ctx, from, to)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load analytics range", err, "Failed to load analytics")
		return
	}

	respond.OK(w, reportResponse{
		From:    from,
		To:      to,
		Summary: analytics.Summarize(docs),
		Days:    analytics.Points(docs),
	})
}
