// internal/app/features/dashboard/dashboard.go

// Package dashboard implements the admin dashboard stats endpoint. The
// counts fan out concurrently across collections; a failing count is
// reported as zero so the dashboard always renders.
package dashboard

import (
	"net/http"
	"time"

	"github.com/brightharbor/schoolhub/internal/app/store/analytics"
	"github.com/brightharbor/schoolhub/internal/app/store/metrics"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the dashboard endpoints.
type Handler struct {
	Metrics   *metrics.Store
	Analytics *analytics.Store
	Log       *zap.Logger
	ErrLog    *respond.ErrorLogger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Metrics:   metrics.New(db, logger),
		Analytics: analytics.New(db),
		Log:       logger,
		ErrLog:    errLog,
	}
}

// MountRoutes mounts the dashboard routes. All of them need a verified
// token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(auth.RequireAuth)
	r.Get("/stats", h.Stats)
}

// todaySnapshot is the current UTC day's traffic, derived from the day
// document.
type todaySnapshot struct {
	Date           string `json:"date"`
	PageViews      int64  `json:"page_views"`
	UniqueVisitors int    `json:"unique_visitors"`
	Sessions       int    `json:"sessions"`
}

type statsResponse struct {
	Counts metrics.DashboardCounts `json:"counts"`
	Today  todaySnapshot           `json:"today"`
}

// Stats returns the dashboard count block plus today's traffic.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "dashboard stats")
	defer cancel()

	now := time.Now().UTC()
	counts := h.Metrics.FetchDashboardCounts(ctx, now)

	day, err := h.Analytics.GetDay(ctx, now.Format(analytics.DateFormat))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load today's analytics", err, "Failed to load dashboard stats")
		return
	}

	respond.OK(w, statsResponse{
		Counts: counts,
		Today: todaySnapshot{
			Date:           day.Date,
			PageViews:      day.PageViews,
			UniqueVisitors: len(day.Visitors),
			Sessions:       len(day.Sessions),
		},
	})
}
