// internal/app/store/analytics/summary.go
package analytics

import (
	"sort"
	"time"

	"github.com/brightharbor/schoolhub/internal/domain/models"
)

// Summary is the derived view served to the dashboard. Everything here
// is computed from day documents at read time.
type Summary struct {
	PageViews      int64   `json:"page_views"`
	UniqueVisitors int     `json:"unique_visitors"`
	Sessions       int     `json:"sessions"`
	BounceRate     float64 `json:"bounce_rate"`      // percent, 0-100
	AvgDurationSec float64 `json:"avg_duration_sec"` // over sessions with >1 view
	TopBrowsers    []Stat  `json:"top_browsers"`
	TopOS          []Stat  `json:"top_os"`
}

// Stat is a name/count pair for browser and OS breakdowns.
type Stat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DayPoint is one entry in the time-series view.
type DayPoint struct {
	Date           string `json:"date"`
	PageViews      int64  `json:"page_views"`
	UniqueVisitors int    `json:"unique_visitors"`
	Sessions       int    `json:"sessions"`
}

// Summarize folds a range of day documents into a Summary. A bounce is
// a session that recorded exactly one page view; average duration
// counts only non-bounce sessions. Visitor fingerprints are deduped
// across days.
func Summarize(days []models.AnalyticsDay) Summary {
	var sum Summary
	visitors := make(map[string]struct{})
	browsers := make(map[string]int64)
	oses := make(map[string]int64)

	var bounces int
	var engaged int
	var totalDur time.Duration

	for _, d := range days {
		sum.PageViews += d.PageViews
		for _, v := range d.Visitors {
			visitors[v] = struct{}{}
		}
		for _, sess := range d.Sessions {
			sum.Sessions++
			if sess.PageViews <= 1 {
				bounces++
			} else {
				engaged++
				totalDur += sess.Duration()
			}
			if sess.Browser != "" {
				browsers[sess.Browser]++
			}
			if sess.OS != "" {
				oses[sess.OS]++
			}
		}
	}

	sum.UniqueVisitors = len(visitors)
	if sum.Sessions > 0 {
		sum.BounceRate = float64(bounces) / float64(sum.Sessions) * 100
	}
	if engaged > 0 {
		sum.AvgDurationSec = totalDur.Seconds() / float64(engaged)
	}
	sum.TopBrowsers = topStats(browsers, 5)
	sum.TopOS = topStats(oses, 5)
	return sum
}

// Points converts day documents to the chart series.
func Points(days []models.AnalyticsDay) []DayPoint {
	pts := make([]DayPoint, 0, len(days))
	for _, d := range days {
		pts = append(pts, DayPoint{
			Date:           d.Date,
			PageViews:      d.PageViews,
			UniqueVisitors: len(d.Visitors),
			Sessions:       len(d.Sessions),
		})
	}
	return pts
}

// topStats returns the n largest entries, highest first. Ties break on
// name so the output is stable.
func topStats(counts map[string]int64, n int) []Stat {
	stats := make([]Stat, 0, len(counts))
	for name, c := range counts {
		stats = append(stats, Stat{Name: name, Count: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
