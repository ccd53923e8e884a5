// internal/app/system/paging/paging.go

// Package paging implements the offset pagination contract shared by
// every collection-backed list endpoint: page/limit query params, a
// capped limit, and pages = ceil(total/limit).
package paging

import (
	"net/http"
	"strconv"

	"github.com/brightharbor/schoolhub/internal/app/system/respond"
)

const (
	// DefaultLimit is used when the limit param is absent or invalid.
	DefaultLimit = 10
	// MaxLimit caps the limit param so a single request cannot page the
	// whole collection.
	MaxLimit = 100
)

// Params is a parsed page/limit pair. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse reads page and limit from the query string, clamping invalid
// values to sane defaults.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
			if p.Limit > MaxLimit {
				p.Limit = MaxLimit
			}
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Meta builds the pagination metadata for a response given the total
// number of matching documents.
func (p Params) Meta(total int64) respond.Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return respond.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
