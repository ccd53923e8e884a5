// internal/app/system/respond/respond.go

// Package respond writes the JSON envelope every API route uses:
// {success, data?, message?, error?, pagination?}. Failures carry only
// a short human-readable message; detail stays in the server log.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Pagination is attached to list responses that use offset paging.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// CursorPagination is attached to list responses backed by an upstream
// cursor API. Total and Pages are approximate (see the media feature).
type CursorPagination struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
	Total      int    `json:"total"`
	Pages      int    `json:"pages"`
	Limit      int    `json:"limit"`
}

type envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
}

func write(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding the envelope cannot fail for the types we pass in; if the
	// connection is gone there is nothing left to do anyway.
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// OKMessage writes a 200 success envelope with a message and no data.
func OKMessage(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Success: true, Message: message})
}

// Created writes a 201 success envelope with the stored document.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Page writes a 200 success envelope with offset pagination metadata.
func Page(w http.ResponseWriter, data any, p Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: p})
}

// CursorPage writes a 200 success envelope with cursor pagination
// metadata.
func CursorPage(w http.ResponseWriter, data any, p CursorPagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: p})
}

// Fail writes a failure envelope with the given status.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, envelope{Success: false, Error: msg})
}

// ErrorLogger pairs envelope failures with server-side logging so
// handlers never leak internals to the client.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger wraps a zap logger for handler use.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the full error and returns a generic 500.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, op string, err error, userMsg string) {
	e.log.Error(op, zap.Error(err), zap.String("path", r.URL.Path), zap.String("method", r.Method))
	Fail(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at warn level and returns a 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, op string, err error, userMsg string) {
	e.log.Warn(op, zap.Error(err), zap.String("path", r.URL.Path))
	Fail(w, http.StatusBadRequest, userMsg)
}

// NotFound returns a 404 without logging; a missing document is not a
// server problem.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, userMsg string) {
	Fail(w, http.StatusNotFound, userMsg)
}

// Unauthorized returns a 401.
func (e *ErrorLogger) Unauthorized(w http.ResponseWriter, userMsg string) {
	Fail(w, http.StatusUnauthorized, userMsg)
}
