// internal/app/features/uploads/uploads.go

// Package uploads implements the local-disk file upload endpoint.
// Stored names are random so an upload can never clobber another; the
// original name survives only in the response.
package uploads

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadBytes caps uploads at 10 MiB.
const maxUploadBytes = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// Handler owns the upload endpoint.
type Handler struct {
	Dir     string // local directory uploads are written to
	BaseURL string // public prefix, e.g. "/uploads"
	Log     *zap.Logger
	ErrLog  *respond.ErrorLogger
}

// NewHandler constructs an uploads Handler.
func NewHandler(dir, baseURL string, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Dir:     dir,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Log:     logger,
		ErrLog:  errLog,
	}
}

// MountRoutes mounts the upload route. It needs a verified token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(auth.RequireAuth)
	r.Post("/", h.Upload)
}

type uploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

// Upload stores one multipart file field named "file" and returns its
// public URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form", err, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "A file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		respond.Fail(w, http.StatusBadRequest, "File type not allowed")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		h.ErrLog.LogServerError(w, r, "create upload dir", err, "Failed to store file")
		return
	}

	name := uuid.NewString() + ext
	path := filepath.Join(h.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create upload file", err, "Failed to store file")
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(path)
		h.ErrLog.LogServerError(w, r, "write upload file", err, "Failed to store file")
		return
	}

	respond.Created(w, uploadResponse{
		URL:          fmt.Sprintf("%s/%s", h.BaseURL, name),
		Filename:     name,
		OriginalName: header.Filename,
		Size:         size,
	})
}
