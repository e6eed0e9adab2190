package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okarpenko/listing-gateway/internal/media"
	"github.com/okarpenko/listing-gateway/pkg/logger"
)

// UploadsHandler accepts multipart photo uploads and runs them through the
// media pipeline.
type UploadsHandler struct {
	pipeline     *media.Pipeline
	formField    string
	maxFileBytes int64
	log          *slog.Logger
}

// UploadsOption configures the UploadsHandler.
type UploadsOption func(*UploadsHandler)

// WithUploadsLogger sets the logger.
func WithUploadsLogger(l *slog.Logger) UploadsOption {
	return func(h *UploadsHandler) {
		h.log = l
	}
}

// NewUploadsHandler creates an UploadsHandler reading files from formField.
// maxFileMB bounds each file's declared size; oversized files are skipped.
func NewUploadsHandler(p *media.Pipeline, formField string, maxFileMB int64, opts ...UploadsOption) *UploadsHandler {
	h := &UploadsHandler{
		pipeline:     p,
		formField:    formField,
		maxFileBytes: maxFileMB << 20,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Upload processes a multipart batch of photos. Per-file failures skip that
// file; the response reports stored URLs in input order plus a skip count.
//
// @Summary Upload listing photos
// @Description Accepts a multipart batch, normalizes each image, and stores primary and thumbnail assets.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} domain.UploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/listings/photos [post]
func (h *UploadsHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "multipart form required",
		})
	}

	files := form.File[h.formField]
	oversized := 0
	uploads := make([]media.Upload, 0, len(files))
	for _, fh := range files {
		if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
			oversized++
			h.log.Warn("skipping oversized upload",
				"filename", fh.Filename,
				"size", fh.Size,
				"limit", h.maxFileBytes,
			)
			continue
		}

		uploads = append(uploads, media.Upload{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	result, err := h.pipeline.Process(c.Request().Context(), uploads)
	if err != nil {
		h.log.Error("upload batch failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "upload storage unavailable",
		})
	}

	result.Skipped += oversized
	return c.JSON(http.StatusOK, result)
}
