package handlers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarpenko/listing-gateway/internal/api/handlers"
	"github.com/okarpenko/listing-gateway/internal/media"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

func smallPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, data := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func newUploadsHandler(t *testing.T, dir string, maxFileMB int64) *handlers.UploadsHandler {
	t.Helper()

	pipeline := media.NewPipeline(
		media.NewNormalizer(1920, 85, 300, 80),
		media.NewStore(dir, "/uploads"),
		[]string{"png", "jpg", "jpeg", "gif", "webp"},
	)
	return handlers.NewUploadsHandler(pipeline, "photos", maxFileMB)
}

func doUpload(t *testing.T, h *handlers.UploadsHandler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Upload(c))
	return rec
}

func TestUploadsHandler_Upload(t *testing.T) {
	t.Parallel()

	t.Run("stores valid photos", func(t *testing.T) {
		t.Parallel()

		h := newUploadsHandler(t, t.TempDir(), 20)
		body, ct := multipartBody(t, "photos", map[string][]byte{
			"car.png": smallPNG(t),
		})

		rec := doUpload(t, h, body, ct)
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Len(t, result.Paths, 1)
		assert.Contains(t, result.Paths[0], "/uploads/")
		assert.Zero(t, result.Skipped)
	})

	t.Run("mixed batch skips bad files only", func(t *testing.T) {
		t.Parallel()

		h := newUploadsHandler(t, t.TempDir(), 20)
		body, ct := multipartBody(t, "photos", map[string][]byte{
			"good.png":    smallPNG(t),
			"corrupt.png": []byte("not an image"),
			"notes.txt":   []byte("hello"),
		})

		rec := doUpload(t, h, body, ct)
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Len(t, result.Paths, 1)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("oversized file skipped before decoding", func(t *testing.T) {
		t.Parallel()

		h := newUploadsHandler(t, t.TempDir(), 1)
		big := make([]byte, 2<<20)
		body, ct := multipartBody(t, "photos", map[string][]byte{
			"huge.png": big,
		})

		rec := doUpload(t, h, body, ct)
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Empty(t, result.Paths)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("wrong field name yields empty result", func(t *testing.T) {
		t.Parallel()

		h := newUploadsHandler(t, t.TempDir(), 20)
		body, ct := multipartBody(t, "attachments", map[string][]byte{
			"car.png": smallPNG(t),
		})

		rec := doUpload(t, h, body, ct)
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Empty(t, result.Paths)
		assert.Zero(t, result.Skipped)
	})

	t.Run("non-multipart request returns 400", func(t *testing.T) {
		t.Parallel()

		h := newUploadsHandler(t, t.TempDir(), 20)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/photos",
			bytes.NewBufferString("plain body"))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Upload(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("content directory failure returns 500", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file-not-dir")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		h := newUploadsHandler(t, filepath.Join(blocker, "nested"), 20)

		body, ct := multipartBody(t, "photos", map[string][]byte{
			"car.png": smallPNG(t),
		})

		rec := doUpload(t, h, body, ct)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
