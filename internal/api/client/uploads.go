package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// UploadPhotos sends the given files as one multipart batch under formField
// and returns the stored asset URLs.
func (c *Client) UploadPhotos(
	ctx context.Context,
	formField string,
	paths []string,
) (*domain.UploadResult, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, p := range paths {
		if err := appendFile(w, formField, p); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1/listings/photos", body,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result domain.UploadResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func appendFile(w *multipart.Writer, formField, path string) error {
	f, err := os.Open(path) //nolint:gosec // path from trusted CLI argument
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(formField, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("adding %s to multipart body: %w", path, err)
	}

	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
