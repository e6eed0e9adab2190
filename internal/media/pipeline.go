package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/okarpenko/listing-gateway/internal/metrics"
	"github.com/okarpenko/listing-gateway/pkg/logger"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// ErrUnsupportedExtension indicates the declared filename extension is not in
// the upload allow-list.
var ErrUnsupportedExtension = errors.New("unsupported image extension")

// Upload is one file in an upload batch: the declared filename and a way to
// open its content stream.
type Upload struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// Pipeline orchestrates the upload batch: per-file extension validation,
// normalization, and storage. Per-file failures skip that file only; the
// batch aborts only when the content directory cannot be created.
type Pipeline struct {
	norm    *Normalizer
	store   *Store
	allowed map[string]struct{}
	log     *slog.Logger
}

// PipelineOption configures the Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = l
	}
}

// NewPipeline creates a Pipeline. allowedExts are compared case-insensitively
// against the declared filename extension.
func NewPipeline(norm *Normalizer, store *Store, allowedExts []string, opts ...PipelineOption) *Pipeline {
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	p := &Pipeline{
		norm:    norm,
		store:   store,
		allowed: allowed,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the batch. Stored primary asset URLs come back in input order;
// skipped files are counted but never abort the rest of the batch.
func (p *Pipeline) Process(ctx context.Context, uploads []Upload) (*domain.UploadResult, error) {
	if err := p.store.Ensure(); err != nil {
		return nil, err
	}

	result := &domain.UploadResult{Paths: []string{}}
	for _, u := range uploads {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		url, err := p.processOne(u)
		if err != nil {
			result.Skipped++
			metrics.UploadsSkippedTotal.WithLabelValues(skipReason(err)).Inc()
			p.log.Warn("skipping upload", "filename", u.Filename, "error", err)
			continue
		}

		result.Paths = append(result.Paths, url)
		metrics.UploadsStoredTotal.Inc()
	}

	return result, nil
}

func (p *Pipeline) processOne(u Upload) (string, error) {
	start := time.Now()
	defer func() {
		metrics.UploadDuration.Observe(time.Since(start).Seconds())
	}()

	if err := p.checkExtension(u.Filename); err != nil {
		return "", err
	}

	f, err := u.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, err := p.norm.Normalize(f)
	if err != nil {
		return "", err
	}

	url, err := p.store.Save(u.Filename, img)
	if err != nil {
		return "", err
	}

	metrics.UploadStoredBytes.Observe(float64(len(img.Primary)))
	p.log.Info("stored upload",
		"filename", u.Filename,
		"url", url,
		"width", img.Width,
		"height", img.Height,
	)
	return url, nil
}

func (p *Pipeline) checkExtension(filename string) error {
	if filename == "" {
		return ErrUnsupportedExtension
	}

	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ErrUnsupportedExtension
	}

	ext := strings.ToLower(filename[i+1:])
	if _, ok := p.allowed[ext]; !ok {
		return ErrUnsupportedExtension
	}
	return nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedExtension):
		return "unsupported_extension"
	case errors.Is(err, ErrUnreadableImage):
		return "unreadable_image"
	case errors.Is(err, ErrStorage):
		return "storage_failure"
	default:
		return "other"
	}
}
