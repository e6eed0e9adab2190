package media

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrStorage indicates a write to the content directory failed.
var ErrStorage = errors.New("asset storage failure")

// ThumbnailPrefix marks the thumbnail variant of a stored asset.
const ThumbnailPrefix = "preview_"

// Store writes normalized assets to the content directory and derives their
// externally-addressable URLs.
type Store struct {
	dir        string
	publicPath string
	nowFunc    func() time.Time
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithNowFunc overrides the clock used for asset naming. For tests.
func WithNowFunc(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowFunc = now
	}
}

// NewStore creates a Store rooted at dir, serving assets under publicPath.
func NewStore(dir, publicPath string, opts ...StoreOption) *Store {
	s := &Store{
		dir:        dir,
		publicPath: publicPath,
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure creates the content directory if absent. A failure here is fatal for
// the whole upload batch, unlike per-file write failures.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("creating content directory %s: %w", s.dir, err)
	}
	return nil
}

// Save writes the primary and thumbnail encodings under a name derived from
// the original filename and returns the public URL of the primary asset.
func (s *Store) Save(originalName string, img *NormalizedImage) (string, error) {
	name := s.assetName(originalName)

	if err := s.write(name, img.Primary); err != nil {
		return "", err
	}
	if err := s.write(ThumbnailPrefix+name, img.Thumbnail); err != nil {
		return "", err
	}

	return path.Join(s.publicPath, name), nil
}

func (s *Store) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o640); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, name, err)
	}
	return nil
}

// assetName derives a collision-resistant name of the form
// {epoch-millis}_{8-hex-random}_{sanitized-base}.{ext}. The random token
// disambiguates uploads landing in the same millisecond.
func (s *Store) assetName(originalName string) string {
	base := originalName
	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = strings.ToLower(base[i+1:])
		base = base[:i]
	}

	token := uuid.NewString()[:8]
	return fmt.Sprintf("%d_%s_%s.%s", s.nowFunc().UnixMilli(), token, sanitizeBase(base), ext)
}

// sanitizeBase strips path components and maps unsafe characters to
// underscores so the generated name carries no traversal sequences.
func sanitizeBase(base string) string {
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "photo"
	}
	return cleaned
}
