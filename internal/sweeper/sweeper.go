// Package sweeper periodically walks the content directory and publishes
// asset count and byte totals as metrics.
package sweeper

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/okarpenko/listing-gateway/internal/metrics"
	"github.com/okarpenko/listing-gateway/pkg/logger"
)

// Sweeper walks the content directory on a schedule.
type Sweeper struct {
	cron *cron.Cron
	dir  string
	log  *slog.Logger
}

// Option configures the Sweeper.
type Option func(*Sweeper)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sweeper) {
		s.log = l
	}
}

// New creates a Sweeper over dir that runs every interval.
func New(dir string, interval time.Duration, opts ...Option) (*Sweeper, error) {
	s := &Sweeper{
		cron: cron.New(),
		dir:  dir,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.cron.AddFunc("@every "+interval.String(), s.runSweep); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins scheduled sweeps and runs one immediately so the gauges are
// populated before the first interval elapses.
func (s *Sweeper) Start() {
	s.log.Info("sweeper started", "dir", s.dir)
	s.runSweep()
	s.cron.Start()
}

// Stop gracefully stops the sweeper, waiting for a running sweep to finish.
func (s *Sweeper) Stop() context.Context {
	s.log.Info("sweeper stopping")
	return s.cron.Stop()
}

func (s *Sweeper) runSweep() {
	start := time.Now()

	files, bytes, err := s.Sweep()
	if err != nil {
		s.log.Error("content sweep failed", "error", err)
		return
	}

	metrics.ContentFiles.Set(float64(files))
	metrics.ContentBytes.Set(float64(bytes))
	metrics.SweepDuration.Observe(time.Since(start).Seconds())

	s.log.Debug("content sweep finished",
		"files", files,
		"bytes", bytes,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// Sweep walks the content directory once and returns the regular file count
// and their total size in bytes. A missing directory counts as empty; the
// first upload creates it.
func (s *Sweeper) Sweep() (files int, bytes int64, err error) {
	err = filepath.WalkDir(s.dir, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		files++
		bytes += info.Size()
		return nil
	})

	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return files, bytes, nil
}
