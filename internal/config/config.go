// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Uploads UploadsConfig `yaml:"uploads"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// BackendConfig defines settings for the remote listings API.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout applies to every backend call (listings, brands, models).
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines backend API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// UploadsConfig defines the photo upload pipeline settings.
type UploadsConfig struct {
	// Dir is the content directory where processed assets are written.
	Dir string `yaml:"dir"`
	// PublicPath is the URL prefix under which Dir is served.
	PublicPath  string   `yaml:"public_path"`
	FormField   string   `yaml:"form_field"`
	MaxFileMB   int64    `yaml:"max_file_mb"`
	AllowedExts []string `yaml:"allowed_exts"`

	// Normalization parameters.
	MaxDimension   int `yaml:"max_dimension"`
	Quality        int `yaml:"quality"`
	ThumbDimension int `yaml:"thumb_dimension"`
	ThumbQuality   int `yaml:"thumb_quality"`
}

// SweepConfig defines the content directory sweep schedule.
type SweepConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyBackendDefaults(&cfg.Backend)
	applyUploadsDefaults(&cfg.Uploads)
	applySweepDefaults(&cfg.Sweep)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyBackendDefaults(b *BackendConfig) {
	if b.Timeout == 0 {
		b.Timeout = 5 * time.Second
	}
	applyRateLimitDefaults(&b.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 20.0
	}
	if r.Burst == 0 {
		r.Burst = 40
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 100000
	}
}

func applyUploadsDefaults(u *UploadsConfig) {
	if u.Dir == "" {
		u.Dir = "data/uploads"
	}
	if u.PublicPath == "" {
		u.PublicPath = "/uploads"
	}
	if u.FormField == "" {
		u.FormField = "photos"
	}
	if u.MaxFileMB == 0 {
		u.MaxFileMB = 20
	}
	if len(u.AllowedExts) == 0 {
		u.AllowedExts = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	if u.MaxDimension == 0 {
		u.MaxDimension = 1920
	}
	if u.Quality == 0 {
		u.Quality = 85
	}
	if u.ThumbDimension == 0 {
		u.ThumbDimension = 300
	}
	if u.ThumbQuality == 0 {
		u.ThumbQuality = 80
	}
}

func applySweepDefaults(s *SweepConfig) {
	if s.Interval == 0 {
		s.Interval = 10 * time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Backend.BaseURL == "" {
		errs = append(errs, fmt.Errorf("backend.base_url is required"))
	}

	if !strings.HasPrefix(cfg.Uploads.PublicPath, "/") {
		errs = append(errs, fmt.Errorf(
			"uploads.public_path must start with / (got %q)",
			cfg.Uploads.PublicPath,
		))
	}

	if q := cfg.Uploads.Quality; q < 1 || q > 100 {
		errs = append(errs, fmt.Errorf("uploads.quality must be 1-100 (got %d)", q))
	}
	if q := cfg.Uploads.ThumbQuality; q < 1 || q > 100 {
		errs = append(errs, fmt.Errorf("uploads.thumb_quality must be 1-100 (got %d)", q))
	}

	if cfg.Uploads.ThumbDimension > cfg.Uploads.MaxDimension {
		errs = append(errs, fmt.Errorf(
			"uploads.thumb_dimension (%d) must not exceed uploads.max_dimension (%d)",
			cfg.Uploads.ThumbDimension, cfg.Uploads.MaxDimension,
		))
	}

	return errors.Join(errs...)
}
