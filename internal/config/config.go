// Package config loads the kestrel server configuration file.
//
// The file is YAML. All fields are optional; a missing file yields the
// defaults, so `kestrel serve` works with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk server configuration.
type File struct {
	// Bind is the listen address, "host:port".
	Bind string `yaml:"bind"`

	// CookieName overrides the session cookie name.
	CookieName string `yaml:"cookie_name,omitempty"`

	// ReadTimeout and WriteTimeout are per-connection deadlines in seconds.
	// Zero keeps the server defaults.
	ReadTimeout  int `yaml:"read_timeout,omitempty"`
	WriteTimeout int `yaml:"write_timeout,omitempty"`

	// MetricsBind, when set, serves Prometheus metrics over HTTP on this
	// address (separate from the main listener).
	MetricsBind string `yaml:"metrics_bind,omitempty"`

	// Tracer, when set, enables OpenTelemetry spans under this tracer name.
	Tracer string `yaml:"tracer,omitempty"`

	// Static lists static file mounts, tried in order.
	Static []StaticMount `yaml:"static,omitempty"`
}

// StaticMount configures one static file mount. Exactly one of Dir or
// S3Bucket should be set.
type StaticMount struct {
	// Prefix is the public URL prefix, e.g. "/static/".
	Prefix string `yaml:"prefix"`

	// Dir serves files from a local directory.
	Dir string `yaml:"dir,omitempty"`

	// S3Bucket serves files from an S3 bucket, optionally under S3Prefix.
	S3Bucket string `yaml:"s3_bucket,omitempty"`
	S3Prefix string `yaml:"s3_prefix,omitempty"`
	S3Region string `yaml:"s3_region,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	return &File{Bind: "127.0.0.1:8080"}
}

// Load reads the configuration from path. A missing file is not an error;
// it returns Default().
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	f := Default()
	if err := yaml.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

func (f *File) validate() error {
	if f.Bind == "" {
		return errors.New("bind must not be empty")
	}
	for i, m := range f.Static {
		if m.Prefix == "" {
			return fmt.Errorf("static[%d]: prefix must not be empty", i)
		}
		if (m.Dir == "") == (m.S3Bucket == "") {
			return fmt.Errorf("static[%d]: exactly one of dir or s3_bucket must be set", i)
		}
	}
	return nil
}

// ReadTimeoutDuration returns the read timeout as a duration, zero when
// unset.
func (f *File) ReadTimeoutDuration() time.Duration {
	return time.Duration(f.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the write timeout as a duration, zero when
// unset.
func (f *File) WriteTimeoutDuration() time.Duration {
	return time.Duration(f.WriteTimeout) * time.Second
}
