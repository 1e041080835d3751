package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation errors surfaced at construction. Invalid options are never
// silently defaulted.
var (
	ErrInvalidConcurrency  = errors.New("concurrency must be at least 1")
	ErrNegativeContext     = errors.New("context lines must not be negative")
	ErrInvalidPoolCapacity = errors.New("parser pool capacity must be at least 1")
	ErrNoSchemes           = errors.New("at least one URL scheme is required")
)

// Config represents the main configuration structure
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Filter FilterConfig `yaml:"filter"`
	Output OutputConfig `yaml:"output"`
}

// ScanConfig contains settings for the scan engine
type ScanConfig struct {
	Concurrency     int      `yaml:"concurrency"`
	IncludeComments bool     `yaml:"include_comments"`
	EnableFallback  bool     `yaml:"enable_fallback"`
	ContextLines    int      `yaml:"context_lines"`
	FailFast        bool     `yaml:"fail_fast"`
	PoolCapacity    int      `yaml:"pool_capacity"`
	Schemes         []string `yaml:"schemes"`
}

// FilterConfig contains settings for the post-extraction filter
type FilterConfig struct {
	IgnoreDomains  []string `yaml:"ignore_domains"`
	IncludeNonFQDN bool     `yaml:"include_non_fqdn"`
	KeepEmptyFiles bool     `yaml:"keep_empty_files"`
}

// OutputConfig contains settings for result rendering
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Concurrency:     5,
			IncludeComments: false,
			EnableFallback:  true,
			ContextLines:    0,
			FailFast:        false,
			PoolCapacity:    10,
			Schemes:         []string{"http", "https"},
		},
		Filter: FilterConfig{
			IncludeNonFQDN: false,
			KeepEmptyFiles: true,
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks the configuration and returns the first invalid option.
func (c *Config) Validate() error {
	if c.Scan.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	if c.Scan.ContextLines < 0 {
		return ErrNegativeContext
	}
	if c.Scan.PoolCapacity < 1 {
		return ErrInvalidPoolCapacity
	}
	if len(c.Scan.Schemes) == 0 {
		return ErrNoSchemes
	}
	return nil
}

// ignoreFile is the on-disk shape of an ignore-domain list.
type ignoreFile struct {
	Domains []string `yaml:"domains"`
}

// LoadIgnoreDomains reads an ignore-domain list from a YAML file.
func LoadIgnoreDomains(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}

	var f ignoreFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse ignore file: %w", err)
	}

	return f.Domains, nil
}
