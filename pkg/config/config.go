// Package config provides configuration loading for the gazeta tool.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/gazeta/pkg/gazette"
)

// Config represents the complete gazeta configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Output     OutputConfig     `yaml:"output"`
}

// ExtractionConfig tunes the document processing pass.
type ExtractionConfig struct {
	// BeforeWindow is the disambiguation window before a match, in characters.
	BeforeWindow int `yaml:"before_window"`
	// AfterWindow is the disambiguation window after a match.
	AfterWindow int `yaml:"after_window"`
	// CategoryWindow is the larger window for the category designation scan.
	CategoryWindow int `yaml:"category_window"`
	// Normalize controls whether extracted text is cleaned before matching.
	Normalize bool `yaml:"normalize"`
}

// FetchConfig configures the PDF download step.
type FetchConfig struct {
	// Timeout bounds a whole download (default: 60s).
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig configures where and how tables are written.
type OutputConfig struct {
	// Dir is the directory CSV files are written into.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	opts := gazette.DefaultOptions()
	return &Config{
		Extraction: ExtractionConfig{
			BeforeWindow:   opts.BeforeWindow,
			AfterWindow:    opts.AfterWindow,
			CategoryWindow: opts.CategoryWindow,
			Normalize:      true,
		},
		Fetch: FetchConfig{
			Timeout: 60 * time.Second,
		},
		Output: OutputConfig{
			Dir: "out",
		},
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Extraction.BeforeWindow <= 0 {
		return fmt.Errorf("extraction.before_window must be positive")
	}
	if c.Extraction.AfterWindow <= 0 {
		return fmt.Errorf("extraction.after_window must be positive")
	}
	if c.Extraction.CategoryWindow < c.Extraction.AfterWindow {
		return fmt.Errorf("extraction.category_window must be at least after_window")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// Options converts the extraction section into processing options.
func (c *Config) Options() gazette.Options {
	return gazette.Options{
		BeforeWindow:   c.Extraction.BeforeWindow,
		AfterWindow:    c.Extraction.AfterWindow,
		CategoryWindow: c.Extraction.CategoryWindow,
	}
}
