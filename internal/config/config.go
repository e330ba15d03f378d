// Package config provides configuration for fenmove.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of positions analysed in parallel.
	Workers int

	// CacheDir holds the position store; empty disables caching.
	CacheDir string

	// InputFile names the FEN source; empty means standard input.
	InputFile      string
	OutputFilename string

	Output     OutputConfig
	Analysis   AnalysisConfig
	Duplicate  DuplicateConfig
	Annotation AnnotationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     *NewOutputConfig(),
		Analysis:   *NewAnalysisConfig(),
		Duplicate:  *NewDuplicateConfig(),
		Annotation: *NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Analysis.Validate()
}
