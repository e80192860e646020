package config

import (
	"fmt"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// Config is the top-level configuration struct.  All fields have safe defaults
// so callers can start with Default() and override only what they need.
type Config struct {
	// Output encoding.
	Format  core.Format
	Quality int // 1-100, WebP only

	// Batch mode.
	Pattern     string // "*" or "*.ext"
	WorkerCount int    // files processed concurrently; 1 = strictly sequential

	// Logging.
	LogLevel string // "debug", "info", "warn", "error"
}

// Default returns a Config populated with the reference defaults.
func Default() Config {
	return Config{
		Format:      core.FormatPNG,
		Quality:     100,
		Pattern:     "*",
		WorkerCount: 1,
		LogLevel:    "info",
	}
}

// Options converts the Config into the per-invocation Options value passed
// through the pipeline.
func (c Config) Options() core.Options {
	return core.Options{Format: c.Format, Quality: c.Quality, Pattern: c.Pattern}
}

// Validate returns an error if the configuration is inconsistent.
func Validate(c Config) error {
	switch c.Format {
	case core.FormatPNG, core.FormatWebP:
	default:
		return apperrors.New(apperrors.CategoryConfig, "validate",
			fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, c.Format))
	}
	if c.Quality < 1 || c.Quality > 100 {
		return apperrors.New(apperrors.CategoryConfig, "validate",
			fmt.Errorf("quality %d out of range [1,100]", c.Quality))
	}
	if c.Pattern == "" {
		return apperrors.New(apperrors.CategoryConfig, "validate",
			fmt.Errorf("empty pattern"))
	}
	if c.WorkerCount < 1 {
		return apperrors.New(apperrors.CategoryConfig, "validate",
			fmt.Errorf("worker count %d must be at least 1", c.WorkerCount))
	}
	return nil
}
