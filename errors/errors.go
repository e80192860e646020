package errors

import (
	"errors"
	"fmt"
)

// Category classifies error types for targeted handling and reporting.
type Category string

const (
	CategoryDecode   Category = "decode"
	CategoryFormat   Category = "format"
	CategoryEncode   Category = "encode"
	CategoryIO       Category = "io"
	CategoryMatch    Category = "match"
	CategoryPipeline Category = "pipeline"
	CategoryConfig   Category = "config"
)

// ProcessingError is the structured error type used throughout the module.
type ProcessingError struct {
	Category Category
	Op       string // operation name
	Err      error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// New creates a ProcessingError.
func New(category Category, op string, err error) *ProcessingError {
	return &ProcessingError{Category: category, Op: op, Err: err}
}

// Wrap wraps an existing error with context.
func Wrap(category Category, op string, err error) error {
	if err == nil {
		return nil
	}
	return New(category, op, err)
}

// IsCategory reports whether err belongs to the given category.
func IsCategory(err error, cat Category) bool {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Category == cat
	}
	return false
}

// Sentinel errors for common failure modes.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrInvalidDimensions    = errors.New("invalid dimensions")
	ErrUnsupportedChannels  = errors.New("unsupported channel layout")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
	ErrNoFrames             = errors.New("no frames in animation")
	ErrMissingPalette       = errors.New("gif has no color table")
	ErrNoMatchingFiles      = errors.New("no files match pattern")
	ErrNotAnimatedContainer = errors.New("not an animated container")
)
