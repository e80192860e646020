package core

import (
	"context"
	"time"
)

// Step is the fundamental pipeline building block.  Each Step transforms a
// *Raster and must be safe for concurrent use across goroutines.
type Step interface {
	Name() string
	Execute(ctx context.Context, r *Raster) (*Raster, error)
}

// Hook is an optional observer invoked around pipeline steps.
type Hook interface {
	BeforeStep(ctx context.Context, stepName string, r *Raster)
	AfterStep(ctx context.Context, stepName string, r *Raster, d time.Duration, err error)
}

// FrameDecoder is one strategy for obtaining a single decoded frame from a
// file.  Strategies are tried in order by the extractor chain; a strategy that
// cannot handle the file returns an error and the chain moves on.
type FrameDecoder interface {
	Name() string
	TryFirstFrame(ctx context.Context, path string) (*Raster, error)
}

// Encoder serialises a Raster to bytes in a target format.
// Implementations live in encode/.
type Encoder interface {
	Format() Format
	Extension() string
	Encode(ctx context.Context, r *Raster, opts Options) ([]byte, error)
}

// Logger is a minimal structured logging interface.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}
