package core

import "image"

// Format identifies an output image codec.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatWebP:
		return ".webp"
	}
	return ""
}

// Options carries per-invocation processing configuration.  It is passed by
// value through the pipeline and never mutated by a stage.
type Options struct {
	// Format selects the output encoding.
	Format Format
	// Quality is the encode quality in [1,100].  Only meaningful for WebP;
	// PNG output always uses maximum compression.
	Quality int
	// Pattern is the directory glob ("*" or "*.ext"), batch mode only.
	Pattern string
}

// Raster is an in-memory decoded bitmap.  Channels follows the source channel
// layout: 3 for an opaque image, 4 once an alpha plane is present.  A Raster
// is owned by exactly one pipeline stage at a time; stages hand it forward and
// never retain it.
type Raster struct {
	Image    image.Image
	Width    int
	Height   int
	Channels int
}

// ProcessingResult is one record per processed file in batch mode.  It is
// created once by the orchestrator and never mutated afterwards.
type ProcessingResult struct {
	InputPath  string
	OutputPath string
	Success    bool
	Error      string // empty iff Success
}

// FileMatch is a path known to exist, be a regular file, and match the active
// glob pattern.
type FileMatch struct {
	Path string
}
