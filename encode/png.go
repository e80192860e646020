// Package encode serialises rasters to their final on-disk encodings.
package encode

import (
	"bytes"
	"context"
	"image/png"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// PNG encodes rasters as PNG at maximum compression.  The quality option is
// ignored for this format.
type PNG struct{}

// NewPNG returns the PNG encoder.
func NewPNG() PNG { return PNG{} }

func (PNG) Format() core.Format { return core.FormatPNG }

func (PNG) Extension() string { return ".png" }

func (PNG) Encode(ctx context.Context, r *core.Raster, _ core.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryEncode, "png.encode", err)
	}
	if r == nil || r.Image == nil {
		return nil, apperrors.New(apperrors.CategoryEncode, "png.encode", apperrors.ErrEmptyInput)
	}

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, r.Image); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryEncode, "png.encode", err)
	}
	return buf.Bytes(), nil
}
