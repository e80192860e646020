package encode

import (
	"bytes"
	"context"

	"github.com/deepteams/webp"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// WebP encodes rasters as WebP.  The quality parameter is taken verbatim from
// the options; it is validated to [1,100] upstream.
type WebP struct{}

// NewWebP returns the WebP encoder.
func NewWebP() WebP { return WebP{} }

func (WebP) Format() core.Format { return core.FormatWebP }

func (WebP) Extension() string { return ".webp" }

func (WebP) Encode(ctx context.Context, r *core.Raster, opts core.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryEncode, "webp.encode", err)
	}
	if r == nil || r.Image == nil {
		return nil, apperrors.New(apperrors.CategoryEncode, "webp.encode", apperrors.ErrEmptyInput)
	}

	encOpts := webp.DefaultOptions()
	encOpts.Quality = float32(opts.Quality)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, r.Image, encOpts); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryEncode, "webp.encode", err)
	}
	return buf.Bytes(), nil
}
