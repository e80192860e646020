package decode

import (
	"context"
	"image"
	"os"

	// Register the raster formats the generic reader accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/deepteams/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/raster"
)

// Static decodes a whole file through the registered image formats,
// preserving any existing alpha channel.  It is the only strategy for static
// images and the terminal fallback for animated ones.
type Static struct{}

// NewStatic returns the generic full-file decoder strategy.
func NewStatic() Static { return Static{} }

func (Static) Name() string { return "static" }

func (Static) TryFirstFrame(ctx context.Context, path string) (*core.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "static.decode", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "static.open", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "static.decode", err)
	}
	return raster.FromImage(img)
}
