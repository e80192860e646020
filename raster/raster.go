// Package raster holds the pure bitmap operations of the sticker pipeline:
// the 512-pixel target-size computation, the channel model, and alpha
// synthesis.  Nothing here touches the filesystem.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// StickerEdge is the long-edge bound required of sticker output.
const StickerEdge = 512

// TargetSize maps source dimensions to the sticker target size using the
// aspect-driven policy: the long edge is always normalized to exactly
// StickerEdge, the other edge scales proportionally and is truncated, never
// rounded.  Small sources are upscaled.  Non-positive input is an error.
func TargetSize(width, height int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, apperrors.New(apperrors.CategoryPipeline, "raster.target_size",
			fmt.Errorf("%w: %dx%d", apperrors.ErrInvalidDimensions, width, height))
	}

	ratio := float64(width) / float64(height)
	if ratio >= 1 {
		return StickerEdge, int(StickerEdge / ratio), nil
	}
	return int(StickerEdge * ratio), StickerEdge, nil
}

// Channels classifies the channel layout of img: 1 for grayscale, 3 for
// opaque color, 4 when an alpha plane is present.  Unknown layouts report 0.
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.NYCbCrA:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Paletted:
		if paletteHasAlpha(img.(*image.Paletted).Palette) {
			return 4
		}
		return 3
	}
	return 0
}

func paletteHasAlpha(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// FromImage wraps a decoded image into a Raster, rejecting empty bitmaps so
// no zero-sized Raster ever enters the pipeline.
func FromImage(img image.Image) (*core.Raster, error) {
	if img == nil {
		return nil, apperrors.New(apperrors.CategoryDecode, "raster.from_image", apperrors.ErrEmptyInput)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, apperrors.New(apperrors.CategoryDecode, "raster.from_image",
			fmt.Errorf("%w: %dx%d", apperrors.ErrInvalidDimensions, b.Dx(), b.Dy()))
	}
	return &core.Raster{
		Image:    img,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: Channels(img),
	}, nil
}

// EnsureAlpha guarantees the raster carries an alpha plane.  A 3-channel
// raster gains a uniformly opaque alpha channel; a 4-channel raster passes
// through unchanged.  Any other layout is an error, never coerced.
func EnsureAlpha(r *core.Raster) (*core.Raster, error) {
	switch r.Channels {
	case 4:
		return r, nil
	case 3:
		b := r.Image.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		// Opaque source drawn with Src leaves every alpha sample at 255.
		draw.Draw(dst, dst.Bounds(), r.Image, b.Min, draw.Src)
		return &core.Raster{
			Image:    dst,
			Width:    r.Width,
			Height:   r.Height,
			Channels: 4,
		}, nil
	}
	return nil, apperrors.New(apperrors.CategoryFormat, "raster.ensure_alpha",
		fmt.Errorf("%w: %d channels", apperrors.ErrUnsupportedChannels, r.Channels))
}
