package decode

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/raster"
)

// GIFFirstFrame is the dedicated low-level parser for the legacy animated
// format.  It slurps the whole frame table, takes frame zero, and resolves
// every pixel through the frame's local color table (or the global table when
// the frame carries none) into a fully opaque 4-channel bitmap.
type GIFFirstFrame struct{}

// NewGIFFirstFrame returns the legacy-gif fallback strategy.
func NewGIFFirstFrame() GIFFirstFrame { return GIFFirstFrame{} }

func (GIFFirstFrame) Name() string { return "gif-first-frame" }

func (GIFFirstFrame) TryFirstFrame(ctx context.Context, path string) (*core.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "gif.decode", err)
	}
	if strings.ToLower(filepath.Ext(path)) != ".gif" {
		return nil, apperrors.New(apperrors.CategoryDecode, "gif.decode",
			fmt.Errorf("%w: %s", apperrors.ErrNotAnimatedContainer, filepath.Base(path)))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "gif.open", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "gif.slurp", err)
	}
	if len(g.Image) == 0 {
		return nil, apperrors.New(apperrors.CategoryDecode, "gif.slurp", apperrors.ErrNoFrames)
	}

	frame := g.Image[0]
	table := activeColorTable(frame, g)
	if len(table) == 0 {
		return nil, apperrors.New(apperrors.CategoryDecode, "gif.palette", apperrors.ErrMissingPalette)
	}

	b := frame.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+b.Dx()]
		for x, idx := range row {
			// An index outside the active table is clamped to entry zero
			// instead of failing the whole decode.
			if int(idx) >= len(table) {
				idx = 0
			}
			cr, cg, cb, _ := table[idx].RGBA()
			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = uint8(cr >> 8)
			dst.Pix[o+1] = uint8(cg >> 8)
			dst.Pix[o+2] = uint8(cb >> 8)
			dst.Pix[o+3] = 0xff
		}
	}
	return raster.FromImage(dst)
}

// activeColorTable returns the frame's local color table, falling back to the
// stream's global table.
func activeColorTable(frame *image.Paletted, g *gif.GIF) color.Palette {
	if len(frame.Palette) > 0 {
		return frame.Palette
	}
	if global, ok := g.Config.ColorModel.(color.Palette); ok {
		return global
	}
	return nil
}
