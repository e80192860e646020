package decode

import (
	"context"
	"os"

	"github.com/deepteams/webp/animation"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/raster"
)

// WebPAnimation demuxes an animated WebP container and composites its first
// frame onto the canvas.  Files that are not WebP animations fail the RIFF
// parse and fall through to the next strategy.
type WebPAnimation struct{}

// NewWebPAnimation returns the animated-WebP first-frame strategy.
func NewWebPAnimation() WebPAnimation { return WebPAnimation{} }

func (WebPAnimation) Name() string { return "webp-animation" }

func (WebPAnimation) TryFirstFrame(ctx context.Context, path string) (*core.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.decode", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.open", err)
	}
	defer f.Close()

	anim, err := animation.Decode(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.demux", err)
	}
	if len(anim.Frames) == 0 {
		return nil, apperrors.New(apperrors.CategoryDecode, "webpanim.demux", apperrors.ErrNoFrames)
	}

	if err := anim.DecodeFrames(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.frame", err)
	}

	// The first frame may cover a sub-rectangle of the canvas; the decoder
	// composites it at the right offset over the background.
	dec, err := animation.NewAnimDecoder(anim)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.frame", err)
	}
	first, _, err := dec.NextFrame()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDecode, "webpanim.frame", err)
	}
	return raster.FromImage(first)
}
