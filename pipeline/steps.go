package pipeline

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/anysticker/anysticker/core"
	"github.com/anysticker/anysticker/decode"
	"github.com/anysticker/anysticker/encode"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/raster"
)

// ── Extract ──────────────────────────────────────────────────────────────────

// ExtractStep produces the initial raster by running the frame-extraction
// chain against Path.  It ignores its input raster.
type ExtractStep struct {
	Path  string
	Chain *decode.Chain
}

func (s *ExtractStep) Name() string { return "extract" }

func (s *ExtractStep) Execute(ctx context.Context, _ *core.Raster) (*core.Raster, error) {
	return s.Chain.Extract(ctx, s.Path)
}

// ── Alpha ────────────────────────────────────────────────────────────────────

// AlphaStep guarantees the raster leaves with exactly 4 channels.
type AlphaStep struct{}

func (s *AlphaStep) Name() string { return "alpha" }

func (s *AlphaStep) Execute(ctx context.Context, r *core.Raster) (*core.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if r == nil || r.Image == nil {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(), apperrors.ErrEmptyInput)
	}
	return raster.EnsureAlpha(r)
}

// ── Fit ──────────────────────────────────────────────────────────────────────

// FitStep resizes the raster so its long edge equals raster.StickerEdge,
// preserving aspect ratio with Lanczos resampling.
type FitStep struct{}

func (s *FitStep) Name() string { return "fit" }

func (s *FitStep) Execute(ctx context.Context, r *core.Raster) (*core.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if r == nil || r.Image == nil {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(), apperrors.ErrEmptyInput)
	}

	tw, th, err := raster.TargetSize(r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	if tw <= 0 || th <= 0 {
		// Extreme aspect ratios truncate the short edge to zero.
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(),
			fmt.Errorf("%w: %dx%d -> %dx%d", apperrors.ErrInvalidDimensions, r.Width, r.Height, tw, th))
	}

	resized := imaging.Resize(r.Image, tw, th, imaging.Lanczos)
	return &core.Raster{
		Image:    resized,
		Width:    tw,
		Height:   th,
		Channels: raster.Channels(resized),
	}, nil
}

// ── Encode ───────────────────────────────────────────────────────────────────

// EncodeStep serialises the raster and writes it to Path.
type EncodeStep struct {
	Encoder core.Encoder
	Path    string
	Opts    core.Options
}

func (s *EncodeStep) Name() string { return "encode" }

func (s *EncodeStep) Execute(ctx context.Context, r *core.Raster) (*core.Raster, error) {
	if r == nil || r.Image == nil {
		return nil, apperrors.New(apperrors.CategoryEncode, s.Name(), apperrors.ErrEmptyInput)
	}
	if err := encode.Save(ctx, s.Encoder, r, s.Path, s.Opts); err != nil {
		return nil, err
	}
	return r, nil
}
