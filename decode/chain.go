// Package decode obtains a single decoded frame from an input file.
//
// Extraction is an ordered chain of FrameDecoder strategies: the chain stops
// at the first strategy that yields a frame and surfaces the last failure
// reason when every strategy declines.
package decode

import (
	"context"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// Chain tries FrameDecoder strategies in order.
type Chain struct {
	strategies []core.FrameDecoder
}

// NewChain builds a Chain over the given strategies.
func NewChain(strategies ...core.FrameDecoder) *Chain {
	return &Chain{strategies: strategies}
}

// Extract runs the chain against path.  The returned Raster is always fully
// decoded and non-empty; on total failure the last strategy's error is
// returned wrapped as a decode error.
func (c *Chain) Extract(ctx context.Context, path string) (*core.Raster, error) {
	if len(c.strategies) == 0 {
		return nil, apperrors.New(apperrors.CategoryDecode, "decode.extract", apperrors.ErrEmptyInput)
	}

	var lastErr error
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Wrap(apperrors.CategoryDecode, "decode.extract", err)
		}
		r, err := s.TryFirstFrame(ctx, path)
		if err == nil {
			return r, nil
		}
		lastErr = err
	}
	return nil, apperrors.Wrap(apperrors.CategoryDecode, "decode.extract", lastErr)
}
