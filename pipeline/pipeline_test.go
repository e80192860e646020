package pipeline

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
	"github.com/anysticker/anysticker/raster"
)

func nrgbaRaster(t *testing.T, w, h int) *core.Raster {
	t.Helper()
	r, err := raster.FromImage(image.NewNRGBA(image.Rect(0, 0, w, h)))
	require.NoError(t, err)
	return r
}

func TestFitStep_NormalizesLongEdge(t *testing.T) {
	out, err := (&FitStep{}).Execute(context.Background(), nrgbaRaster(t, 200, 100))
	require.NoError(t, err)
	assert.Equal(t, 512, out.Width)
	assert.Equal(t, 256, out.Height)
	assert.Equal(t, 4, out.Channels)
}

func TestFitStep_ExtremeAspectRatio(t *testing.T) {
	// 1x1000 truncates the short edge to zero; that is an error, not a
	// silently degenerate image.
	_, err := (&FitStep{}).Execute(context.Background(), nrgbaRaster(t, 1, 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDimensions)
}

func TestAlphaStep_PassThrough(t *testing.T) {
	in := nrgbaRaster(t, 10, 10)
	out, err := (&AlphaStep{}).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Same(t, in, out)
}

type recordingHook struct {
	before []string
	after  []string
}

func (h *recordingHook) BeforeStep(_ context.Context, name string, _ *core.Raster) {
	h.before = append(h.before, name)
}

func (h *recordingHook) AfterStep(_ context.Context, name string, _ *core.Raster, _ time.Duration, _ error) {
	h.after = append(h.after, name)
}

func TestPipeline_RunsStepsInOrderWithHooks(t *testing.T) {
	hook := &recordingHook{}
	p := New().Use(&AlphaStep{}, &FitStep{}).AddHook(hook)

	out, timings, err := p.Run(context.Background(), nrgbaRaster(t, 64, 64))
	require.NoError(t, err)
	assert.Equal(t, 512, out.Width)
	assert.Equal(t, []string{"alpha", "fit"}, hook.before)
	assert.Equal(t, []string{"alpha", "fit"}, hook.after)
	assert.Contains(t, timings, "alpha")
	assert.Contains(t, timings, "fit")
}

func TestPipeline_StopsOnFailure(t *testing.T) {
	hook := &recordingHook{}
	p := New().Use(&AlphaStep{}, &FitStep{}).AddHook(hook)

	// Nil raster fails the alpha stage; fit never runs.
	_, _, err := p.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{"alpha"}, hook.before)
}

func TestPipeline_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New().Use(&FitStep{}).Run(ctx, nrgbaRaster(t, 10, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
