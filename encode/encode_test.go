package encode

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

func newRaster(w, h int) *core.Raster {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xc8, G: 0x32, B: 0x32, A: 0xff})
		}
	}
	return &core.Raster{Image: img, Width: w, Height: h, Channels: 4}
}

func TestPNG_Encode(t *testing.T) {
	data, err := NewPNG().Encode(context.Background(), newRaster(32, 16), core.Options{Quality: 1})
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
	assert.Equal(t, 16, decoded.Bounds().Dy())
}

func TestWebP_Encode(t *testing.T) {
	data, err := NewWebP().Encode(context.Background(), newRaster(32, 16), core.Options{Quality: 90})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestEncode_EmptyRaster(t *testing.T) {
	for _, enc := range []core.Encoder{NewPNG(), NewWebP()} {
		_, err := enc.Encode(context.Background(), nil, core.Options{})
		require.Error(t, err, enc.Format())
		assert.True(t, apperrors.IsCategory(err, apperrors.CategoryEncode))
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewPNG())
	reg.Register(NewWebP())

	enc, ok := reg.For(core.FormatPNG)
	require.True(t, ok)
	assert.Equal(t, ".png", enc.Extension())

	enc, ok = reg.For(core.FormatWebP)
	require.True(t, ok)
	assert.Equal(t, ".webp", enc.Extension())

	_, ok = reg.For(core.Format("avif"))
	assert.False(t, ok)
}

func TestSave_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := Save(context.Background(), NewPNG(), newRaster(8, 8), path, core.Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestSave_EncoderFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := Save(context.Background(), NewPNG(), nil, path, core.Options{})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
