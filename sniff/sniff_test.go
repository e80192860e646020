package sniff

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepteams/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIsAnimated_GIFAlwaysAnimated(t *testing.T) {
	c := NewClassifier()

	// Content is irrelevant for gif, including a zero-byte file.
	assert.True(t, c.IsAnimated(writeFile(t, "a.gif", nil)))
	assert.True(t, c.IsAnimated(writeFile(t, "b.gif", []byte("not a gif at all"))))
	// Extension match is case-insensitive.
	assert.True(t, c.IsAnimated(writeFile(t, "c.GIF", nil)))
	// A missing gif still classifies as animated under the high-recall policy.
	assert.True(t, c.IsAnimated(filepath.Join(t.TempDir(), "missing.gif")))
}

func TestIsAnimated_WebPHeaderTag(t *testing.T) {
	c := NewClassifier()

	// The historical check looks for "WEBP" at byte offset 12.
	tagged := append(bytes.Repeat([]byte{0}, 12), []byte("WEBPxxxx")...)
	assert.True(t, c.IsAnimated(writeFile(t, "tagged.webp", tagged)))

	// A standard still WebP carries "WEBP" at offset 8 and the chunk fourcc
	// at 12, so it reads as static under this policy.
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil))
	assert.False(t, c.IsAnimated(writeFile(t, "still.webp", buf.Bytes())))

	// Files shorter than 16 bytes are static.
	assert.False(t, c.IsAnimated(writeFile(t, "short.webp", []byte("RIFF"))))
	// Unreadable files are static.
	assert.False(t, c.IsAnimated(filepath.Join(t.TempDir(), "missing.webp")))
}

func TestIsAnimated_UnknownExtensionsStatic(t *testing.T) {
	c := NewClassifier()
	assert.False(t, c.IsAnimated(writeFile(t, "a.jpg", []byte("x"))))
	assert.False(t, c.IsAnimated(writeFile(t, "a.png", []byte("x"))))
	assert.False(t, c.IsAnimated(writeFile(t, "a.txt", []byte("x"))))
	assert.False(t, c.IsAnimated(writeFile(t, "noext", []byte("x"))))
}

func TestWebPFeatureProbe(t *testing.T) {
	// A still WebP has no animation chunks.
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil))
	assert.False(t, WebPFeatureProbe(writeFile(t, "still.webp", buf.Bytes())))

	// Garbage fails the RIFF parse and reads as static.
	assert.False(t, WebPFeatureProbe(writeFile(t, "junk.webp", []byte("garbage"))))
}

func TestSetPolicy(t *testing.T) {
	c := NewClassifier()
	c.SetPolicy(".webp", WebPFeatureProbe)

	tagged := append(bytes.Repeat([]byte{0}, 12), []byte("WEBPxxxx")...)
	// Under the strict probe the tagged-but-invalid file is static.
	assert.False(t, c.IsAnimated(writeFile(t, "tagged.webp", tagged)))
}
