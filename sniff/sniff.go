// Package sniff classifies input files as animated or static.
//
// Classification is policy, not parsing: each container extension maps to a
// swappable Policy function, so a stricter detector can replace a heuristic
// without touching the pipeline.
package sniff

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
)

// Policy decides whether the file at path is animated.  Policies never return
// errors; an unreadable or malformed file reads as static.
type Policy func(path string) bool

// Classifier maps lower-case extensions to animation policies.
type Classifier struct {
	policies map[string]Policy
}

// NewClassifier returns a Classifier with the default policies: every .gif is
// animated, .webp uses the historical 16-byte header tag check.
func NewClassifier() *Classifier {
	return &Classifier{
		policies: map[string]Policy{
			".gif":  GIFAlwaysAnimated,
			".webp": WebPHeaderTag,
		},
	}
}

// SetPolicy replaces the policy for ext (lower-case, dot included).
func (c *Classifier) SetPolicy(ext string, p Policy) {
	c.policies[ext] = p
}

// IsAnimated reports whether the file should take the animated decode path.
// Extensions are matched case-insensitively; unknown extensions are static.
func (c *Classifier) IsAnimated(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := c.policies[ext]
	if !ok {
		return false
	}
	return p(path)
}

// GIFAlwaysAnimated treats every gif as animated.  Reliable frame-count
// sniffing for the format needs a full parse, so the classifier trades
// precision for recall and lets the extractor sort out single-frame files.
func GIFAlwaysAnimated(string) bool { return true }

// WebPHeaderTag reads the first 16 bytes and checks for the WEBP tag at byte
// offset 12.  This confirms container family only, not the presence of ANIM
// chunks; it is the historical proxy for "video-capable WebP" and is kept
// as the default.  See WebPFeatureProbe for the strict variant.
func WebPHeaderTag(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [16]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return false
	}
	return string(header[12:16]) == "WEBP"
}

// WebPFeatureProbe fully parses the RIFF feature set and reports whether the
// file actually carries animation chunks.  Stricter than WebPHeaderTag;
// opt-in via Classifier.SetPolicy.
func WebPFeatureProbe(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	feat, err := webp.GetFeatures(f)
	if err != nil {
		return false
	}
	return feat.HasAnimation
}
