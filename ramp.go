package vid2ascii

import "fmt"

// BucketWidth returns how many intensity levels share one glyph when n
// glyphs are in play.
type BucketWidth func(n int) int

// LegacyBucketWidth adds the remainder of 255/n to every bucket instead of
// spreading it, so for most n the densest glyphs are reached late or never.
// Rendered output depends on this exact shape.
func LegacyBucketWidth(n int) int {
	return 255/n + 255%n
}

// UniformBucketWidth partitions the 256 intensity levels evenly.
func UniformBucketWidth(n int) int {
	return (256 + n - 1) / n
}

// Ramp is an ordered set of glyphs from least to most dense.
type Ramp struct {
	name     string
	glyphs   []rune
	reserved int
	reversed bool
	width    BucketWidth
}

var (
	// ValueRamp maps dark pixels to sparse glyphs, for dark terminals.
	ValueRamp = NewRamp("value", " .~+=rcagxCABM%$#", 0, false)

	// InvertedRamp maps dark pixels to dense glyphs, for light terminals.
	// One slot is left out of the bucket divisor.
	InvertedRamp = NewRamp("inverted", " .:-=+*oOQ8BWM$&%@#", 1, true)
)

// NewRamp builds a ramp using the legacy bucket width. glyphs are listed
// sparse to dense; reserved slots are excluded from the bucket divisor and
// reversed ramps index from the dense end.
func NewRamp(name, glyphs string, reserved int, reversed bool) Ramp {
	rs := []rune(glyphs)
	if reserved < 0 || reserved >= len(rs) {
		panic(fmt.Sprintf("ramp %s: reserved %d out of range", name, reserved))
	}
	if reversed {
		for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
			rs[i], rs[j] = rs[j], rs[i]
		}
	}
	return Ramp{
		name:     name,
		glyphs:   rs,
		reserved: reserved,
		reversed: reversed,
		width:    LegacyBucketWidth,
	}
}

// RampByName returns one of the built-in ramps.
func RampByName(name string) (Ramp, error) {
	switch name {
	case "", ValueRamp.name:
		return ValueRamp, nil
	case InvertedRamp.name:
		return InvertedRamp, nil
	}
	return Ramp{}, fmt.Errorf("unknown ramp %q", name)
}

// WithBucketWidth returns a copy of the ramp that partitions intensities
// with w.
func (r Ramp) WithBucketWidth(w BucketWidth) Ramp {
	r.width = w
	return r
}

// Name returns the ramp's name.
func (r Ramp) Name() string { return r.name }

// Len returns the number of glyphs on the ramp.
func (r Ramp) Len() int { return len(r.glyphs) }

// Glyphs returns the glyphs in lookup order: index 0 is what intensity 0
// maps to.
func (r Ramp) Glyphs() []rune {
	out := make([]rune, len(r.glyphs))
	copy(out, r.glyphs)
	return out
}

// Index returns the slot an intensity falls into.
func (r Ramp) Index(intensity uint8) int {
	i := int(intensity) / r.width(len(r.glyphs)-r.reserved)
	if i > len(r.glyphs)-1 {
		i = len(r.glyphs) - 1
	}
	return i
}

// Glyph maps an intensity onto the ramp.
func (r Ramp) Glyph(intensity uint8) rune {
	return r.glyphs[r.Index(intensity)]
}
