// Package vid2ascii renders pixel grids and raw camera frames as text for a
// terminal. Each sampled pixel is reduced to a perceptual intensity, mapped
// onto a glyph ramp and optionally prefixed with a 24-bit colour escape.
package vid2ascii

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

const ESC = "\u001b"

// ColorMode selects how colour is carried into the rendered text.
type ColorMode int

const (
	// NoColor emits bare glyphs with no escape sequences at all.
	NoColor ColorMode = iota
	// ForegroundColor prefixes every glyph with a truecolor foreground
	// escape matching the sampled pixel.
	ForegroundColor
	// BackgroundColor replaces every glyph with a space painted with a
	// truecolor background escape.
	BackgroundColor
)

func (m ColorMode) String() string {
	switch m {
	case NoColor:
		return "none"
	case ForegroundColor:
		return "foreground"
	case BackgroundColor:
		return "background"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode maps the command line spellings onto a ColorMode. An empty
// string means no colour, "fg" foreground only and "bgcolor" (or "bg")
// foreground and background.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoColor, nil
	case "fg", "foreground":
		return ForegroundColor, nil
	case "bg", "bgcolor", "background":
		return BackgroundColor, nil
	}
	return NoColor, fmt.Errorf("unknown color mode %q", s)
}

// PixelGrid is a read-only 2D view of pixels with straight (not
// premultiplied) alpha. *image.NRGBA satisfies it.
type PixelGrid interface {
	Bounds() image.Rectangle
	NRGBAAt(x, y int) color.NRGBA
}
