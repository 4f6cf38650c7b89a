// Package imageutil provides the pixel grid used for still images, file
// decoding and synthetic test patterns.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NRGBAImage is an immutable-by-convention pixel grid with its origin at
// (0, 0). Channels are stored without alpha premultiplication, so a
// transparent pixel keeps the colour it was encoded with.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new NRGBAImage with the specified dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to NRGBAImage, moving its
// origin to (0, 0).
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	bounds := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		return &NRGBAImage{NRGBA: nrgba}
	}
	out := NewNRGBAImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, straight(img.At(x, y)))
		}
	}
	return out
}

// straight returns c without alpha premultiplication. Straight colours are
// copied as is; premultiplied ones lose whatever alpha already erased.
func straight(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return color.NRGBA{
			R: uint8(c.R >> 8),
			G: uint8(c.G >> 8),
			B: uint8(c.B >> 8),
			A: uint8(c.A >> 8),
		}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *NRGBAImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *NRGBAImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}
