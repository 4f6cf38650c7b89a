package vid2ascii

import "math"

// Perceptual channel weights. Green dominates, blue barely registers.
const (
	redWeight   = 0.241
	greenWeight = 0.691
	blueWeight  = 0.068
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// rgbFromBytes reads the first three bytes of a pixel. Any fourth channel
// is ignored.
func rgbFromBytes(px []byte) RGB {
	return RGB{R: px[0], G: px[1], B: px[2]}
}

// Intensity returns the perceived brightness of the color.
func (c RGB) Intensity() uint8 {
	return Intensity(c.R, c.G, c.B)
}

// Intensity computes sqrt(R²·0.241 + G²·0.691 + B²·0.068) and truncates the
// result to 8 bits. This is not a flat average: two colors with the same
// channel sum can land far apart. Pure white comes out at 254.
func Intensity(r, g, b uint8) uint8 {
	rf, gf, bf := float32(r), float32(g), float32(b)
	// Each term is rounded on its own so the result does not depend on
	// whether the platform fuses multiply-adds.
	sum := float32(rf*rf*redWeight) +
		float32(gf*gf*greenWeight) +
		float32(bf*bf*blueWeight)
	v := float32(math.Sqrt(float64(sum)))
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
