package vid2ascii

import (
	"strings"

	"github.com/wbrown/vid2ascii/capture"
)

// ImageRowsPerScale is how many source rows map to one unit of image-mode
// scale.
const ImageRowsPerScale = 200

// DefaultVideoScale is the fixed camera-mode scale.
const DefaultVideoScale = 2

// Stride is the sampling step between rendered pixels.
type Stride struct {
	Rows int
	Cols int
}

// ImageStride derives the stride for a still image of the given height.
// Rows and columns are both sampled every 2·scale pixels, with
// scale = height/200 and a minimum scale of 1. The doubling compensates for
// character cells being about twice as tall as they are wide.
func ImageStride(height int) Stride {
	scale := height / ImageRowsPerScale
	if scale == 0 {
		scale = 1
	}
	return Stride{Rows: 2 * scale, Cols: 2 * scale}
}

// VideoStride derives the stride for camera frames. Columns are sampled
// every scale/2 pixels, much finer than the image path.
func VideoStride(scale int) Stride {
	if scale < 1 {
		scale = 1
	}
	cols := scale / 2
	if cols == 0 {
		cols = 1
	}
	return Stride{Rows: 2 * scale, Cols: cols}
}

// Renderer turns pixel grids and frames into terminal text.
type Renderer struct {
	Ramp       Ramp
	ColorMode  ColorMode
	VideoScale int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Ramp=ValueRamp, ColorMode=NoColor, VideoScale=2.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Ramp:       ValueRamp,
		ColorMode:  NoColor,
		VideoScale: DefaultVideoScale,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithRamp sets the glyph ramp.
func WithRamp(ramp Ramp) RendererOption {
	return func(r *Renderer) {
		r.Ramp = ramp
	}
}

// WithColorMode sets how colour is emitted.
func WithColorMode(mode ColorMode) RendererOption {
	return func(r *Renderer) {
		r.ColorMode = mode
	}
}

// WithVideoScale overrides the camera-mode scale.
func WithVideoScale(scale int) RendererOption {
	return func(r *Renderer) {
		r.VideoScale = scale
	}
}

// RenderImage renders a whole still image, top to bottom.
func (r *Renderer) RenderImage(grid PixelGrid) string {
	bounds := grid.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := ImageStride(height)

	var sb strings.Builder
	sb.Grow(r.estimate(width, height, stride))
	for y := 0; y < height; y += stride.Rows {
		for x := 0; x < width; x += stride.Cols {
			c := grid.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			r.writeCell(&sb, RGB{R: c.R, G: c.G, B: c.B})
		}
		r.endRow(&sb)
	}
	return sb.String()
}

// RenderFrame renders one camera frame. Row ends are detected on the last
// column of a sampled row rather than by a row counter.
func (r *Renderer) RenderFrame(f capture.Frame) string {
	if f.Width <= 0 {
		return ""
	}
	stride := VideoStride(r.VideoScale)
	pixels := f.Pixels()

	var sb strings.Builder
	sb.Grow(r.estimate(f.Width, pixels/f.Width, stride))
	for p := 0; p < pixels; p++ {
		x, y := p%f.Width, p/f.Width
		if y%stride.Rows != 0 {
			continue
		}
		if x%stride.Cols == 0 {
			i := p * capture.BytesPerPixel
			r.writeCell(&sb, rgbFromBytes(f.Data[i:i+capture.BytesPerPixel]))
		}
		if x == f.Width-1 {
			r.endRow(&sb)
		}
	}
	return sb.String()
}

func (r *Renderer) writeCell(sb *strings.Builder, c RGB) {
	switch r.ColorMode {
	case BackgroundColor:
		writeTruecolor(sb, "48", c)
		sb.WriteByte(' ')
	case ForegroundColor:
		writeTruecolor(sb, "38", c)
		sb.WriteRune(r.Ramp.Glyph(c.Intensity()))
	default:
		sb.WriteRune(r.Ramp.Glyph(c.Intensity()))
	}
}

func (r *Renderer) endRow(sb *strings.Builder) {
	sb.WriteString(rowReset(r.ColorMode))
	sb.WriteByte('\n')
}

// estimate guesses the output size so the builder grows once.
func (r *Renderer) estimate(width, height int, stride Stride) int {
	cells := ((width + stride.Cols - 1) / stride.Cols) *
		((height + stride.Rows - 1) / stride.Rows)
	per := 1
	if r.ColorMode != NoColor {
		per = len("\x1b[38;2;255;255;255m") + 1
	}
	return cells*per + (height/stride.Rows+1)*(len(bgReset)+1)
}
