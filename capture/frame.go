package capture

// BytesPerPixel is the layout every backend delivers: R, G, B and one
// unused byte.
const BytesPerPixel = 4

// Frame is one captured image as a flat, row-major buffer.
type Frame struct {
	Data   []byte
	Width  int
	Height int
}

// NewFrame allocates a zeroed frame of the given resolution.
func NewFrame(width, height int) Frame {
	return Frame{
		Data:   make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// Pixels returns how many complete pixels the frame holds, bounded by its
// declared resolution.
func (f Frame) Pixels() int {
	n := len(f.Data) / BytesPerPixel
	if f.Width > 0 && f.Height > 0 && n > f.Width*f.Height {
		n = f.Width * f.Height
	}
	return n
}

// Set writes one pixel. The fourth byte is left untouched.
func (f Frame) Set(x, y int, r, g, b uint8) {
	i := (y*f.Width + x) * BytesPerPixel
	f.Data[i], f.Data[i+1], f.Data[i+2] = r, g, b
}
