package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFourcc(t *testing.T) {
	assert.Equal(t, uint32(0x33424752), fourcc("RGB3"))
	assert.Equal(t, "RGB3", fourccString(fourcc("RGB3")))
	assert.Equal(t, "YUYV", fourccString(fourcc("YUYV")))
	assert.Equal(t, uint32(0), fourcc("RGB"))
}

func TestRGB24ToFrame(t *testing.T) {
	f := NewFrame(2, 1)
	f.Data[3], f.Data[7] = 42, 42
	rgb24ToFrame([]byte{1, 2, 3, 4, 5, 6}, f)
	assert.Equal(t, []byte{1, 2, 3, 42, 4, 5, 6, 42}, f.Data)
}

func TestRGB24ToFrameShortInput(t *testing.T) {
	f := NewFrame(2, 1)
	rgb24ToFrame([]byte{9, 9, 9, 7}, f)
	assert.Equal(t, []byte{9, 9, 9, 0, 0, 0, 0, 0}, f.Data)
}

func TestYUYVToFrame(t *testing.T) {
	f := NewFrame(4, 1)
	yuyvToFrame([]byte{
		255, 128, 0, 128, // white, black
		76, 85, 76, 255, // two reds
	}, f)
	assert.Equal(t, []byte{255, 255, 255}, f.Data[0:3])
	assert.Equal(t, []byte{0, 0, 0}, f.Data[4:7])
	assert.Equal(t, []byte{254, 0, 0}, f.Data[8:11])
	assert.Equal(t, []byte{254, 0, 0}, f.Data[12:15])
}

func TestYUYVToFrameShortInput(t *testing.T) {
	f := NewFrame(4, 1)
	yuyvToFrame([]byte{255, 128, 255, 128, 0, 0}, f)
	assert.Equal(t, []byte{255, 255, 255, 0, 255, 255, 255, 0}, f.Data[:8])
	assert.Equal(t, make([]byte, 8), f.Data[8:])
}
