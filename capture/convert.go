package capture

import "image/color"

// fourcc packs a four character V4L2 format code.
func fourcc(code string) uint32 {
	if len(code) != 4 {
		return 0
	}
	return uint32(code[0]) | uint32(code[1])<<8 |
		uint32(code[2])<<16 | uint32(code[3])<<24
}

// fourccString unpacks a V4L2 format code.
func fourccString(f uint32) string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// rgb24ToFrame spreads packed 3-byte RGB into the frame's 4-byte pixels.
func rgb24ToFrame(src []byte, dst Frame) {
	n := min(len(src)/3, len(dst.Data)/BytesPerPixel)
	for p := 0; p < n; p++ {
		s, d := p*3, p*BytesPerPixel
		dst.Data[d] = src[s]
		dst.Data[d+1] = src[s+1]
		dst.Data[d+2] = src[s+2]
	}
}

// yuyvToFrame converts packed YUYV 4:2:2 into RGB. Each 4-byte macropixel
// holds two luma samples sharing one Cb/Cr pair.
func yuyvToFrame(src []byte, dst Frame) {
	n := min(len(src)/4, len(dst.Data)/(2*BytesPerPixel))
	for m := 0; m < n; m++ {
		s, d := m*4, m*2*BytesPerPixel
		cb, cr := src[s+1], src[s+3]
		for k, y := range [2]byte{src[s], src[s+2]} {
			o := d + k*BytesPerPixel
			dst.Data[o], dst.Data[o+1], dst.Data[o+2] = color.YCbCrToRGB(y, cb, cr)
		}
	}
}
