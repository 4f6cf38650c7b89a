package capture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackjack/webcam"

	"github.com/wbrown/vid2ascii/internal/log"
)

// maxTimeouts is how many consecutive frame waits may time out before a
// capture is treated as failed.
const maxTimeouts = 5

// v4l2Device is the part of *webcam.Webcam a V4L2 source reads through.
type v4l2Device interface {
	WaitForFrame(timeout uint32) error
	ReadFrame() ([]byte, error)
	Close() error
}

// V4L2 captures from a Video4Linux2 device.
type V4L2 struct {
	dev     v4l2Device
	format  string
	timeout uint32
	frame   Frame
}

// OpenV4L2 opens cfg.Device, negotiates format, resolution and frame rate,
// and starts streaming. When the requested fourcc is not offered, YUYV is
// used instead.
func OpenV4L2(cfg Config) (Source, error) {
	cam, err := webcam.Open(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceOpen, cfg.Device, err)
	}

	format, err := pickFormat(cam.GetSupportedFormats(), cfg.PixelFormat)
	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceOpen, cfg.Device, err)
	}

	f, w, h, err := cam.SetImageFormat(format, uint32(cfg.Width), uint32(cfg.Height))
	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("%w: set image format: %v", ErrDeviceOpen, err)
	}
	log.Debug("v4l2 format negotiated",
		"device", cfg.Device,
		"format", fourccString(uint32(f)),
		"width", w,
		"height", h)

	if cfg.FrameRate > 0 {
		if err := cam.SetFramerate(cfg.FrameRate); err != nil {
			// Not every driver exposes frame intervals.
			log.Warn("v4l2 frame rate not applied",
				"device", cfg.Device, "fps", cfg.FrameRate, "error", err)
		}
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, fmt.Errorf("%w: start streaming: %v", ErrDeviceOpen, err)
	}

	return newV4L2(cam, fourccString(uint32(f)), int(w), int(h), cfg), nil
}

func newV4L2(dev v4l2Device, format string, width, height int, cfg Config) *V4L2 {
	timeout := uint32(cfg.Timeout.Seconds())
	if timeout == 0 {
		timeout = 1
	}
	return &V4L2{
		dev:     dev,
		format:  format,
		timeout: timeout,
		frame:   NewFrame(width, height),
	}
}

// pickFormat returns the supported format whose fourcc or description
// matches want, falling back to YUYV.
func pickFormat(formats map[webcam.PixelFormat]string, want string) (webcam.PixelFormat, error) {
	var fallback webcam.PixelFormat
	haveFallback := false
	for f, desc := range formats {
		code := fourccString(uint32(f))
		if code == want || strings.Contains(desc, want) {
			return f, nil
		}
		if code == "YUYV" {
			fallback, haveFallback = f, true
		}
	}
	if haveFallback {
		log.Info("pixel format not offered, using YUYV", "requested", want)
		return fallback, nil
	}
	return 0, fmt.Errorf("pixel format %s not supported", want)
}

// Capture waits for the next frame and converts it in place. The returned
// frame shares its buffer with the next call.
func (v *V4L2) Capture() (Frame, error) {
	for timeouts := 0; ; {
		err := v.dev.WaitForFrame(v.timeout)
		var t *webcam.Timeout
		if errors.As(err, &t) {
			timeouts++
			log.Warn("timed out waiting for frame", "attempt", timeouts)
			if timeouts >= maxTimeouts {
				return Frame{}, fmt.Errorf("%w: %v", ErrCapture, err)
			}
			continue
		}
		if err != nil {
			return Frame{}, fmt.Errorf("%w: %v", ErrCapture, err)
		}
		break
	}

	raw, err := v.dev.ReadFrame()
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if len(raw) == 0 {
		return Frame{}, fmt.Errorf("%w: empty frame", ErrCapture)
	}

	switch v.format {
	case "RGB3":
		rgb24ToFrame(raw, v.frame)
	case "YUYV":
		yuyvToFrame(raw, v.frame)
	default:
		return Frame{}, fmt.Errorf("%w: unsupported pixel format %s", ErrCapture, v.format)
	}
	return v.frame, nil
}

// Close stops streaming and releases the device.
func (v *V4L2) Close() error {
	return v.dev.Close()
}
