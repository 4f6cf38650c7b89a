// Package capture acquires raw frames from a camera. Every backend delivers
// frames in the same 4-bytes-per-pixel layout so renderers never see the
// device's native pixel format.
package capture

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDeviceOpen reports that the capture device could not be opened
	// or configured.
	ErrDeviceOpen = errors.New("error opening webcam")

	// ErrCapture reports a failed read on an open device.
	ErrCapture = errors.New("error reading frame")
)

// Config holds the fixed acquisition parameters.
type Config struct {
	// Device is a path such as /dev/video0, or an index for OpenCV.
	Device string
	Width  int
	Height int
	// FrameRate is the requested capture rate in frames per second.
	FrameRate float32
	// PixelFormat is a V4L2 fourcc such as "RGB3" or "YUYV".
	PixelFormat string
	// Timeout bounds a single wait for the next frame.
	Timeout time.Duration
}

// DefaultConfig returns 640x480 RGB3 at 30 fps for device.
func DefaultConfig(device string) Config {
	return Config{
		Device:      device,
		Width:       640,
		Height:      480,
		FrameRate:   30,
		PixelFormat: "RGB3",
		Timeout:     time.Second,
	}
}

// Source is an open capture device. Frames returned by Capture are only
// valid until the next call.
type Source interface {
	Capture() (Frame, error)
	Close() error
}

// Opener opens a Source for a Config.
type Opener func(Config) (Source, error)

// Backend names accepted by OpenerFor.
const (
	BackendV4L2      = "v4l2"
	BackendOpenCV    = "opencv"
	BackendSynthetic = "synthetic"
)

// OpenerFor resolves a backend name. An empty name selects V4L2.
func OpenerFor(backend string) (Opener, error) {
	switch backend {
	case "", BackendV4L2:
		return OpenV4L2, nil
	case BackendOpenCV:
		return OpenOpenCV, nil
	case BackendSynthetic:
		return OpenSynthetic, nil
	}
	return nil, fmt.Errorf("unknown capture backend %q", backend)
}
