package vid2ascii

import (
	"context"
	"time"

	"github.com/wbrown/vid2ascii/capture"
)

// DefaultFrameDelay is the pause between camera frames.
const DefaultFrameDelay = 20 * time.Millisecond

// FrameSource yields camera frames one at a time.
type FrameSource interface {
	Capture() (capture.Frame, error)
}

// Screen is where rendered frames go.
type Screen interface {
	Clear() error
	Write(s string) error
}

// Stream runs the camera loop: clear the screen, capture a frame, render
// it, then sleep for delay. It returns the first capture or write error, or
// nil once ctx is cancelled. There is no frame dropping and no correction
// when a frame takes longer than delay.
func Stream(
	ctx context.Context,
	src FrameSource,
	screen Screen,
	r *Renderer,
	delay time.Duration,
) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := screen.Clear(); err != nil {
			return err
		}
		frame, err := src.Capture()
		if err != nil {
			return err
		}
		if err := screen.Write(r.RenderFrame(frame)); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}
