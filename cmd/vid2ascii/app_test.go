package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/wbrown/vid2ascii/capture"
	"github.com/wbrown/vid2ascii/imageutil"
)

const clearScreen = "\x1b[2J\x1b[1;1H"

type harness struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	slept  []time.Duration
	opened []capture.Config
	loaded []string

	img     *imageutil.NRGBAImage
	openErr error
	source  capture.Source
}

func newHarness() *harness {
	return &harness{
		img: imageutil.CreateSolidImage(4, 4, imageutil.RGB{R: 255}),
	}
}

func (h *harness) run(args ...string) error {
	app := newApp(env{
		stdout: &h.stdout,
		stderr: &h.stderr,
		opener: func(backend string) (capture.Opener, error) {
			if _, err := capture.OpenerFor(backend); err != nil {
				return nil, err
			}
			return func(cfg capture.Config) (capture.Source, error) {
				h.opened = append(h.opened, cfg)
				if h.openErr != nil {
					return nil, h.openErr
				}
				return h.source, nil
			}, nil
		},
		load: func(path string) (*imageutil.NRGBAImage, error) {
			h.loaded = append(h.loaded, path)
			if h.img == nil {
				return nil, fmt.Errorf("%w: %s", imageutil.ErrDecode, path)
			}
			return h.img, nil
		},
		sleep: func(d time.Duration) { h.slept = append(h.slept, d) },
	})
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app.Run(append([]string{"vid2ascii"}, args...))
}

func requireExit(t *testing.T, err error, msg string) {
	t.Helper()
	var exit cli.ExitCoder
	require.True(t, errors.As(err, &exit), "expected exit error, got %v", err)
	assert.Equal(t, 1, exit.ExitCode())
	assert.Equal(t, msg, exit.Error())
}

func TestNoArgsPrintsHelp(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run())
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "No source args passed.\n"))
	assert.Contains(t, out, "vid2ascii --video /dev/video0")
	assert.Contains(t, out, "bgcolor")
}

func TestMalformedInvocations(t *testing.T) {
	tests := [][]string{
		{"--image", "a.png", "stray"},
		{"--image", "a.png", "--video", "/dev/video0"},
		{"--image", "a.png", "--color", "purple"},
		{"--image", "a.png", "--color", "bgcolor", "extra"},
		{"--image", "a.png", "--ramp", "braille"},
		{"--image", "a.png", "--buckets", "quadratic"},
		{"--video", "/dev/video0", "--backend", "gstreamer"},
		{"--video", "/dev/video0", "--color", "--backend", "gstreamer"},
		{"--video", "/dev/video0", "--color", "bgcolor", "--backend", "gstreamer"},
		{"--color", "bgcolor", "--image", "a.png"},
		{"--color"},
		{"--image"},
		{"--bogus"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			h := newHarness()
			require.NoError(t, h.run(args...))
			assert.True(t, strings.HasPrefix(h.stdout.String(), "Invalid usage\n"),
				"got %q", h.stdout.String())
			assert.Empty(t, h.loaded)
			assert.Empty(t, h.opened)
			assert.Empty(t, h.slept)
		})
	}
}

func TestImageNoColor(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("--image", "red.png"))
	assert.Equal(t, "gg\ngg\n", h.stdout.String())
	assert.Equal(t, []string{"red.png"}, h.loaded)
	assert.Empty(t, h.slept)
}

func TestImageForegroundColor(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("--image", "red.png", "--color"))

	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "\n\n NOTE: Colored Rendering will be choppy\n"))
	assert.Contains(t, out, "\x1b[38;2;255;0;0mg\x1b[38;2;255;0;0mg\x1b[38;2;255;255;255m\n")
	assert.Equal(t, []time.Duration{colorNoticeDelay}, h.slept)
}

func TestImageBackgroundColor(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("--image", "red.png", "--color", "bgcolor"))

	out := h.stdout.String()
	assert.Contains(t, out, "NOTE: Colored Rendering will be the choppiest")
	assert.Contains(t, out, "\x1b[48;2;255;0;0m \x1b[48;2;255;0;0m \x1b[38;2;255;255;255;48;2;0;0;0m\n")
	rendered := strings.SplitN(out, "choppiest\n", 2)[1]
	assert.NotContains(t, rendered, "g")
}

func TestImageRampAndBuckets(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("--ramp", "inverted", "--image", "red.png"))
	assert.Equal(t, "BB\nBB\n", h.stdout.String())

	h = newHarness()
	require.NoError(t, h.run("--buckets", "uniform", "--image", "red.png"))
	assert.Equal(t, "aa\naa\n", h.stdout.String())
}

func TestImageDecodeFailure(t *testing.T) {
	h := newHarness()
	h.img = nil
	err := h.run("--image", "missing.png")
	requireExit(t, err, "Error opening image: cannot decode image: missing.png")
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "image decode failed")
}

func TestCameraOpenFailure(t *testing.T) {
	h := newHarness()
	h.openErr = fmt.Errorf("%w: /dev/video0: busy", capture.ErrDeviceOpen)

	err := h.run("--video", "/dev/video0")
	requireExit(t, err, "Error opening webcam")
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "device=/dev/video0 backend=v4l2")
	require.Len(t, h.opened, 1)
	assert.Equal(t, capture.DefaultConfig("/dev/video0"), h.opened[0])
}

func TestCameraLoopUntilCaptureFailure(t *testing.T) {
	src := capture.NewSynthetic(8, 8)
	src.Fail = fmt.Errorf("%w: unplugged", capture.ErrCapture)
	src.Limit = 2

	h := newHarness()
	h.source = src
	err := h.run("--video", "/dev/video0", "--delay", "1ms")
	requireExit(t, err, "Error reading frame")

	out := h.stdout.String()
	assert.Equal(t, 3, strings.Count(out, clearScreen))
	frames := strings.Split(out, clearScreen)
	assert.Equal(t, "", frames[0])
	for _, f := range frames[1:3] {
		assert.Equal(t, 2, strings.Count(f, "\n"))
	}
	assert.Equal(t, "", frames[3])
	assert.Contains(t, h.stderr.String(), "not a terminal")
}

func TestCameraBackgroundColorFrames(t *testing.T) {
	src := capture.NewSynthetic(4, 4)
	src.Fail = fmt.Errorf("%w: done", capture.ErrCapture)
	src.Limit = 1

	h := newHarness()
	h.source = src
	err := h.run("--video", "/dev/video0", "--delay", "0s", "--color", "bgcolor")
	requireExit(t, err, "Error reading frame")
	assert.Contains(t, h.stdout.String(), "\x1b[48;2;")
}
