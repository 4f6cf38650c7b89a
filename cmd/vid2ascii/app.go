package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wbrown/vid2ascii"
	"github.com/wbrown/vid2ascii/capture"
	"github.com/wbrown/vid2ascii/imageutil"
	"github.com/wbrown/vid2ascii/internal/log"
	"github.com/wbrown/vid2ascii/terminal"
)

const colorNoticeDelay = time.Second

// env is everything the app touches outside its own arguments.
type env struct {
	stdout io.Writer
	stderr io.Writer
	opener func(backend string) (capture.Opener, error)
	load   func(path string) (*imageutil.NRGBAImage, error)
	sleep  func(time.Duration)
}

func defaultEnv() env {
	return env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		opener: capture.OpenerFor,
		load:   imageutil.LoadImage,
		sleep:  time.Sleep,
	}
}

func newApp(e env) *cli.App {
	app := cli.NewApp()

	app.Name = "vid2ascii"
	app.Usage = "render an image or a webcam feed as text"
	app.UsageText = "vid2ascii --video /dev/video0 [--color [bgcolor]]\n" +
		"   vid2ascii --image /path/to/image [--color [bgcolor]]"
	app.Description = "Color options:\n" +
		"   --color           use foreground colors only\n" +
		"   --color bgcolor   use background color\n" +
		"   Omit --color to not use colored rendering."
	app.HideHelpCommand = true
	app.Writer = e.stdout
	app.ErrWriter = e.stderr

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "image",
			Usage: "render the image at `PATH` once",
		},
		&cli.StringFlag{
			Name:  "video",
			Usage: "render the capture `DEVICE` until interrupted",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "use truecolor; follow with bgcolor to paint backgrounds",
		},
		&cli.StringFlag{
			Name:  "ramp",
			Value: vid2ascii.ValueRamp.Name(),
			Usage: "glyph ramp: value or inverted",
		},
		&cli.StringFlag{
			Name:  "buckets",
			Value: "legacy",
			Usage: "intensity bucketing: legacy or uniform",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Value: vid2ascii.DefaultFrameDelay,
			Usage: "pause between camera frames",
		},
		&cli.StringFlag{
			Name:  "backend",
			Value: capture.BackendV4L2,
			Usage: "capture backend: v4l2, opencv or synthetic",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "debug, info, warn or error",
		},
	}

	a := &action{env: e}
	app.Action = a.run
	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		fmt.Fprintln(e.stdout, "Invalid usage")
		return cli.ShowAppHelp(c)
	}

	return app
}

type action struct {
	env
}

// usage prints msg and the help text. Malformed invocations are not
// errors: the process exits normally.
func (a *action) usage(c *cli.Context, msg string) error {
	fmt.Fprintln(a.stdout, msg)
	return cli.ShowAppHelp(c)
}

func (a *action) run(c *cli.Context) error {
	log.InitWriter(a.stderr, c.String("log-level"))

	imagePath, device := c.String("image"), c.String("video")
	if imagePath == "" && device == "" {
		if c.NArg() == 0 && !c.Bool("color") {
			return a.usage(c, "No source args passed.")
		}
		return a.usage(c, "Invalid usage")
	}
	if imagePath != "" && device != "" {
		return a.usage(c, "Invalid usage")
	}

	mode, ok := colorMode(c)
	if !ok {
		return a.usage(c, "Invalid usage")
	}

	renderer, err := a.renderer(c, mode)
	if err != nil {
		return a.usage(c, "Invalid usage")
	}

	var open capture.Opener
	if device != "" {
		if open, err = a.opener(c.String("backend")); err != nil {
			return a.usage(c, "Invalid usage")
		}
	}

	switch mode {
	case vid2ascii.ForegroundColor:
		fmt.Fprintln(a.stdout, "\n\n NOTE: Colored Rendering will be choppy")
		a.sleep(colorNoticeDelay)
	case vid2ascii.BackgroundColor:
		fmt.Fprintln(a.stdout, "\n\nNOTE: Colored Rendering will be the choppiest")
		a.sleep(colorNoticeDelay)
	}

	if imagePath != "" {
		return a.image(imagePath, renderer)
	}
	return a.camera(c, open, device, renderer)
}

// colorMode reads --color and the optional trailing bgcolor argument.
func colorMode(c *cli.Context) (vid2ascii.ColorMode, bool) {
	if !c.Bool("color") {
		return vid2ascii.NoColor, c.NArg() == 0
	}
	switch c.NArg() {
	case 0:
		return vid2ascii.ForegroundColor, true
	case 1:
		mode, err := vid2ascii.ParseColorMode(c.Args().First())
		if err != nil || mode != vid2ascii.BackgroundColor {
			return vid2ascii.NoColor, false
		}
		return mode, true
	}
	return vid2ascii.NoColor, false
}

func (a *action) renderer(c *cli.Context, mode vid2ascii.ColorMode) (*vid2ascii.Renderer, error) {
	ramp, err := vid2ascii.RampByName(c.String("ramp"))
	if err != nil {
		return nil, err
	}
	switch c.String("buckets") {
	case "legacy":
	case "uniform":
		ramp = ramp.WithBucketWidth(vid2ascii.UniformBucketWidth)
	default:
		return nil, fmt.Errorf("unknown bucketing %q", c.String("buckets"))
	}
	return vid2ascii.NewRenderer(
		vid2ascii.WithRamp(ramp),
		vid2ascii.WithColorMode(mode),
	), nil
}

func (a *action) image(path string, r *vid2ascii.Renderer) error {
	img, err := a.load(path)
	if err != nil {
		log.Error("image decode failed", "path", path, "error", err)
		return cli.Exit(fmt.Sprintf("Error opening image: %v", err), 1)
	}
	log.Debug("rendering image",
		"path", path, "width", img.Width(), "height", img.Height(),
		"stride", vid2ascii.ImageStride(img.Height()).Rows)

	if err := terminal.New(a.stdout).Write(r.RenderImage(img)); err != nil {
		return cli.Exit(fmt.Sprintf("Error writing output: %v", err), 1)
	}
	return nil
}

func (a *action) camera(c *cli.Context, open capture.Opener, device string, r *vid2ascii.Renderer) error {
	logger := log.With("device", device, "backend", c.String("backend"))

	src, err := open(capture.DefaultConfig(device))
	if err != nil {
		logger.Error("capture open failed", "error", err)
		return cli.Exit("Error opening webcam", 1)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("capture close failed", "error", err)
		}
	}()

	screen := terminal.New(a.stdout)
	if !screen.IsTerminal() {
		logger.Warn("standard output is not a terminal; frames will not overwrite each other")
	}

	err = vid2ascii.Stream(c.Context, src, screen, r, c.Duration("delay"))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, capture.ErrCapture):
		logger.Error("capture failed", "error", err)
		return cli.Exit("Error reading frame", 1)
	default:
		return cli.Exit(fmt.Sprintf("Error writing output: %v", err), 1)
	}
}
