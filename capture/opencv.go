package capture

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/wbrown/vid2ascii/internal/log"
)

// OpenCV captures through OpenCV's VideoCapture, which accepts device
// paths, numeric indices and stream URLs. Frames always arrive as BGR and
// are converted to RGBA.
type OpenCV struct {
	cam  *gocv.VideoCapture
	bgr  gocv.Mat
	rgba gocv.Mat
}

// OpenOpenCV opens cfg.Device and requests the configured resolution and
// frame rate. The pixel format is decided by OpenCV.
func OpenOpenCV(cfg Config) (Source, error) {
	var device interface{} = cfg.Device
	if id, err := strconv.Atoi(cfg.Device); err == nil {
		device = id
	}
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceOpen, cfg.Device, err)
	}
	if !cam.IsOpened() {
		cam.Close()
		return nil, fmt.Errorf("%w: %s", ErrDeviceOpen, cfg.Device)
	}

	cam.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cam.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	if cfg.FrameRate > 0 {
		cam.Set(gocv.VideoCaptureFPS, float64(cfg.FrameRate))
	}
	log.Debug("opencv capture opened",
		"device", cfg.Device,
		"width", cam.Get(gocv.VideoCaptureFrameWidth),
		"height", cam.Get(gocv.VideoCaptureFrameHeight),
		"fps", cam.Get(gocv.VideoCaptureFPS))

	return &OpenCV{
		cam:  cam,
		bgr:  gocv.NewMat(),
		rgba: gocv.NewMat(),
	}, nil
}

// Capture reads the next frame. The returned buffer is a copy owned by the
// caller.
func (o *OpenCV) Capture() (Frame, error) {
	if ok := o.cam.Read(&o.bgr); !ok {
		return Frame{}, fmt.Errorf("%w: device closed", ErrCapture)
	}
	if o.bgr.Empty() {
		return Frame{}, fmt.Errorf("%w: empty frame", ErrCapture)
	}
	gocv.CvtColor(o.bgr, &o.rgba, gocv.ColorBGRToRGBA)
	return Frame{
		Data:   o.rgba.ToBytes(),
		Width:  o.rgba.Cols(),
		Height: o.rgba.Rows(),
	}, nil
}

// Close releases the Mats and the device.
func (o *OpenCV) Close() error {
	if err := o.bgr.Close(); err != nil {
		return err
	}
	if err := o.rgba.Close(); err != nil {
		return err
	}
	return o.cam.Close()
}
