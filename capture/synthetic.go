package capture

// Synthetic produces a moving diagonal gradient. It needs no hardware and
// is deterministic, which makes it useful for tests and demos.
type Synthetic struct {
	frame Frame
	tick  int
	// Fail, when set, is returned by Capture after Limit frames.
	Fail  error
	Limit int
}

// OpenSynthetic returns a Synthetic source at the configured resolution.
func OpenSynthetic(cfg Config) (Source, error) {
	return NewSynthetic(cfg.Width, cfg.Height), nil
}

// NewSynthetic returns a Synthetic source of the given size.
func NewSynthetic(width, height int) *Synthetic {
	return &Synthetic{frame: NewFrame(width, height)}
}

// Capture renders the next gradient frame.
func (s *Synthetic) Capture() (Frame, error) {
	if s.Fail != nil && s.tick >= s.Limit {
		return Frame{}, s.Fail
	}
	w, h := s.frame.Width, s.frame.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x + y + s.tick*8) * 255 / max(1, w+h))
			s.frame.Set(x, y, v, uint8(255*y/max(1, h)), 255-v)
		}
	}
	s.tick++
	return s.frame, nil
}

// Frames returns how many frames have been captured.
func (s *Synthetic) Frames() int { return s.tick }

// Close is a no-op.
func (s *Synthetic) Close() error { return nil }
