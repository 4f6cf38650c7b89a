// Package terminal is the output side of the renderer: a writer that can
// also clear the screen.
package terminal

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal writes rendered text and clears the screen between frames.
type Terminal struct {
	out *termenv.Output
	w   io.Writer
}

// New wraps w. Color detection is left to the renderer, which always
// emits truecolor escapes when asked to.
func New(w io.Writer) *Terminal {
	return &Terminal{
		out: termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor)),
		w:   w,
	}
}

// Stdout returns a Terminal on the process's standard output.
func Stdout() *Terminal {
	return New(os.Stdout)
}

// Clear erases the display and moves the cursor to the top left corner.
func (t *Terminal) Clear() error {
	t.out.ClearScreen()
	return nil
}

// Write emits s unchanged.
func (t *Terminal) Write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

// WriteLine emits s followed by a newline.
func (t *Terminal) WriteLine(s string) error {
	return t.Write(s + "\n")
}

// IsTerminal reports whether the Terminal writes to a TTY.
func (t *Terminal) IsTerminal() bool {
	f, ok := t.w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
