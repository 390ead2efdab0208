package terminal

import "errors"

// ErrNotATerminal is returned by Init when the input stream is not
// attached to a terminal.
var ErrNotATerminal = errors.New("terminal: input is not a terminal")

// Backend abstracts platform-specific terminal plumbing (raw mode, size
// queries, resize signals) behind a small interface the session drives.
type Backend interface {
	// Init switches the input stream to raw mode
	Init() error

	// Fini restores the saved terminal state; safe to call repeatedly
	Fini()

	// Size returns the current terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input arrives, stop closes, or an error occurs.
	// A nil slice with nil error means stop or EOF.
	Read(stop <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback invoked with the new
	// dimensions on every terminal resize
	SetResizeHandler(handler func(width, height int))
}
