package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/lixenwraith/termcore/render"
)

// ResizeEvent reports new terminal dimensions
type ResizeEvent struct {
	Width  int
	Height int
}

// Config controls session construction
type Config struct {
	// Input and Output default to os.Stdin and os.Stdout
	Input  *os.File
	Output *os.File

	// Capabilities skips detection when non-nil
	Capabilities *Capabilities

	// ModeOverride forces the render mode instead of deriving it
	ModeOverride *render.Mode

	// Detect configures capability detection when Capabilities is nil
	Detect Options
}

// Terminal is a full-screen session: raw mode, alternate screen, a
// front/back buffer pair, and diff-based flushing. One goroutine owns the
// back buffer and drives the paint-flush cycle; the session serializes
// everything else.
type Terminal struct {
	backend Backend
	caps    Capabilities
	mode    render.Mode
	out     *bufio.Writer

	front     *render.CellBuffer
	back      *render.CellBuffer
	forceFull bool

	resizeCh chan ResizeEvent

	mu            sync.Mutex
	initialized   bool
	finalized     bool
	mouseMode     MouseMode
	cursorVisible bool
}

// New builds a session. Capability detection runs here, before raw mode,
// so a caller can still inspect Capabilities() if Init later fails.
func New(cfg Config) *Terminal {
	var caps Capabilities
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	} else {
		det := cfg.Detect
		if det.Input == nil {
			det.Input = cfg.Input
		}
		if det.Output == nil {
			det.Output = cfg.Output
		}
		caps = Detect(det)
	}

	var mode render.Mode
	if cfg.ModeOverride != nil {
		mode = DeriveMode(caps, *cfg.ModeOverride)
	} else {
		mode = DeriveMode(caps)
	}

	b := newBackend(cfg.Input, cfg.Output)
	return &Terminal{
		backend:  b,
		caps:     caps,
		mode:     mode,
		out:      bufio.NewWriterSize(writerOf(b), 32*1024),
		resizeCh: make(chan ResizeEvent, 1),
	}
}

func writerOf(b Backend) io.Writer {
	return backendWriter{b}
}

type backendWriter struct{ b Backend }

func (w backendWriter) Write(p []byte) (int, error) { return w.b.Write(p) }

// Capabilities returns the detection snapshot for this session
func (t *Terminal) Capabilities() Capabilities { return t.caps }

// Mode returns the active render mode
func (t *Terminal) Mode() render.Mode { return t.mode }

// Init enters raw mode and the alternate screen and allocates the buffer
// pair at the current terminal size
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	front, err := render.NewCellBuffer(w, h)
	if err != nil {
		t.backend.Fini()
		return err
	}
	back, err := render.NewCellBuffer(w, h)
	if err != nil {
		t.backend.Fini()
		return err
	}
	t.front, t.back = front, back

	t.backend.SetResizeHandler(func(w, h int) {
		ev := ResizeEvent{Width: w, Height: h}
		select {
		case t.resizeCh <- ev:
		default:
			// Drain and replace so the latest size is always pending
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	t.out.Write(csiAltScreenEnter)
	t.out.Write(csiCursorHide)
	t.out.Write(csiAutoWrapOff)
	t.out.Write(csiClear)
	t.out.Flush()
	t.cursorVisible = false
	t.forceFull = true

	t.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.mouseMode != MouseModeNone {
		t.out.Write(csiMouseMotionOff)
		t.out.Write(csiMouseDragOff)
		t.out.Write(csiMouseClickOff)
		t.out.Write(csiMouseSGROff)
	}
	t.out.Write(csiCursorShow)
	t.out.Write(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer gets it
	t.out.Write(csiAutoWrapOn)
	t.out.Write(csiSGR0)
	t.out.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Size returns the current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// ResizeChan delivers resize events; the render loop should call Resize
// with the new dimensions when one arrives
func (t *Terminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// Buffer returns the back buffer the caller paints into. After a Flush
// the returned buffer holds stale content; repaint it fully each frame.
func (t *Terminal) Buffer() *render.CellBuffer {
	return t.back
}

// Flush diffs the back buffer against the last flushed frame, writes the
// changed spans, and swaps the pair. A frame whose dimensions no longer
// match the terminal is dropped; the pending resize event will follow.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	w, h := t.backend.Size()
	if w != t.back.Width() || h != t.back.Height() {
		return nil
	}

	prev := t.front
	if t.forceFull {
		t.out.Write(csiClear)
		prev = nil
		t.forceFull = false
	}

	if _, err := render.Diff(prev, t.back, t.out, t.diffOptions()); err != nil {
		return err
	}
	t.front, t.back = t.back, t.front
	return nil
}

func (t *Terminal) diffOptions() render.DiffOptions {
	return render.DiffOptions{
		Color:       t.mode.ColorMode(),
		Hyperlinks:  t.caps.HyperlinksOSC8,
		SyncUpdates: t.caps.SynchronizedOutput && t.caps.Confidence == ConfidenceVerified,
	}
}

// Resize reallocates both buffers and forces a full repaint on the next
// Flush. Prior content is not preserved.
func (t *Terminal) Resize(width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	if err := t.front.Resize(width, height); err != nil {
		return err
	}
	if err := t.back.Resize(width, height); err != nil {
		return err
	}
	t.forceFull = true
	return nil
}

// Sync forces a full repaint on the next Flush
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forceFull = true
}

// SetCursorVisible shows or hides the hardware cursor
func (t *Terminal) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || t.cursorVisible == visible {
		return
	}
	t.cursorVisible = visible
	if visible {
		t.out.Write(csiCursorShow)
	} else {
		t.out.Write(csiCursorHide)
	}
	t.out.Flush()
}

// Read blocks until terminal input arrives or stop closes
func (t *Terminal) Read(stop <-chan struct{}) ([]byte, error) {
	return t.backend.Read(stop)
}

// SetMouseMode switches mouse reporting. Gated on detected support: a
// terminal without SGR mouse encoding gets no reporting at all, because
// legacy X10 coordinates break beyond column 223.
func (t *Terminal) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	if !t.caps.MouseSGR {
		mode = MouseModeNone
	}

	old := t.mouseMode
	if old == mode {
		return nil
	}
	t.mouseMode = mode

	if old&MouseModeMotion != 0 && mode&MouseModeMotion == 0 {
		t.out.Write(csiMouseMotionOff)
	}
	if old&MouseModeDrag != 0 && mode&MouseModeDrag == 0 {
		t.out.Write(csiMouseDragOff)
	}
	if old&MouseModeClick != 0 && mode&MouseModeClick == 0 {
		t.out.Write(csiMouseClickOff)
	}
	if mode == MouseModeNone && old != MouseModeNone {
		t.out.Write(csiMouseSGROff)
	}

	if mode != MouseModeNone && old == MouseModeNone {
		t.out.Write(csiMouseSGROn)
	}
	if mode&MouseModeClick != 0 && old&MouseModeClick == 0 {
		t.out.Write(csiMouseClickOn)
	}
	if mode&MouseModeDrag != 0 && old&MouseModeDrag == 0 {
		t.out.Write(csiMouseDragOn)
	}
	if mode&MouseModeMotion != 0 && old&MouseModeMotion == 0 {
		t.out.Write(csiMouseMotionOn)
	}
	return t.out.Flush()
}

// SetFocusEvents toggles focus in/out reporting when supported
func (t *Terminal) SetFocusEvents(on bool) error {
	return t.setPrivateMode(t.caps.FocusEvents, on, csiFocusOn, csiFocusOff)
}

// SetBracketedPaste toggles bracketed paste when supported
func (t *Terminal) SetBracketedPaste(on bool) error {
	return t.setPrivateMode(t.caps.BracketedPaste, on, csiPasteOn, csiPasteOff)
}

func (t *Terminal) setPrivateMode(supported, on bool, seqOn, seqOff []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || !supported {
		return nil
	}
	if on {
		t.out.Write(seqOn)
	} else {
		t.out.Write(seqOff)
	}
	return t.out.Flush()
}

// EmergencyReset writes the sequences that restore a sane terminal to w.
// Call from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios
	resetTermios()
}
