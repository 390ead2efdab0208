package render

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during diff)
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// Color prefixes
	csiFg256 = []byte("38;5;")
	csiBg256 = []byte("48;5;")
	csiFgRGB = []byte("38;2;")
	csiBgRGB = []byte("48;2;")

	// OSC 8 hyperlinks
	oscLinkClose = []byte("\x1b]8;;\x1b\\")

	// DEC 2026 synchronized update fences
	syncBegin = []byte("\x1b[?2026h")
	syncEnd   = []byte("\x1b[?2026l")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

// writeLinkOpen writes an OSC 8 hyperlink opener
func writeLinkOpen(w *bufio.Writer, link Link) {
	w.Write([]byte("\x1b]8;"))
	if link.ID != "" {
		w.Write([]byte("id="))
		w.WriteString(link.ID)
	}
	w.WriteByte(';')
	w.WriteString(link.URL)
	w.Write([]byte("\x1b\\"))
}
