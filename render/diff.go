package render

import (
	"bufio"
	"io"
)

// DirtySpan is a maximal contiguous run of changed columns in one row.
// EndCol is exclusive. Spans are produced fresh each diff and never persisted.
type DirtySpan struct {
	Row      int
	StartCol int
	EndCol   int
}

// DiffOptions controls how the diff byte stream is encoded
type DiffOptions struct {
	// Color downsamples every emitted color to what the terminal handles
	Color ColorMode

	// Hyperlinks enables OSC 8 emission for cells carrying a Link
	Hyperlinks bool

	// SyncUpdates wraps the frame in DEC 2026 begin/end fences; only set
	// this when the terminal verified support
	SyncUpdates bool
}

// Diff compares prev and cur and writes the minimal escape stream that
// transforms a terminal showing prev into one showing cur. Neither buffer is
// mutated; the caller swaps them afterwards. Rows with no differences emit
// nothing, and Diff(x, x) emits nothing at all.
//
// When dimensions differ (resize), every cell of cur is treated as changed
// and the whole frame is repainted.
func Diff(prev, cur *CellBuffer, w io.Writer, opts DiffOptions) ([]DirtySpan, error) {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriterSize(w, 32*1024)
	}

	full := prev == nil || prev.width != cur.width || prev.height != cur.height

	e := sgrEmitter{w: bw, mode: opts.Color, hyperlinks: opts.Hyperlinks}
	var spans []DirtySpan
	cursorX, cursorY := -1, -1
	emitted := false

	for y := 0; y < cur.height; y++ {
		curRow := cur.row(y)
		var prevRow []Cell
		if !full {
			prevRow = prev.row(y)
		}

		x := 0
		for x < cur.width {
			if !full && curRow[x] == prevRow[x] {
				x++
				continue
			}

			// Span starts here; snap onto the wide base so a pair is never
			// repainted from its middle
			start := x
			if curRow[start].IsContinuation() && start > 0 {
				start--
			}
			end := x + 1
			for end < cur.width && (full || curRow[end] != prevRow[end]) {
				end++
			}
			spans = append(spans, DirtySpan{Row: y, StartCol: start, EndCol: end})

			if !emitted {
				if opts.SyncUpdates {
					bw.Write(syncBegin)
				}
				emitted = true
			}

			// Position cursor once per span; short forward hops on the same
			// row use CUF to stay non-destructive
			if cursorY == y && cursorX >= 0 && start >= cursorX {
				writeCursorForward(bw, start-cursorX)
			} else {
				writeCursorPos(bw, start, y)
			}
			cursorX = start
			cursorY = y

			for i := start; i < end; i++ {
				c := curRow[i]
				if c.IsContinuation() {
					// Covered by the wide base already written
					continue
				}
				e.apply(c.Style, c.Link)
				if c.Content == "" {
					bw.WriteByte(' ')
				} else {
					bw.WriteString(c.Content)
				}
				cursorX += int(c.Width)
			}

			x = end
		}
	}

	if emitted {
		e.close()
		bw.Write(csiSGR0)
		if opts.SyncUpdates {
			bw.Write(syncEnd)
		}
	}

	if err := bw.Flush(); err != nil {
		return spans, err
	}
	return spans, nil
}

// sgrEmitter tracks the last emitted style so redundant SGR sequences are
// coalesced away within a frame
type sgrEmitter struct {
	w          *bufio.Writer
	mode       ColorMode
	hyperlinks bool

	valid bool
	style Style
	link  Link
}

// apply emits the sequences needed to switch the terminal to style and link
func (e *sgrEmitter) apply(style Style, link Link) {
	style = style.Downsample(e.mode)
	if !e.valid || style != e.style {
		e.writeStyle(style)
		e.style = style
		e.valid = true
	}
	if e.hyperlinks && link != e.link {
		if e.link.URL != "" {
			e.w.Write(oscLinkClose)
		}
		if link.URL != "" {
			writeLinkOpen(e.w, link)
		}
		e.link = link
	}
}

// close terminates any open hyperlink at frame end
func (e *sgrEmitter) close() {
	if e.hyperlinks && e.link.URL != "" {
		e.w.Write(oscLinkClose)
		e.link = Link{}
	}
}

func (e *sgrEmitter) writeStyle(s Style) {
	w := e.w

	// Attribute or underline change forces a rebuild from reset; pure color
	// changes emit the minimal sequence
	rebuild := !e.valid ||
		s.Attrs != e.style.Attrs ||
		s.Underline != e.style.Underline ||
		s.UnderlineColor != e.style.UnderlineColor

	w.Write(csi)
	if rebuild {
		w.WriteByte('0')
		if s.Attrs&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if s.Attrs&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if s.Attrs&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if s.Attrs&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		if s.Attrs&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}
		if s.Attrs&AttrStrikethrough != 0 {
			w.Write([]byte(";9"))
		}
		e.writeUnderline(s)
		if !s.Fg.IsDefault() {
			w.WriteByte(';')
			e.writeColorParams(s.Fg, false)
		}
		if !s.Bg.IsDefault() {
			w.WriteByte(';')
			e.writeColorParams(s.Bg, true)
		}
	} else {
		first := true
		if s.Fg != e.style.Fg {
			first = false
			if s.Fg.IsDefault() {
				w.Write([]byte("39"))
			} else {
				e.writeColorParams(s.Fg, false)
			}
		}
		if s.Bg != e.style.Bg {
			if !first {
				w.WriteByte(';')
			}
			if s.Bg.IsDefault() {
				w.Write([]byte("49"))
			} else {
				e.writeColorParams(s.Bg, true)
			}
		}
	}
	w.WriteByte('m')
}

// writeUnderline emits the underline style and color parameters as part of
// a rebuild sequence
func (e *sgrEmitter) writeUnderline(s Style) {
	w := e.w
	switch s.Underline {
	case UnderlineNone:
		// Reset already cleared it
	case UnderlineSingle:
		w.Write([]byte(";4"))
	case UnderlineDouble:
		w.Write([]byte(";4:2"))
	case UnderlineCurly:
		w.Write([]byte(";4:3"))
	case UnderlineDotted:
		w.Write([]byte(";4:4"))
	case UnderlineDashed:
		w.Write([]byte(";4:5"))
	}
	if s.Underline != UnderlineNone && !s.UnderlineColor.IsDefault() {
		c := s.UnderlineColor
		switch {
		case c.IsRGB():
			w.Write([]byte(";58;2;"))
			r, g, b := c.RGBValues()
			writeInt(w, int(r))
			w.WriteByte(';')
			writeInt(w, int(g))
			w.WriteByte(';')
			writeInt(w, int(b))
		default:
			w.Write([]byte(";58;5;"))
			writeInt(w, int(c.Index()))
		}
	}
}

// writeColorParams writes the SGR parameters for one color without the CSI
// prefix or trailing m
func (e *sgrEmitter) writeColorParams(c Color, background bool) {
	w := e.w
	switch {
	case c.IsANSI():
		n := int(c.Index())
		base := 30
		if background {
			base = 40
		}
		if n >= 8 {
			base += 60
			n -= 8
		}
		writeInt(w, base+n)
	case c.IsPalette():
		if background {
			w.Write(csiBg256)
		} else {
			w.Write(csiFg256)
		}
		writeInt(w, int(c.Index()))
	case c.IsRGB():
		if background {
			w.Write(csiBgRGB)
		} else {
			w.Write(csiFgRGB)
		}
		r, g, b := c.RGBValues()
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
	}
}
