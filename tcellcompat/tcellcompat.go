// Package tcellcompat bridges render styles to tcell for applications
// migrating off a tcell screen. Conversions are lossy only where tcell
// has no representation (underline styles beyond single collapse to
// plain underline).
package tcellcompat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcore/render"
)

// ToTcellColor converts a render color to tcell's color space
func ToTcellColor(c render.Color) tcell.Color {
	switch {
	case c.IsANSI(), c.IsPalette():
		return tcell.PaletteColor(int(c.Index()))
	case c.IsRGB():
		r, g, b := c.RGBValues()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// FromTcellColor converts a tcell color to the render tagged union
func FromTcellColor(c tcell.Color) render.Color {
	if c == tcell.ColorDefault {
		return render.ColorDefault
	}
	if c&tcell.ColorIsRGB != 0 {
		r, g, b := c.RGB()
		return render.RGB(uint8(r), uint8(g), uint8(b))
	}
	n := int(c - tcell.ColorValid)
	switch {
	case n >= 0 && n < 16:
		return render.ANSI(uint8(n))
	case n >= 16 && n < 256:
		return render.Palette(uint8(n))
	default:
		r, g, b := c.RGB()
		return render.RGB(uint8(r), uint8(g), uint8(b))
	}
}

// ToTcellStyle converts a render style to a tcell style
func ToTcellStyle(s render.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(ToTcellColor(s.Fg)).
		Background(ToTcellColor(s.Bg))

	st = st.Bold(s.Attrs&render.AttrBold != 0).
		Dim(s.Attrs&render.AttrDim != 0).
		Italic(s.Attrs&render.AttrItalic != 0).
		Blink(s.Attrs&render.AttrBlink != 0).
		Reverse(s.Attrs&render.AttrReverse != 0).
		StrikeThrough(s.Attrs&render.AttrStrikethrough != 0).
		Underline(s.Underline != render.UnderlineNone)
	return st
}

// FromTcellStyle converts a tcell style to a render style
func FromTcellStyle(st tcell.Style) render.Style {
	fg, bg, attrs := st.Decompose()

	var a render.Attr
	if attrs&tcell.AttrBold != 0 {
		a |= render.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		a |= render.AttrDim
	}
	if attrs&tcell.AttrItalic != 0 {
		a |= render.AttrItalic
	}
	if attrs&tcell.AttrBlink != 0 {
		a |= render.AttrBlink
	}
	if attrs&tcell.AttrReverse != 0 {
		a |= render.AttrReverse
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		a |= render.AttrStrikethrough
	}

	s := render.Style{
		Fg:    FromTcellColor(fg),
		Bg:    FromTcellColor(bg),
		Attrs: a,
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Underline = render.UnderlineSingle
	}
	return s
}
