package render

// Attr represents boolean text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrDim           Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrBlink         Attr = 1 << 3
	AttrReverse       Attr = 1 << 4
	AttrStrikethrough Attr = 1 << 5
)

// UnderlineStyle selects the underline rendition for a cell
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Style holds the full visual styling of a cell. The zero value is the
// terminal default rendition. Styles are compared with ==.
type Style struct {
	Fg             Color
	Bg             Color
	Attrs          Attr
	Underline      UnderlineStyle
	UnderlineColor Color
}

// StyleDefault is the zero-value terminal default style
var StyleDefault = Style{}

// WithFg returns a copy of s with the foreground replaced
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy of s with the background replaced
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithAttrs returns a copy of s with attributes replaced
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs = a
	return s
}

// WithUnderline returns a copy of s with the underline style and color set
func (s Style) WithUnderline(u UnderlineStyle, c Color) Style {
	s.Underline = u
	s.UnderlineColor = c
	return s
}

// Downsample returns s with all colors reduced to what mode can express.
// Mono additionally keeps only attributes every terminal understands.
func (s Style) Downsample(mode ColorMode) Style {
	s.Fg = s.Fg.Downsample(mode)
	s.Bg = s.Bg.Downsample(mode)
	s.UnderlineColor = s.UnderlineColor.Downsample(mode)
	if mode == ColorModeMono && s.Underline > UnderlineSingle {
		s.Underline = UnderlineSingle
	}
	return s
}
