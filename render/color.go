package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates how many colors the output stream may use
type ColorMode uint8

const (
	ColorModeMono      ColorMode = iota // no color sequences at all
	ColorMode16                         // 16-color ANSI
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the mode name
func (m ColorMode) String() string {
	switch m {
	case ColorModeMono:
		return "mono"
	case ColorMode16:
		return "16"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorANSI
	colorPalette
	colorRGB
)

// Color identifies a cell color in one of four forms: terminal default,
// ANSI 0-15, xterm palette 0-255, or 24-bit RGB.
// The zero value is the terminal default color.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// ColorDefault is the terminal's own default color
var ColorDefault = Color{}

// ANSI returns one of the 16 basic ANSI colors (n masked to 0-15)
func ANSI(n uint8) Color {
	return Color{kind: colorANSI, index: n & 0x0F}
}

// Palette returns an xterm-256 palette color
func Palette(n uint8) Color {
	return Color{kind: colorPalette, index: n}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsDefault reports whether c is the terminal default color
func (c Color) IsDefault() bool { return c.kind == colorDefault }

// IsANSI reports whether c is a basic 16-color ANSI color
func (c Color) IsANSI() bool { return c.kind == colorANSI }

// IsPalette reports whether c is a 256-palette color
func (c Color) IsPalette() bool { return c.kind == colorPalette }

// IsRGB reports whether c is a 24-bit color
func (c Color) IsRGB() bool { return c.kind == colorRGB }

// Index returns the ANSI or palette index; 0 for default and RGB colors
func (c Color) Index() uint8 { return c.index }

// RGBValues returns the 8-bit channels. ANSI and palette colors report
// their nominal xterm values; default reports black.
func (c Color) RGBValues() (r, g, b uint8) {
	switch c.kind {
	case colorRGB:
		return c.r, c.g, c.b
	case colorANSI:
		v := ansi16RGB[c.index]
		return v[0], v[1], v[2]
	case colorPalette:
		return paletteRGB(c.index)
	default:
		return 0, 0, 0
	}
}

// Downsample converts c to a color expressible in mode. Default colors pass
// through every mode; mono drops all colors to default.
func (c Color) Downsample(mode ColorMode) Color {
	if c.kind == colorDefault {
		return c
	}
	switch mode {
	case ColorModeTrueColor:
		return c
	case ColorMode256:
		if c.kind == colorRGB {
			return Palette(rgbTo256(c.r, c.g, c.b))
		}
		return c
	case ColorMode16:
		if c.kind == colorANSI {
			return c
		}
		r, g, b := c.RGBValues()
		return ANSI(nearestANSI16(r, g, b))
	default:
		return ColorDefault
	}
}

// Standard xterm values for the 16 basic colors
var ansi16RGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level, computed at init
var cubeIndex [256]uint8

// ansi16Lab holds the 16 basic colors pre-converted for perceptual matching
var ansi16Lab [16]colorful.Color

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := absInt(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}

	for i, v := range ansi16RGB {
		ansi16Lab[i] = colorful.Color{
			R: float64(v[0]) / 255.0,
			G: float64(v[1]) / 255.0,
			B: float64(v[2]) / 255.0,
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rgbTo256 finds the nearest 256-color palette index for an RGB value,
// choosing between the 6x6x6 cube and the grayscale ramp
func rgbTo256(r, g, b uint8) uint8 {
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(absInt(int(r)-gray), absInt(int(g)-gray), absInt(int(b)-gray))

	cubeR := cubeIndex[r]
	cubeG := cubeIndex[g]
	cubeB := cubeIndex[b]
	cube := 16 + 36*cubeR + 6*cubeG + cubeB

	if maxDiff >= 10 {
		return cube
	}

	// Near-grayscale: the 24-step ramp (232-255, luminance 8..238) may be
	// a closer match than the cube
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}
	grayIdx := 232 + (gray-8)/10
	if grayIdx > 255 {
		grayIdx = 255
	}
	grayLevel := 8 + (grayIdx-232)*10

	grayDist := absInt(int(r)-grayLevel) + absInt(int(g)-grayLevel) + absInt(int(b)-grayLevel)
	cubeDist := absInt(int(r)-int(cubeValues[cubeR])) +
		absInt(int(g)-int(cubeValues[cubeG])) +
		absInt(int(b)-int(cubeValues[cubeB]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// nearestANSI16 finds the perceptually closest basic ANSI color using
// CIE Lab distance
func nearestANSI16(r, g, b uint8) uint8 {
	target := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	best := 0
	bestDist := target.DistanceLab(ansi16Lab[0])
	for i := 1; i < 16; i++ {
		d := target.DistanceLab(ansi16Lab[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// paletteRGB returns the nominal xterm RGB for a 256-palette index
func paletteRGB(n uint8) (r, g, b uint8) {
	switch {
	case n < 16:
		v := ansi16RGB[n]
		return v[0], v[1], v[2]
	case n < 232:
		i := n - 16
		return cubeValues[i/36], cubeValues[(i/6)%6], cubeValues[i%6]
	default:
		level := uint8(8 + int(n-232)*10)
		return level, level, level
	}
}
