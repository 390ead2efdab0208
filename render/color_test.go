package render

import "testing"

func TestColorConstructors(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("Expected zero value to be the default color")
	}
	if c := ANSI(9); !c.IsANSI() || c.Index() != 9 {
		t.Errorf("Expected ANSI index 9, got %d", c.Index())
	}
	if c := Palette(200); !c.IsPalette() || c.Index() != 200 {
		t.Errorf("Expected palette index 200, got %d", c.Index())
	}
	c := RGB(10, 20, 30)
	if !c.IsRGB() {
		t.Error("Expected RGB color")
	}
	if r, g, b := c.RGBValues(); r != 10 || g != 20 || b != 30 {
		t.Errorf("Expected (10,20,30), got (%d,%d,%d)", r, g, b)
	}
}

func TestDownsampleDefaultPassesThrough(t *testing.T) {
	for _, mode := range []ColorMode{ColorModeMono, ColorMode16, ColorMode256, ColorModeTrueColor} {
		if got := ColorDefault.Downsample(mode); !got.IsDefault() {
			t.Errorf("Expected default through %v, got %+v", mode, got)
		}
	}
}

func TestDownsampleTrueColorIsIdentity(t *testing.T) {
	colors := []Color{ANSI(3), Palette(100), RGB(1, 2, 3)}
	for _, c := range colors {
		if got := c.Downsample(ColorModeTrueColor); got != c {
			t.Errorf("Expected %+v unchanged, got %+v", c, got)
		}
	}
}

func TestDownsampleRGBTo256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},          // cube origin
		{255, 255, 255, 231},   // cube top
		{255, 0, 0, 196},       // pure red lands on cube red
		{0, 255, 0, 46},        // pure green
		{0, 0, 255, 21},        // pure blue
		{95, 95, 95, 59},       // exact cube level
		{8, 8, 8, 232},         // first grayscale ramp entry
		{238, 238, 238, 255},   // last grayscale ramp entry
		{0x12, 0x12, 0x12, 233}, // near gray picks the ramp over the cube
	}
	for _, tt := range tests {
		got := RGB(tt.r, tt.g, tt.b).Downsample(ColorMode256)
		if !got.IsPalette() {
			t.Errorf("RGB(%d,%d,%d): expected palette color, got %+v", tt.r, tt.g, tt.b, got)
			continue
		}
		if got.Index() != tt.want {
			t.Errorf("RGB(%d,%d,%d): expected palette %d, got %d", tt.r, tt.g, tt.b, tt.want, got.Index())
		}
	}
}

func TestDownsample256PreservesANSIAndPalette(t *testing.T) {
	if got := ANSI(12).Downsample(ColorMode256); got != ANSI(12) {
		t.Errorf("Expected ANSI(12), got %+v", got)
	}
	if got := Palette(240).Downsample(ColorMode256); got != Palette(240) {
		t.Errorf("Expected Palette(240), got %+v", got)
	}
}

func TestDownsampleTo16(t *testing.T) {
	// ANSI colors pass through untouched
	if got := ANSI(14).Downsample(ColorMode16); got != ANSI(14) {
		t.Errorf("Expected ANSI(14), got %+v", got)
	}

	tests := []struct {
		in   Color
		want uint8
	}{
		{RGB(0, 0, 0), 0},        // black
		{RGB(255, 255, 255), 15}, // bright white
		{RGB(250, 10, 10), 9},    // bright red
		{RGB(0x80, 0x00, 0x00), 1}, // exact dark red
		{Palette(196), 9},        // cube red maps to bright red
		{Palette(21), 12},        // cube blue maps to bright blue
		{Palette(10), 10},        // palette 0-15 is the ANSI range itself
	}
	for _, tt := range tests {
		got := tt.in.Downsample(ColorMode16)
		if !got.IsANSI() {
			t.Errorf("%+v: expected ANSI color, got %+v", tt.in, got)
			continue
		}
		if got.Index() != tt.want {
			t.Errorf("%+v: expected ANSI %d, got %d", tt.in, tt.want, got.Index())
		}
	}
}

func TestDownsampleMonoDropsColor(t *testing.T) {
	for _, c := range []Color{ANSI(1), Palette(100), RGB(255, 0, 0)} {
		if got := c.Downsample(ColorModeMono); !got.IsDefault() {
			t.Errorf("Expected %+v to drop to default in mono, got %+v", c, got)
		}
	}
}

func TestStyleDownsample(t *testing.T) {
	s := Style{
		Fg:             RGB(255, 0, 0),
		Bg:             RGB(0, 0, 255),
		Attrs:          AttrBold,
		Underline:      UnderlineCurly,
		UnderlineColor: RGB(0, 255, 0),
	}
	got := s.Downsample(ColorMode256)
	if !got.Fg.IsPalette() || !got.Bg.IsPalette() || !got.UnderlineColor.IsPalette() {
		t.Errorf("Expected all colors downsampled to palette, got %+v", got)
	}
	if got.Attrs != AttrBold || got.Underline != UnderlineCurly {
		t.Errorf("Expected attributes preserved, got %+v", got)
	}
}
