package tcellcompat

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcore/render"
)

func TestColorRoundtrip(t *testing.T) {
	colors := []render.Color{
		render.ColorDefault,
		render.ANSI(0),
		render.ANSI(15),
		render.Palette(16),
		render.Palette(255),
		render.RGB(10, 200, 30),
	}
	for _, c := range colors {
		if got := FromTcellColor(ToTcellColor(c)); got != c {
			t.Errorf("Expected %+v through roundtrip, got %+v", c, got)
		}
	}
}

func TestToTcellColorValues(t *testing.T) {
	if got := ToTcellColor(render.ColorDefault); got != tcell.ColorDefault {
		t.Errorf("Expected tcell default, got %v", got)
	}
	r, g, b := ToTcellColor(render.RGB(1, 2, 3)).RGB()
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("Expected (1,2,3), got (%d,%d,%d)", r, g, b)
	}
}

func TestStyleRoundtrip(t *testing.T) {
	styles := []render.Style{
		{},
		{Fg: render.ANSI(1), Attrs: render.AttrBold},
		{Bg: render.Palette(100), Attrs: render.AttrDim | render.AttrReverse},
		{Fg: render.RGB(255, 0, 0), Attrs: render.AttrStrikethrough, Underline: render.UnderlineSingle},
	}
	for _, s := range styles {
		if got := FromTcellStyle(ToTcellStyle(s)); got != s {
			t.Errorf("Expected %+v through roundtrip, got %+v", s, got)
		}
	}
}

func TestFancyUnderlineCollapses(t *testing.T) {
	s := render.Style{Underline: render.UnderlineCurly, UnderlineColor: render.ANSI(1)}
	got := FromTcellStyle(ToTcellStyle(s))
	if got.Underline != render.UnderlineSingle {
		t.Errorf("Expected curly to collapse to single, got %v", got.Underline)
	}
	if !got.UnderlineColor.IsDefault() {
		t.Errorf("Expected underline color dropped, got %+v", got.UnderlineColor)
	}
}
