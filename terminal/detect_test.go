package terminal

import (
	"testing"

	"github.com/lixenwraith/termcore/render"
)

// clearTerminalEnv blanks every variable the detector consults so tests
// start from a known environment
func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"TERM", "TERM_PROGRAM", "COLORTERM", "NO_COLOR",
		"KITTY_WINDOW_ID", "WEZTERM_PANE", "GHOSTTY_RESOURCES_DIR",
		"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "ALACRITTY_LOG",
		"KONSOLE_VERSION", "VTE_VERSION", "TMUX",
		"LC_ALL", "LC_CTYPE", "LANG",
	} {
		t.Setenv(v, "")
	}
}

func detectEnvOnly() Capabilities {
	return Detect(Options{DisableQueries: true})
}

func TestDetectXterm256(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("LANG", "en_US.UTF-8")

	caps := detectEnvOnly()
	if caps.TrueColor {
		t.Error("Expected no truecolor from xterm-256color alone")
	}
	if !caps.Palette256 {
		t.Error("Expected 256-color palette")
	}
	if !caps.ANSI16 {
		t.Error("Expected 16-color support")
	}
	if !caps.Unicode {
		t.Error("Expected Unicode from UTF-8 locale")
	}
	if caps.Kind != KindXTerm {
		t.Errorf("Expected xterm-like, got %q", caps.Kind)
	}
	if caps.Confidence != ConfidenceEnvOnly {
		t.Errorf("Expected env_only confidence, got %v", caps.Confidence)
	}
}

func TestDetectColortermOverrides(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "truecolor")

	caps := detectEnvOnly()
	if !caps.TrueColor {
		t.Error("Expected truecolor from COLORTERM")
	}
	if !caps.Palette256 {
		t.Error("Expected truecolor to imply the 256 palette")
	}
}

func TestDetectKittyFamily(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("KITTY_WINDOW_ID", "1")
	t.Setenv("LANG", "en_US.UTF-8")

	caps := detectEnvOnly()
	if caps.Kind != KindKitty {
		t.Errorf("Expected kitty, got %q", caps.Kind)
	}
	if !caps.TrueColor || !caps.KittyGraphics || !caps.SynchronizedOutput {
		t.Errorf("Expected kitty feature baseline, got %+v", caps)
	}
	if !caps.HyperlinksOSC8 || !caps.ClipboardOSC52 {
		t.Errorf("Expected OSC features for kitty, got %+v", caps)
	}
}

func TestDetectTmuxMasksInnerTerminal(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "tmux-256color")
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")

	caps := detectEnvOnly()
	if caps.Kind != KindTmux {
		t.Errorf("Expected tmux, got %q", caps.Kind)
	}
	if !caps.Palette256 {
		t.Error("Expected 256-color under tmux")
	}
}

func TestDetectDumbTerminal(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "dumb")

	caps := detectEnvOnly()
	if caps.ANSI16 || caps.Palette256 || caps.TrueColor {
		t.Errorf("Expected no color for dumb terminal, got %+v", caps)
	}
	if got := DeriveMode(caps); got != render.ModeMinimal {
		t.Errorf("Expected minimal, got %v", got)
	}
}

func TestDetectNoColor(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("NO_COLOR", "1")

	caps := detectEnvOnly()
	if caps.TrueColor || caps.Palette256 || caps.ANSI16 {
		t.Errorf("Expected NO_COLOR to strip color, got %+v", caps)
	}
}

func TestDetectMissingEnvironment(t *testing.T) {
	clearTerminalEnv(t)

	caps := detectEnvOnly()
	if caps.Kind != KindUnknown {
		t.Errorf("Expected unknown family, got %q", caps.Kind)
	}
	if caps.ANSI16 {
		t.Error("Expected no color with empty TERM")
	}
}

func TestDeriveModeTiers(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want render.Mode
	}{
		{"truecolor unicode", Capabilities{TrueColor: true, Palette256: true, ANSI16: true, Unicode: true}, render.ModeEnhanced},
		{"256 unicode", Capabilities{Palette256: true, ANSI16: true, Unicode: true}, render.ModeStandard},
		{"truecolor no unicode", Capabilities{TrueColor: true, Palette256: true, ANSI16: true}, render.ModeCompatible},
		{"16 only", Capabilities{ANSI16: true}, render.ModeCompatible},
		{"nothing", Capabilities{}, render.ModeMinimal},
		{"unicode no color", Capabilities{Unicode: true}, render.ModeMinimal},
	}
	for _, tt := range tests {
		if got := DeriveMode(tt.caps); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

// Env signals for 256 colors with no interactive query must land on
// standard mode
func TestDeriveModeFromEnvOnlyDetection(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("LANG", "en_US.UTF-8")

	caps := detectEnvOnly()
	if got := DeriveMode(caps); got != render.ModeStandard {
		t.Errorf("Expected standard, got %v", got)
	}
}

func TestDeriveModeOverride(t *testing.T) {
	caps := Capabilities{TrueColor: true, Palette256: true, ANSI16: true, Unicode: true}
	if got := DeriveMode(caps, render.ModeMinimal); got != render.ModeMinimal {
		t.Errorf("Expected override to win, got %v", got)
	}
}

func TestCapabilitiesColorMode(t *testing.T) {
	tests := []struct {
		caps Capabilities
		want render.ColorMode
	}{
		{Capabilities{TrueColor: true, Palette256: true, ANSI16: true}, render.ColorModeTrueColor},
		{Capabilities{Palette256: true, ANSI16: true}, render.ColorMode256},
		{Capabilities{ANSI16: true}, render.ColorMode16},
		{Capabilities{}, render.ColorModeMono},
	}
	for _, tt := range tests {
		if got := tt.caps.ColorMode(); got != tt.want {
			t.Errorf("%+v: expected %v, got %v", tt.caps, tt.want, got)
		}
	}
}
