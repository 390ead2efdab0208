package terminal

import "github.com/lixenwraith/termcore/render"

// Kind classifies the terminal emulator family
type Kind string

const (
	KindUnknown   Kind = "unknown"
	KindKitty     Kind = "kitty"
	KindITerm2    Kind = "iterm2"
	KindWezTerm   Kind = "wezterm"
	KindGhostty   Kind = "ghostty"
	KindAlacritty Kind = "alacritty"
	KindKonsole   Kind = "konsole"
	KindVTE       Kind = "vte"
	KindTmux      Kind = "tmux"
	KindScreen    Kind = "screen"
	KindXTerm     Kind = "xterm-like"
	KindLinux     Kind = "linux"
)

// Confidence records how the capability snapshot was established
type Confidence uint8

const (
	// ConfidenceEnvOnly means only environment variables were consulted
	ConfidenceEnvOnly Confidence = iota

	// ConfidenceVerified means the terminal answered interactive queries
	ConfidenceVerified
)

func (c Confidence) String() string {
	if c == ConfidenceVerified {
		return "verified"
	}
	return "env_only"
}

// Capabilities is an immutable snapshot of what the attached terminal
// supports. Produced once per attach by Detect; a re-detect replaces the
// snapshot rather than mutating it.
type Capabilities struct {
	// Color depth
	TrueColor  bool
	Palette256 bool
	ANSI16     bool

	// Text
	Unicode bool

	// OSC features
	HyperlinksOSC8 bool
	ClipboardOSC52 bool
	NotifyOSC9     bool

	// Graphics protocols (detection only; emission is out of scope)
	KittyGraphics bool
	SixelGraphics bool

	// Input reporting
	MouseNormal    bool
	MouseSGR       bool
	MousePixel     bool
	FocusEvents    bool
	BracketedPaste bool

	// DEC 2026 synchronized output
	SynchronizedOutput bool

	Kind       Kind
	Version    string
	Confidence Confidence
}

// ColorMode maps the color capability flags to the deepest usable mode
func (c Capabilities) ColorMode() render.ColorMode {
	switch {
	case c.TrueColor:
		return render.ColorModeTrueColor
	case c.Palette256:
		return render.ColorMode256
	case c.ANSI16:
		return render.ColorMode16
	default:
		return render.ColorModeMono
	}
}

// DeriveMode selects the render mode for caps, evaluated top-down with
// first match winning. An explicit override always takes precedence.
func DeriveMode(caps Capabilities, override ...render.Mode) render.Mode {
	if len(override) > 0 {
		return override[0]
	}
	switch {
	case caps.TrueColor && caps.Unicode:
		return render.ModeEnhanced
	case caps.Palette256 && caps.Unicode:
		return render.ModeStandard
	case caps.ANSI16:
		return render.ModeCompatible
	default:
		return render.ModeMinimal
	}
}
