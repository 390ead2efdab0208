package terminal

import (
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// DefaultQueryTimeout bounds each interactive capability query
const DefaultQueryTimeout = 100 * time.Millisecond

// Options controls capability detection
type Options struct {
	// Input and Output default to os.Stdin and os.Stdout
	Input  *os.File
	Output *os.File

	// DisableQueries skips the interactive stage even on a TTY
	DisableQueries bool

	// QueryTimeout is the per-query response deadline; zero means
	// DefaultQueryTimeout
	QueryTimeout time.Duration

	// ExcessInput receives any input bytes read during queries that were
	// not part of a query response (user keystrokes racing detection).
	// Nil discards them.
	ExcessInput io.Writer

	// TraceWriter receives a transcript of query traffic for debugging
	TraceWriter io.Writer
}

// Detect classifies the attached terminal. It always returns a usable
// snapshot: environment inspection runs first, and the interactive query
// stage only refines the result when both streams are TTYs. Any I/O
// failure during queries collapses to the environment-only answer.
func Detect(opts Options) Capabilities {
	caps := envScan()

	if opts.DisableQueries {
		return caps
	}
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return caps
	}

	timeout := opts.QueryTimeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	if verified, err := runQueries(in, out, &caps, timeout, opts); err == nil && verified {
		caps.Confidence = ConfidenceVerified
	}
	// Query results never override an explicit NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		caps.TrueColor = false
		caps.Palette256 = false
		caps.ANSI16 = false
	}
	return caps
}

// familyProfile holds the feature baseline for a known terminal family.
// These are environment-level guesses; interactive queries refine them.
type familyProfile struct {
	kind       Kind
	trueColor  bool
	hyperlinks bool
	clipboard  bool
	notify     bool
	kittyGfx   bool
	sixel      bool
	sync       bool
}

var familyProfiles = map[Kind]familyProfile{
	KindKitty:     {kind: KindKitty, trueColor: true, hyperlinks: true, clipboard: true, notify: true, kittyGfx: true, sync: true},
	KindITerm2:    {kind: KindITerm2, trueColor: true, hyperlinks: true, clipboard: true, notify: true, sixel: true, sync: true},
	KindWezTerm:   {kind: KindWezTerm, trueColor: true, hyperlinks: true, clipboard: true, notify: true, kittyGfx: true, sixel: true, sync: true},
	KindGhostty:   {kind: KindGhostty, trueColor: true, hyperlinks: true, clipboard: true, notify: true, kittyGfx: true, sync: true},
	KindAlacritty: {kind: KindAlacritty, trueColor: true, hyperlinks: true, clipboard: true, sync: true},
	KindKonsole:   {kind: KindKonsole, trueColor: true, hyperlinks: true},
	KindVTE:       {kind: KindVTE, trueColor: true, hyperlinks: true, notify: true, sync: true},
	KindXTerm:     {kind: KindXTerm},
	KindLinux:     {kind: KindLinux},
}

// envScan builds the provisional capability set from environment signals
// alone, confidence env_only
func envScan() Capabilities {
	caps := Capabilities{Kind: KindUnknown, Confidence: ConfidenceEnvOnly}
	termEnv := os.Getenv("TERM")

	caps.Kind = classifyFamily(termEnv)
	if p, ok := familyProfiles[caps.Kind]; ok {
		caps.TrueColor = p.trueColor
		caps.HyperlinksOSC8 = p.hyperlinks
		caps.ClipboardOSC52 = p.clipboard
		caps.NotifyOSC9 = p.notify
		caps.KittyGraphics = p.kittyGfx
		caps.SixelGraphics = p.sixel
		caps.SynchronizedOutput = p.sync
	}

	// COLORTERM is the strongest truecolor signal and overrides the family
	// baseline in both directions only upward
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		caps.TrueColor = true
	}
	if strings.Contains(termEnv, "truecolor") || strings.Contains(termEnv, "direct") {
		caps.TrueColor = true
	}

	caps.Palette256 = caps.TrueColor ||
		strings.Contains(termEnv, "256color") ||
		caps.Kind == KindTmux || caps.Kind == KindScreen
	caps.ANSI16 = termEnv != "" && termEnv != "dumb"
	if caps.Palette256 || caps.TrueColor {
		caps.ANSI16 = true
	}

	caps.Unicode = localeIsUTF8()

	// Mouse reporting is near-universal on anything xterm-descended
	if caps.ANSI16 && caps.Kind != KindLinux {
		caps.MouseNormal = true
		caps.MouseSGR = true
		caps.FocusEvents = true
		caps.BracketedPaste = true
	}
	if caps.Kind == KindKitty || caps.Kind == KindWezTerm || caps.Kind == KindITerm2 {
		caps.MousePixel = true
	}

	// NO_COLOR is an explicit user request; honor it over everything
	if os.Getenv("NO_COLOR") != "" {
		caps.TrueColor = false
		caps.Palette256 = false
		caps.ANSI16 = false
	}
	return caps
}

// classifyFamily maps environment signals to a terminal family. Dedicated
// variables win over TERM_PROGRAM, which wins over TERM prefixes, because
// multiplexers and shells overwrite TERM freely.
func classifyFamily(termEnv string) Kind {
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return KindKitty
	case os.Getenv("WEZTERM_PANE") != "":
		return KindWezTerm
	case os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return KindGhostty
	case os.Getenv("ITERM_SESSION_ID") != "":
		return KindITerm2
	case os.Getenv("ALACRITTY_WINDOW_ID") != "" || os.Getenv("ALACRITTY_LOG") != "":
		return KindAlacritty
	case os.Getenv("KONSOLE_VERSION") != "":
		return KindKonsole
	case os.Getenv("VTE_VERSION") != "":
		return KindVTE
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app":
		return KindITerm2
	case "WezTerm":
		return KindWezTerm
	case "ghostty":
		return KindGhostty
	case "kitty":
		return KindKitty
	}

	switch {
	case os.Getenv("TMUX") != "" || strings.HasPrefix(termEnv, "tmux"):
		return KindTmux
	case strings.HasPrefix(termEnv, "screen"):
		return KindScreen
	case strings.HasPrefix(termEnv, "xterm-kitty"):
		return KindKitty
	case strings.HasPrefix(termEnv, "xterm-ghostty"):
		return KindGhostty
	case strings.HasPrefix(termEnv, "alacritty"):
		return KindAlacritty
	case strings.HasPrefix(termEnv, "wezterm"):
		return KindWezTerm
	case strings.HasPrefix(termEnv, "xterm") || strings.HasPrefix(termEnv, "rxvt") ||
		strings.HasPrefix(termEnv, "st-") || termEnv == "st":
		return KindXTerm
	case termEnv == "linux":
		return KindLinux
	}
	return KindUnknown
}

// localeIsUTF8 reports whether the locale declares a UTF-8 codeset,
// checking variables in POSIX precedence order
func localeIsUTF8() bool {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if val := os.Getenv(v); val != "" {
			val = strings.ToLower(val)
			return strings.Contains(val, "utf-8") || strings.Contains(val, "utf8")
		}
	}
	return false
}
