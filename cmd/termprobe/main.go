// termprobe prints what the attached terminal supports: the environment
// guess, the query-verified answer, and the render mode the engine would
// pick.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/termcore/config"
	"github.com/lixenwraith/termcore/terminal"
)

func main() {
	var (
		configPath string
		noQuery    bool
		timeoutMS  int
		trace      bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Config file path")
	flag.BoolVar(&noQuery, "no-query", false, "Skip interactive queries")
	flag.IntVar(&timeoutMS, "timeout", 0, "Per-query timeout in ms (0 = config value)")
	flag.BoolVar(&trace, "trace", false, "Dump query traffic to stderr")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	opts := terminal.Options{
		DisableQueries: noQuery || cfg.DisableQueries,
		QueryTimeout:   cfg.QueryTimeout(),
	}
	if timeoutMS > 0 {
		opts.QueryTimeout = time.Duration(timeoutMS) * time.Millisecond
	}
	if trace {
		opts.TraceWriter = os.Stderr
	}

	envCaps := terminal.Detect(terminal.Options{DisableQueries: true})
	caps := terminal.Detect(opts)

	fmt.Printf("Terminal:    %s", caps.Kind)
	if caps.Version != "" {
		fmt.Printf(" (%s)", caps.Version)
	}
	fmt.Printf("\nConfidence:  %s\n\n", caps.Confidence)

	fmt.Printf("%-22s %-10s %s\n", "capability", "env", "final")
	row := func(name string, env, final bool) {
		fmt.Printf("%-22s %-10s %s\n", name, mark(env), mark(final))
	}
	row("truecolor", envCaps.TrueColor, caps.TrueColor)
	row("palette256", envCaps.Palette256, caps.Palette256)
	row("ansi16", envCaps.ANSI16, caps.ANSI16)
	row("unicode", envCaps.Unicode, caps.Unicode)
	row("hyperlinks (OSC 8)", envCaps.HyperlinksOSC8, caps.HyperlinksOSC8)
	row("clipboard (OSC 52)", envCaps.ClipboardOSC52, caps.ClipboardOSC52)
	row("notify (OSC 9)", envCaps.NotifyOSC9, caps.NotifyOSC9)
	row("kitty graphics", envCaps.KittyGraphics, caps.KittyGraphics)
	row("sixel graphics", envCaps.SixelGraphics, caps.SixelGraphics)
	row("mouse (normal)", envCaps.MouseNormal, caps.MouseNormal)
	row("mouse (SGR)", envCaps.MouseSGR, caps.MouseSGR)
	row("mouse (pixel)", envCaps.MousePixel, caps.MousePixel)
	row("focus events", envCaps.FocusEvents, caps.FocusEvents)
	row("bracketed paste", envCaps.BracketedPaste, caps.BracketedPaste)
	row("sync output (2026)", envCaps.SynchronizedOutput, caps.SynchronizedOutput)

	mode := terminal.DeriveMode(caps)
	if forced, ok := cfg.RenderMode(); ok {
		mode = forced
		fmt.Printf("\nRender mode: %s (forced by config)\n", mode)
	} else {
		fmt.Printf("\nRender mode: %s\n", mode)
	}
	fmt.Printf("             %s\n", mode.Description())
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
