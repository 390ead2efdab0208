// celldemo paints a demonstration frame through the full pipeline:
// detection, cell buffer, diff, flush. It survives resizes and exits on
// any keypress.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/termcore/config"
	"github.com/lixenwraith/termcore/grapheme"
	"github.com/lixenwraith/termcore/render"
	"github.com/lixenwraith/termcore/terminal"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Config file path")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	tcfg := terminal.Config{
		Detect: terminal.Options{
			DisableQueries: cfg.DisableQueries,
			QueryTimeout:   cfg.QueryTimeout(),
		},
	}
	if mode, ok := cfg.RenderMode(); ok {
		tcfg.ModeOverride = &mode
	}

	term := terminal.New(tcfg)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Terminal init: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
		term.Fini()
	}()

	stop := make(chan struct{})
	input := make(chan []byte, 1)
	go func() {
		data, _ := term.Read(stop)
		select {
		case input <- data:
		case <-stop:
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	paint(term, frame)
	term.Flush()

	for {
		select {
		case <-input:
			close(stop)
			return
		case ev := <-term.ResizeChan():
			term.Resize(ev.Width, ev.Height)
			paint(term, frame)
			term.Flush()
		case <-ticker.C:
			frame++
			paint(term, frame)
			term.Flush()
		}
	}
}

func paint(term *terminal.Terminal, frame int) {
	buf := term.Buffer()
	buf.Clear()
	w, h := buf.Width(), buf.Height()
	caps := term.Capabilities()
	mode := term.Mode()

	title := fmt.Sprintf(" termcore demo: %s on %s (%s) ", mode, caps.Kind, caps.Confidence)
	titleStyle := render.Style{Fg: render.ANSI(0), Bg: render.ANSI(6), Attrs: render.AttrBold}
	buf.SetText(0, 0, grapheme.TruncateToWidth(title, w, "…"), titleStyle)

	rows := []struct {
		text  string
		style render.Style
	}{
		{"Wide CJK: 你好, 世界 (widths stay paired)", render.Style{Fg: render.ANSI(2)}},
		{"Emoji ZWJ: 👨‍👩‍👧‍👦 one cluster, two columns", render.Style{Fg: render.ANSI(3)}},
		{"Flags: 🇯🇵 🇩🇪 regional pairs", render.Style{Fg: render.ANSI(4)}},
		{"Truecolor gradient below:", render.Style{Attrs: render.AttrBold}},
	}
	y := 2
	for _, r := range rows {
		if y >= h {
			break
		}
		buf.SetText(2, y, grapheme.TruncateToWidth(r.text, w-2, "…"), r.style)
		y++
	}

	// Animated gradient bar exercises per-cell style changes and the
	// downsampling path in every mode
	if y < h {
		for x := 2; x < w-2; x++ {
			hue := uint8((x*255/max(w-4, 1) + frame*4) % 256)
			style := render.Style{Bg: render.RGB(hue, 64, 255-hue)}
			buf.SetCell(x, y, render.Cell{Content: " ", Width: 1, Style: style})
		}
		y += 2
	}

	if y < h && caps.HyperlinksOSC8 {
		link := render.Link{URL: "https://example.com", ID: "demo"}
		text := "A hyperlinked span (OSC 8)"
		style := render.Style{Fg: render.ANSI(12), Underline: render.UnderlineSingle}
		x := 2
		for _, cl := range grapheme.Clusters(text) {
			c := render.NewCell(cl, style)
			c.Link = link
			buf.SetCell(x, y, c)
			x += int(c.Width)
		}
		y++
	}

	if h > 1 {
		footer := fmt.Sprintf(" frame %d - press any key to quit ", frame)
		buf.SetText(0, h-1, grapheme.TruncateToWidth(footer, w, "…"),
			render.Style{Attrs: render.AttrDim})
	}
}
