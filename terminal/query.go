package terminal

import (
	"bytes"
	"strconv"
	"strings"
)

// Probe sequences sent during the interactive stage. DA1 is last because
// every terminal answers it, which bounds the read: once the DA1 reply
// arrives, no further responses are coming.
var (
	probeDECRQM2026 = []byte("\x1b[?2026$p")
	probeXTVersion  = []byte("\x1b[>0q")
	probeKittyGfx   = []byte("\x1b_Gi=31,s=1,v=1,a=q;AAAA\x1b\\")
	probeDA1        = []byte("\x1b[c")
)

// queryParser incrementally consumes terminal input during the query
// stage, extracting query responses and setting aside everything else
// (user keystrokes racing detection) untouched.
type queryParser struct {
	buf    []byte
	excess []byte

	da1       bool
	da1Params []int
	decrqm    int // DECRQM Ps for mode 2026; -1 until a reply arrives
	kittyGfx  int // 1 supported, 0 answered-unsupported, -1 unanswered
	version   string
}

func newQueryParser() *queryParser {
	return &queryParser{decrqm: -1, kittyGfx: -1}
}

func (p *queryParser) feed(data []byte) {
	p.buf = append(p.buf, data...)
	for len(p.buf) > 0 {
		if p.buf[0] != 0x1b {
			idx := bytes.IndexByte(p.buf, 0x1b)
			if idx < 0 {
				p.excess = append(p.excess, p.buf...)
				p.buf = p.buf[:0]
				return
			}
			p.excess = append(p.excess, p.buf[:idx]...)
			p.buf = p.buf[idx:]
			continue
		}
		if len(p.buf) < 2 {
			return // partial escape, wait for more
		}
		switch p.buf[1] {
		case '[':
			i := 2
			for i < len(p.buf) && !isCSIFinal(p.buf[i]) {
				i++
			}
			if i == len(p.buf) {
				return
			}
			p.handleCSI(p.buf[2:i], p.buf[i], p.buf[:i+1])
			p.buf = p.buf[i+1:]
		case 'P':
			// DCS string, terminated by ST
			end := bytes.Index(p.buf[2:], []byte("\x1b\\"))
			if end < 0 {
				return
			}
			p.handleDCS(p.buf[2 : 2+end])
			p.buf = p.buf[2+end+2:]
		case '_':
			// APC string, terminated by ST
			end := bytes.Index(p.buf[2:], []byte("\x1b\\"))
			if end < 0 {
				return
			}
			p.handleAPC(p.buf[2 : 2+end])
			p.buf = p.buf[2+end+2:]
		default:
			// Bare escape or alt-key chord; not a response
			p.excess = append(p.excess, p.buf[:2]...)
			p.buf = p.buf[2:]
		}
	}
}

func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// handleCSI matches CSI responses against the outstanding probes; anything
// else (arrow keys, mouse reports) is preserved verbatim as excess input
func (p *queryParser) handleCSI(params []byte, final byte, raw []byte) {
	s := string(params)
	switch {
	case final == 'y' && strings.HasPrefix(s, "?") && strings.HasSuffix(s, "$"):
		// DECRQM reply: CSI ? mode ; Ps $ y
		parts := strings.SplitN(strings.TrimSuffix(s[1:], "$"), ";", 2)
		if len(parts) == 2 && parts[0] == "2026" {
			if ps, err := strconv.Atoi(parts[1]); err == nil {
				p.decrqm = ps
				return
			}
		}
	case final == 'c' && strings.HasPrefix(s, "?"):
		// DA1 reply: CSI ? attrs c
		p.da1 = true
		p.da1Params = p.da1Params[:0]
		for _, f := range strings.Split(s[1:], ";") {
			if n, err := strconv.Atoi(f); err == nil {
				p.da1Params = append(p.da1Params, n)
			}
		}
		return
	}
	p.excess = append(p.excess, raw...)
}

// handleDCS handles the XTVERSION reply: DCS > | name version ST
func (p *queryParser) handleDCS(body []byte) {
	if bytes.HasPrefix(body, []byte(">|")) {
		p.version = strings.TrimSpace(string(body[2:]))
		return
	}
	p.excess = append(p.excess, 0x1b, 'P')
	p.excess = append(p.excess, body...)
	p.excess = append(p.excess, 0x1b, '\\')
}

// handleAPC handles the kitty graphics query reply: APC G i=31 ; status ST.
// Any G-prefixed answer means the protocol is spoken; only "OK" means the
// probe succeeded.
func (p *queryParser) handleAPC(body []byte) {
	if bytes.HasPrefix(body, []byte("G")) {
		if bytes.Contains(body, []byte(";OK")) {
			p.kittyGfx = 1
		} else {
			p.kittyGfx = 0
		}
		return
	}
	p.excess = append(p.excess, 0x1b, '_')
	p.excess = append(p.excess, body...)
	p.excess = append(p.excess, 0x1b, '\\')
}

// pending returns any unclassified input bytes, including a trailing
// partial sequence, which the caller must hand back to the application
func (p *queryParser) pending() []byte {
	if len(p.buf) == 0 {
		return p.excess
	}
	return append(p.excess, p.buf...)
}

// apply folds the parsed responses into caps. Only features the terminal
// actually answered for are overridden; env-derived guesses stand
// otherwise. The family fold runs first so a direct probe answer always
// has the last word.
func (p *queryParser) apply(caps *Capabilities) {
	if p.version != "" {
		caps.Version = p.version
		if k := kindFromVersionBanner(p.version); k != KindUnknown {
			caps.Kind = k
			// Family env vars do not survive SSH; a banner-identified
			// family raises its feature baseline for anything no probe
			// answers directly
			if prof, ok := familyProfiles[k]; ok {
				caps.TrueColor = caps.TrueColor || prof.trueColor
				if caps.TrueColor {
					caps.Palette256 = true
					caps.ANSI16 = true
				}
				caps.HyperlinksOSC8 = caps.HyperlinksOSC8 || prof.hyperlinks
				caps.ClipboardOSC52 = caps.ClipboardOSC52 || prof.clipboard
				caps.NotifyOSC9 = caps.NotifyOSC9 || prof.notify
				caps.KittyGraphics = caps.KittyGraphics || prof.kittyGfx
				caps.SixelGraphics = caps.SixelGraphics || prof.sixel
				caps.SynchronizedOutput = caps.SynchronizedOutput || prof.sync
			}
		}
	}
	if p.decrqm >= 0 {
		// Ps 0 means the mode is not recognized; 1-4 mean recognized
		caps.SynchronizedOutput = p.decrqm >= 1 && p.decrqm <= 4
	}
	if p.da1 {
		sixel := false
		for _, attr := range p.da1Params[min(1, len(p.da1Params)):] {
			if attr == 4 {
				sixel = true
			}
		}
		caps.SixelGraphics = sixel
	}
	if p.kittyGfx >= 0 {
		caps.KittyGraphics = p.kittyGfx == 1
	}
}

// kindFromVersionBanner refines the family using the self-reported name,
// which outranks every environment heuristic
func kindFromVersionBanner(banner string) Kind {
	name := strings.ToLower(banner)
	if i := strings.IndexAny(name, " ("); i > 0 {
		name = name[:i]
	}
	switch {
	case strings.HasPrefix(name, "kitty"):
		return KindKitty
	case strings.HasPrefix(name, "wezterm"):
		return KindWezTerm
	case strings.HasPrefix(name, "ghostty"):
		return KindGhostty
	case strings.HasPrefix(name, "iterm"):
		return KindITerm2
	case strings.HasPrefix(name, "tmux"):
		return KindTmux
	case strings.HasPrefix(name, "xterm"):
		return KindXTerm
	}
	return KindUnknown
}
