package terminal

import (
	"encoding/base64"
	"strings"
)

// CopyToClipboard places text on the system clipboard via OSC 52. A no-op
// on terminals without clipboard support.
func (t *Terminal) CopyToClipboard(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || !t.caps.ClipboardOSC52 {
		return nil
	}
	t.out.WriteString("\x1b]52;c;")
	t.out.WriteString(base64.StdEncoding.EncodeToString([]byte(text)))
	t.out.WriteString("\x1b\\")
	return t.out.Flush()
}

// Notify posts a desktop notification via OSC 9. A no-op on terminals
// without notification support.
func (t *Terminal) Notify(message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || !t.caps.NotifyOSC9 {
		return nil
	}
	t.out.WriteString("\x1b]9;")
	t.out.WriteString(sanitizeOSC(message))
	t.out.WriteString("\x1b\\")
	return t.out.Flush()
}

// SetTitle sets the terminal window title via OSC 0
func (t *Terminal) SetTitle(title string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	t.out.WriteString("\x1b]0;")
	t.out.WriteString(sanitizeOSC(title))
	t.out.WriteString("\x1b\\")
	return t.out.Flush()
}

// sanitizeOSC strips bytes that would terminate or corrupt an OSC string
func sanitizeOSC(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
