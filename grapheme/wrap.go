package grapheme

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/rivo/uniseg"
)

// WordWrap breaks text into lines of at most maxWidth columns. Words are
// packed greedily; a word that cannot fit on the current line starts a new
// one. A single word wider than maxWidth is force-broken at the last cluster
// boundary that fits. A single cluster wider than maxWidth occupies its own
// line unmodified. Newlines in text are hard breaks.
func WordWrap(text string, maxWidth int) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		maxWidth = 1
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	var pending strings.Builder // whitespace withheld until the next word fits
	pendingW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
		pending.Reset()
		pendingW = 0
	}

	// forceBreak packs an overlong word cluster by cluster, breaking at the
	// last boundary that fits. Leaves the trailing fragment on the open line.
	forceBreak := func(word string) {
		state := -1
		rest := word
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			w := ClusterWidth(cluster)
			if lineW > 0 && lineW+w > maxWidth {
				flush()
			}
			line.WriteString(cluster)
			lineW += w
		}
	}

	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) == "" {
			if strings.ContainsRune(tok, '\n') {
				// Hard break; repeated newlines preserve empty lines
				for i := 0; i < strings.Count(tok, "\n"); i++ {
					flush()
				}
				continue
			}
			if lineW > 0 {
				pending.WriteString(tok)
				pendingW += DisplayWidth(tok)
			}
			continue
		}

		w := DisplayWidth(tok)
		switch {
		case lineW == 0:
			if w <= maxWidth {
				line.WriteString(tok)
				lineW = w
			} else {
				forceBreak(tok)
			}
		case lineW+pendingW+w <= maxWidth:
			line.WriteString(pending.String())
			line.WriteString(tok)
			lineW += pendingW + w
			pending.Reset()
			pendingW = 0
		default:
			// Trailing whitespace is dropped at the break
			flush()
			if w <= maxWidth {
				line.WriteString(tok)
				lineW = w
			} else {
				forceBreak(tok)
			}
		}
	}

	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
