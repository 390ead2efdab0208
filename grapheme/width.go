package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	runeZWJ  = 0x200D
	runeVS16 = 0xFE0F
)

// ClusterWidth returns the column width of a single grapheme cluster: 0 for
// combining-only and zero-width clusters, 2 for wide/fullwidth base
// codepoints and emoji-presentation sequences, 1 otherwise.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	base, size := utf8.DecodeRuneInString(cluster)

	// The base codepoint decides the width unless the cluster carries an
	// emoji presentation marker
	w := runewidth.RuneWidth(base)

	if size < len(cluster) {
		for _, r := range cluster[size:] {
			// ZWJ sequences and VS16 force emoji presentation
			if r == runeZWJ || r == runeVS16 {
				return 2
			}
		}
	}

	// Regional-indicator pair renders as a flag emoji
	if isRegionalIndicator(base) && size < len(cluster) {
		return 2
	}

	return w
}

// DisplayWidth returns the total column width of text, summing per-cluster
// widths. Combining marks and zero-width codepoints contribute nothing.
func DisplayWidth(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		total += ClusterWidth(cluster)
	}
	return total
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}
