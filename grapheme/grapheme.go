package grapheme

import (
	"github.com/rivo/uniseg"
)

// Count returns the number of extended grapheme clusters in text.
// A ZWJ emoji sequence or a regional-indicator pair counts as one cluster.
func Count(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n++
	}
	return n
}

// Clusters returns the grapheme clusters of text in visual order.
func Clusters(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}
