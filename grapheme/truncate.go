package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TruncateToWidth shortens text to fit maxWidth columns, appending ellipsis
// when truncation occurs. The result is the longest whole-cluster prefix such
// that its width plus the ellipsis width fits. Text that already fits is
// returned unchanged. When maxWidth cannot even hold the ellipsis, the widest
// cluster prefix of the ellipsis itself is returned. Never splits a cluster.
func TruncateToWidth(text string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := DisplayWidth(ellipsis)
	if maxWidth < ellipsisWidth {
		return prefixToWidth(ellipsis, maxWidth)
	}

	return prefixToWidth(text, maxWidth-ellipsisWidth) + ellipsis
}

// prefixToWidth returns the longest whole-cluster prefix of text whose
// display width is at most maxWidth.
func prefixToWidth(text string, maxWidth int) string {
	var sb strings.Builder
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := ClusterWidth(cluster)
		if used+w > maxWidth {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}
