// Package grapheme provides Unicode-correct text measurement for terminal
// cell layout.
//
// Features:
//   - Extended grapheme cluster segmentation (UAX #29 via rivo/uniseg)
//   - Display width accounting (East Asian Width, emoji, ZWJ sequences)
//   - Cluster-safe truncation with ellipsis
//   - Greedy word wrapping with cluster-boundary force breaks
//
// All functions are pure: no I/O, no state, same input yields same output.
// Malformed UTF-8 never fails; each invalid byte decodes as one replacement
// cluster.
package grapheme
