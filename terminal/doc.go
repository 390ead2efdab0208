// Package terminal provides capability detection and full-screen session
// management for ANSI/VT terminals.
//
// Detect classifies the attached emulator from environment signals and,
// on a TTY, a short round of interactive queries (DA1, XTVERSION, DECRQM),
// producing an immutable Capabilities snapshot. DeriveMode maps a snapshot
// to the render mode tiers consumers branch on.
//
// Terminal owns the raw-mode session: alternate screen, resize signals,
// and a front/back cell-buffer pair flushed through the diff renderer in
// package render.
package terminal
