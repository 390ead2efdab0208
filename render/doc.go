// Package render provides the cell-grid frame model and the differential
// ANSI encoder that repaints a terminal with the minimal byte stream.
//
// A CellBuffer holds one frame of styled, grapheme-aware cells. Diff compares
// two frames and emits cursor positioning, coalesced SGR sequences, and UTF-8
// content only for the columns that changed. The caller swaps buffers after
// each diff; neither input is mutated.
//
// Buffers are single-owner: one render loop writes, nothing else touches
// them. This is an ownership rule, not a locking discipline.
package render
