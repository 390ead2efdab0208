package render

import (
	"errors"

	"github.com/lixenwraith/termcore/grapheme"
)

// ErrInvalidDimensions is returned when a buffer is constructed or resized
// with dimensions that are zero, negative, or absurdly large.
var ErrInvalidDimensions = errors.New("render: invalid buffer dimensions")

// maxDimension bounds a single axis; anything beyond this is a caller bug,
// not a real terminal
const maxDimension = 10000

// CellBuffer is a mutable row-major grid of cells representing one frame of
// terminal content. It is owned by a single render loop; no internal locking.
//
// Invariant: a Width 2 cell at column x is always paired with a Width 0
// continuation cell at x+1 in the same row. SetCell maintains the pair
// atomically and heals any pair it overwrites half of.
type CellBuffer struct {
	width   int
	height  int
	cells   []Cell
	cursorX int
	cursorY int
}

// NewCellBuffer allocates a buffer of blank cells (space, default style)
func NewCellBuffer(width, height int) (*CellBuffer, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, ErrInvalidDimensions
	}
	b := &CellBuffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b, nil
}

// Width returns the buffer width in columns
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer height in rows
func (b *CellBuffer) Height() int { return b.height }

// Size returns both dimensions
func (b *CellBuffer) Size() (width, height int) { return b.width, b.height }

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *CellBuffer) index(x, y int) int {
	return y*b.width + x
}

// SetCell writes cell at (x, y). Wide cells write their continuation at x+1
// in the same operation; a wide cell that would cross the right edge is
// replaced by a single-width space so the last column is never corrupted.
// Writes fully outside the grid are silent no-ops.
func (b *CellBuffer) SetCell(x, y int, cell Cell) {
	if !b.inBounds(x, y) {
		return
	}

	if cell.Width == 2 && x+1 >= b.width {
		cell = Cell{Content: " ", Width: 1, Style: cell.Style, Link: cell.Link}
	}

	b.healPair(x, y)
	if cell.Width == 2 {
		b.healPair(x+1, y)
		b.cells[b.index(x, y)] = cell
		b.cells[b.index(x+1, y)] = continuationCell(cell.Style, cell.Link)
		return
	}
	b.cells[b.index(x, y)] = cell
}

// healPair repairs the wide pair that a write at (x, y) is about to break:
// a continuation loses its base, a wide base loses its continuation, and the
// orphan half becomes a blank
func (b *CellBuffer) healPair(x, y int) {
	idx := b.index(x, y)
	c := b.cells[idx]
	if c.IsContinuation() && x > 0 {
		left := b.index(x-1, y)
		if b.cells[left].Width == 2 {
			blank := BlankCell()
			blank.Style = b.cells[left].Style
			b.cells[left] = blank
		}
	}
	if c.Width == 2 && x+1 < b.width {
		right := b.index(x+1, y)
		if b.cells[right].IsContinuation() {
			blank := BlankCell()
			blank.Style = c.Style
			b.cells[right] = blank
		}
	}
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds
func (b *CellBuffer) GetCell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return BlankCell()
	}
	return b.cells[b.index(x, y)]
}

// SetText writes text starting at (x, y) one cluster per cell, advancing by
// display width. Zero-width clusters are skipped; the write stops at the row
// edge. Returns the number of columns written.
func (b *CellBuffer) SetText(x, y int, text string, style Style) int {
	if y < 0 || y >= b.height || x >= b.width {
		return 0
	}
	cols := 0
	for _, cluster := range grapheme.Clusters(text) {
		w := grapheme.ClusterWidth(cluster)
		if w == 0 {
			continue
		}
		if x+cols >= b.width {
			break
		}
		b.SetCell(x+cols, y, Cell{Content: cluster, Width: uint8(w), Style: style})
		cols += w
	}
	return cols
}

// Fill writes cell into every position of the given rectangle, clipped to
// the buffer. A wide fill cell cannot tile column by column, so its style
// is kept on a single-width blank instead, matching row fills.
func (b *CellBuffer) Fill(x, y, width, height int, cell Cell) {
	if cell.Width == 2 {
		blank := BlankCell()
		blank.Style = cell.Style
		cell = blank
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			b.SetCell(col, row, cell)
		}
	}
}

// InsertLines shifts rows [at, height) down by count, filling the vacated
// rows with fill. Rows pushed past the bottom are discarded. Whole rows move,
// so wide pairs ride intact.
func (b *CellBuffer) InsertLines(at, count int, fill Cell) {
	if at < 0 || at >= b.height || count <= 0 {
		return
	}
	if count > b.height-at {
		count = b.height - at
	}
	for y := b.height - 1; y >= at+count; y-- {
		src := b.index(0, y-count)
		dst := b.index(0, y)
		copy(b.cells[dst:dst+b.width], b.cells[src:src+b.width])
	}
	b.fillRows(at, at+count, fill)
}

// DeleteLines shifts rows [at+count, height) up by count, filling the vacated
// bottom rows with fill
func (b *CellBuffer) DeleteLines(at, count int, fill Cell) {
	if at < 0 || at >= b.height || count <= 0 {
		return
	}
	if count > b.height-at {
		count = b.height - at
	}
	for y := at; y < b.height-count; y++ {
		src := b.index(0, y+count)
		dst := b.index(0, y)
		copy(b.cells[dst:dst+b.width], b.cells[src:src+b.width])
	}
	b.fillRows(b.height-count, b.height, fill)
}

func (b *CellBuffer) fillRows(from, to int, fill Cell) {
	if fill.Width == 2 {
		// Row fill with a wide cell would need pairing; use its style only
		blank := BlankCell()
		blank.Style = fill.Style
		fill = blank
	}
	for y := from; y < to; y++ {
		base := b.index(0, y)
		for x := 0; x < b.width; x++ {
			b.cells[base+x] = fill
		}
	}
}

// Clear resets every cell to a default-styled blank
func (b *CellBuffer) Clear() {
	b.fillRows(0, b.height, BlankCell())
	b.cursorX = 0
	b.cursorY = 0
}

// Resize reallocates the grid. Prior content is not preserved; callers
// repaint after a resize.
func (b *CellBuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return ErrInvalidDimensions
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
	return nil
}

// Cursor returns the stored cursor position
func (b *CellBuffer) Cursor() (x, y int) {
	return b.cursorX, b.cursorY
}

// SetCursor stores the cursor position, clamped to the grid
func (b *CellBuffer) SetCursor(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= b.width {
		x = b.width - 1
	}
	if y >= b.height {
		y = b.height - 1
	}
	b.cursorX = x
	b.cursorY = y
}

// row returns the cell slice for one row; used by the diff walker
func (b *CellBuffer) row(y int) []Cell {
	base := b.index(0, y)
	return b.cells[base : base+b.width]
}
