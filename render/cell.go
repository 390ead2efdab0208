package render

import (
	"github.com/lixenwraith/termcore/grapheme"
)

// Link attaches OSC 8 hyperlink data to a cell. The zero value is no link.
// ID groups non-contiguous cells into one logical link for hover hints.
type Link struct {
	URL string
	ID  string
}

// Cell is a single terminal cell: one grapheme cluster, its column width,
// style, and optional hyperlink. Cells are compared with ==, so equality
// covers content, style, and link.
//
// A Width of 2 means the cell spills into the next column; the buffer pairs
// it with a Width 0 continuation cell which carries no content of its own.
type Cell struct {
	Content string
	Width   uint8
	Style   Style
	Link    Link
}

// BlankCell returns a default-styled space
func BlankCell() Cell {
	return Cell{Content: " ", Width: 1}
}

// NewCell builds a cell from the first grapheme cluster of text. Wide
// clusters yield Width 2; a zero-width or empty cluster yields a blank.
func NewCell(text string, style Style) Cell {
	clusters := grapheme.Clusters(text)
	if len(clusters) == 0 {
		c := BlankCell()
		c.Style = style
		return c
	}
	w := grapheme.ClusterWidth(clusters[0])
	if w == 0 {
		c := BlankCell()
		c.Style = style
		return c
	}
	return Cell{Content: clusters[0], Width: uint8(w), Style: style}
}

// IsContinuation reports whether c is the spill-over half of a wide cell
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// continuationCell returns the paired second column of a wide cell
func continuationCell(style Style, link Link) Cell {
	return Cell{Width: 0, Style: style, Link: link}
}
