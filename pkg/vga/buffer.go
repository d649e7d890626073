// Package vga models a text-mode display: a fixed grid of character cells
// written sequentially at a cursor which wraps at the right edge and scrolls
// the grid at the bottom.
package vga

import (
	"sync"

	"github.com/willbeason/textbrot/pkg/palette"
)

const (
	// Width and Height are the dimensions of VGA text mode 3.
	Width  = 80
	Height = 25
)

// A Cell is one character position on the display.
type Cell struct {
	Glyph      rune
	Foreground palette.Color
	Background palette.Color
}

// Blank is the contents of a cleared cell.
var Blank = Cell{Glyph: ' ', Foreground: palette.LightGray, Background: palette.Black}

// A Buffer is a text-mode display surface.
//
// Every write takes the buffer's lock for the duration of that one write, so
// a Buffer may be read from another goroutine while a frame is being drawn.
type Buffer struct {
	mu sync.Mutex

	cols, rows int
	cells      []Cell

	col, row int

	// scrolled counts lines discarded off the top of the grid.
	scrolled int
}

// New returns a cleared cols x rows buffer with the cursor at the top left.
func New(cols, rows int) *Buffer {
	if cols <= 0 || rows <= 0 {
		panic("vga: buffer dimensions must be positive")
	}

	b := &Buffer{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	for i := range b.cells {
		b.cells[i] = Blank
	}
	return b
}

func (b *Buffer) Size() (cols, rows int) {
	return b.cols, b.rows
}

// WriteCell draws a glyph at the cursor and advances it one column.
func (b *Buffer) WriteCell(glyph rune, fg, bg palette.Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.col >= b.cols {
		b.newLine()
	}

	b.cells[b.row*b.cols+b.col] = Cell{Glyph: glyph, Foreground: fg, Background: bg}
	b.col++

	return nil
}

// LineBreak moves the cursor to the start of the next row.
func (b *Buffer) LineBreak() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.newLine()

	return nil
}

// newLine must be called with mu held.
func (b *Buffer) newLine() {
	b.col = 0
	if b.row < b.rows-1 {
		b.row++
		return
	}

	copy(b.cells, b.cells[b.cols:])
	last := b.cells[(b.rows-1)*b.cols:]
	for i := range last {
		last[i] = Blank
	}
	b.scrolled++
}

// Cursor returns the position the next cell will be written to, before any
// pending wrap is applied.
func (b *Buffer) Cursor() (col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.col, b.row
}

// Scrolled returns how many lines have been pushed off the top.
func (b *Buffer) Scrolled() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.scrolled
}

// Cell returns the contents at (col, row). Out of range positions read as Blank.
func (b *Buffer) Cell(col, row int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return Blank
	}
	return b.cells[row*b.cols+col]
}

// Snapshot copies the grid in row-major order.
func (b *Buffer) Snapshot() []Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
