package vga

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/willbeason/textbrot/pkg/palette"
)

// ansiIndex maps VGA attribute order onto the ANSI 16-color order, where red
// and blue trade places.
var ansiIndex = [...]int{
	palette.Black:      0,
	palette.Blue:       4,
	palette.Green:      2,
	palette.Cyan:       6,
	palette.Red:        1,
	palette.Magenta:    5,
	palette.Brown:      3,
	palette.LightGray:  7,
	palette.DarkGray:   8,
	palette.LightBlue:  12,
	palette.LightGreen: 10,
	palette.LightCyan:  14,
	palette.LightRed:   9,
	palette.Pink:       13,
	palette.Yellow:     11,
	palette.White:      15,
}

const sgrReset = "\x1b[0m"

// SGR returns the escape sequence selecting fg on bg.
func SGR(fg, bg palette.Color) string {
	f := ansiIndex[fg&0xf]
	g := ansiIndex[bg&0xf]

	fCode := 30 + f
	if f >= 8 {
		fCode = 90 + f - 8
	}
	gCode := 40 + g
	if g >= 8 {
		gCode = 100 + g - 8
	}

	return "\x1b[" + strconv.Itoa(fCode) + ";" + strconv.Itoa(gCode) + "m"
}

// usedRows is the number of rows holding output: every row above the cursor,
// plus the cursor row once something has been written to it.
func (b *Buffer) usedRows() int {
	col, row := b.Cursor()
	if col > 0 {
		return row + 1
	}
	return row
}

// WriteANSI renders the written rows as lines of text with color escapes. An
// escape is emitted only when the colors change, and each line ends with a
// reset.
func (b *Buffer) WriteANSI(w io.Writer) error {
	rows := b.usedRows()
	cells := b.Snapshot()
	out := bufio.NewWriter(w)

	for row := 0; row < rows; row++ {
		var line strings.Builder
		var last Cell
		for col := 0; col < b.cols; col++ {
			c := cells[row*b.cols+col]
			if col == 0 || c.Foreground != last.Foreground || c.Background != last.Background {
				line.WriteString(SGR(c.Foreground, c.Background))
			}
			line.WriteRune(c.Glyph)
			last = c
		}
		line.WriteString(sgrReset)
		line.WriteByte('\n')

		if _, err := out.WriteString(line.String()); err != nil {
			return err
		}
	}

	return out.Flush()
}

// WritePlain renders only the glyphs of the written rows, one line per row.
func (b *Buffer) WritePlain(w io.Writer) error {
	rows := b.usedRows()
	cells := b.Snapshot()
	out := bufio.NewWriter(w)

	for row := 0; row < rows; row++ {
		for col := 0; col < b.cols; col++ {
			if _, err := out.WriteRune(cells[row*b.cols+col].Glyph); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}

	return out.Flush()
}

// String is the plain rendering of the written rows.
func (b *Buffer) String() string {
	var sb strings.Builder
	_ = b.WritePlain(&sb)
	return sb.String()
}
