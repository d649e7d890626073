package render

import "github.com/willbeason/textbrot/pkg/palette"

// A Surface is a character-cell display written one cell at a time.
//
// WriteCell draws at the cursor and advances it, wrapping past the right edge
// and scrolling past the bottom. LineBreak moves to the start of the next row
// under the same scrolling rule. Implementations shared between goroutines
// hold their lock only for the duration of a single call.
type Surface interface {
	WriteCell(glyph rune, fg, bg palette.Color) error
	LineBreak() error
}
