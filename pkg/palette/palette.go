package palette

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"
)

var ErrEmpty = errors.New("palette has no colors")

// A Palette assigns a glyph and color to each escape-time count.
type Palette struct {
	// Colors is applied cyclically to counts which escaped.
	Colors []Color

	// Foreground is drawn for every point which escaped.
	Foreground rune

	// Background and BackgroundColor are drawn for points which never
	// escaped, and BackgroundColor is the cell background everywhere.
	Background      rune
	BackgroundColor Color
}

// Select returns the glyph and foreground color for an escape-time count.
//
// A count of maxIterations never escaped and always gets the background
// pair, whatever the palette holds. Any other count wraps around Colors, so a
// palette shorter than the iteration limit produces bands.
func (p Palette) Select(count, maxIterations int) (rune, Color) {
	if count == maxIterations {
		return p.Background, p.BackgroundColor
	}
	return p.Foreground, p.Colors[count%len(p.Colors)]
}

func (p Palette) Validate() error {
	if len(p.Colors) == 0 {
		return ErrEmpty
	}

	for i, c := range p.Colors {
		if !c.Valid() {
			return fmt.Errorf("palette entry %d: %v is not a display color", i, c)
		}
	}
	if !p.BackgroundColor.Valid() {
		return fmt.Errorf("background color: %v is not a display color", p.BackgroundColor)
	}

	if err := validateGlyph(p.Foreground); err != nil {
		return fmt.Errorf("foreground glyph: %w", err)
	}
	if err := validateGlyph(p.Background); err != nil {
		return fmt.Errorf("background glyph: %w", err)
	}

	return nil
}

// A glyph must fill exactly one character cell.
func validateGlyph(r rune) error {
	if !unicode.IsPrint(r) {
		return fmt.Errorf("%U is not printable", r)
	}
	if w := runewidth.RuneWidth(r); w != 1 {
		return fmt.Errorf("%q is %d cells wide", r, w)
	}
	return nil
}
