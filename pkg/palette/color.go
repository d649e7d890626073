package palette

import (
	"fmt"
	"strings"
)

// Color is one of the sixteen VGA text-mode colors.
//
// The numeric values match the VGA attribute nibble. They say nothing about
// the order colors are applied in; that is the Palette's job.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White

	numColors
)

var colorNames = [numColors]string{
	Black:      "black",
	Blue:       "blue",
	Green:      "green",
	Cyan:       "cyan",
	Red:        "red",
	Magenta:    "magenta",
	Brown:      "brown",
	LightGray:  "light-gray",
	DarkGray:   "dark-gray",
	LightBlue:  "light-blue",
	LightGreen: "light-green",
	LightCyan:  "light-cyan",
	LightRed:   "light-red",
	Pink:       "pink",
	Yellow:     "yellow",
	White:      "white",
}

// Colors returns every Color in attribute order.
func Colors() []Color {
	cs := make([]Color, numColors)
	for i := range cs {
		cs[i] = Color(i)
	}
	return cs
}

func (c Color) Valid() bool {
	return c < numColors
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor accepts the names produced by String. Case, spaces and
// underscores are ignored, so "LightGray" and "light_gray" both parse.
func ParseColor(name string) (Color, error) {
	key := normalize(name)
	for i, n := range colorNames {
		if normalize(n) == key {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
