package render

import (
	"fmt"
	"sort"

	"github.com/willbeason/textbrot/pkg/palette"
	"github.com/willbeason/textbrot/pkg/plane"
)

// Classic is an 80x24 view of the whole set with 100 iterations.
var Classic = Config{
	Viewport: plane.Viewport{
		Width:  80,
		Height: 24,
		ReMin:  -2.5,
		ReMax:  1.0,
		ImMin:  -1.0,
		ImMax:  1.0,
	},
	MaxIterations: 100,
	Palette: palette.Palette{
		Colors:          palette.Colors()[1:],
		Foreground:      '*',
		Background:      ' ',
		BackgroundColor: palette.Black,
	},
}

var presets = map[string]Config{
	"classic": Classic,

	// banded runs 128 iterations over a short warm palette, so the escape
	// counts wrap many times near the boundary.
	"banded": {
		Viewport:      Classic.Viewport,
		MaxIterations: 128,
		Palette: palette.Palette{
			Colors: []palette.Color{
				palette.Red, palette.LightRed, palette.Brown, palette.Yellow,
				palette.White, palette.Yellow, palette.Brown, palette.LightRed,
			},
			Foreground:      '#',
			Background:      ' ',
			BackgroundColor: palette.Black,
		},
	},

	"blocks": {
		Viewport: plane.Viewport{
			Width:  80,
			Height: 24,
			ReMin:  -2.0,
			ReMax:  0.5,
			ImMin:  -1.25,
			ImMax:  1.25,
		},
		MaxIterations: 128,
		Palette: palette.Palette{
			Colors: []palette.Color{
				palette.Blue, palette.LightBlue, palette.Cyan, palette.LightCyan,
				palette.Green, palette.LightGreen,
			},
			Foreground:      '@',
			Background:      '.',
			BackgroundColor: palette.Black,
		},
	},

	"mono": {
		Viewport:      Classic.Viewport,
		MaxIterations: 100,
		Palette: palette.Palette{
			Colors:          []palette.Color{palette.LightGray},
			Foreground:      '*',
			Background:      ' ',
			BackgroundColor: palette.Black,
		},
	},
}

// Preset returns a copy of the named configuration.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q, want one of %v", name, PresetNames())
	}

	cfg.Palette.Colors = append([]palette.Color(nil), cfg.Palette.Colors...)
	return cfg, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
