package render

import (
	"errors"
	"reflect"
	"testing"

	"github.com/willbeason/textbrot/pkg/palette"
	"github.com/willbeason/textbrot/pkg/plane"
	"github.com/willbeason/textbrot/pkg/transforms"
	"github.com/willbeason/textbrot/pkg/vga"
)

type call struct {
	glyph     rune
	fg, bg    palette.Color
	lineBreak bool
}

// recorder is a Surface which remembers every call in order.
type recorder struct {
	calls []call

	// failAfter, when positive, rejects the call with that 1-based index.
	failAfter int
}

var errSurface = errors.New("surface unavailable")

func (r *recorder) WriteCell(glyph rune, fg, bg palette.Color) error {
	if r.failAfter > 0 && len(r.calls)+1 == r.failAfter {
		return errSurface
	}
	r.calls = append(r.calls, call{glyph: glyph, fg: fg, bg: bg})
	return nil
}

func (r *recorder) LineBreak() error {
	if r.failAfter > 0 && len(r.calls)+1 == r.failAfter {
		return errSurface
	}
	r.calls = append(r.calls, call{lineBreak: true})
	return nil
}

func TestRenderRasterOrder(t *testing.T) {
	cfg := Classic
	rec := &recorder{}

	r, err := New(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	vp := cfg.Viewport
	expectedCalls := vp.Width*vp.Height + vp.Height
	if len(rec.calls) != expectedCalls {
		t.Fatalf("Expected %d calls, got %d", expectedCalls, len(rec.calls))
	}

	m := transforms.Mandelbrot{MaxIterations: cfg.MaxIterations}
	i := 0
	for row := 0; row < vp.Height; row++ {
		for col := 0; col < vp.Width; col++ {
			c := rec.calls[i]
			i++

			glyph, fg := cfg.Palette.Select(m.Escape(vp.Map(col, row)), cfg.MaxIterations)
			want := call{glyph: glyph, fg: fg, bg: cfg.Palette.BackgroundColor}
			if c != want {
				t.Fatalf("Cell (%d, %d): expected %+v, got %+v", col, row, want, c)
			}
		}

		if !rec.calls[i].lineBreak {
			t.Fatalf("Expected line break after row %d, got %+v", row, rec.calls[i])
		}
		i++
	}

	if r.State() != Halted {
		t.Errorf("Expected state %v, got %v", Halted, r.State())
	}
}

func TestRenderCells(t *testing.T) {
	// Columns land on c = -2, -1, 0, 1 along the real axis.
	cfg := Config{
		Viewport:      plane.Viewport{Width: 4, Height: 1, ReMin: -2, ReMax: 2, ImMin: 0, ImMax: 1},
		MaxIterations: 100,
		Palette: palette.Palette{
			Colors:          []palette.Color{palette.Red, palette.Green},
			Foreground:      '*',
			Background:      ' ',
			BackgroundColor: palette.Blue,
		},
	}
	rec := &recorder{}

	r, err := New(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	expected := []call{
		{glyph: ' ', fg: palette.Blue, bg: palette.Blue},
		{glyph: ' ', fg: palette.Blue, bg: palette.Blue},
		{glyph: ' ', fg: palette.Blue, bg: palette.Blue},
		// c = 1 escapes after 2 iterations.
		{glyph: '*', fg: palette.Red, bg: palette.Blue},
		{lineBreak: true},
	}
	if !reflect.DeepEqual(rec.calls, expected) {
		t.Errorf("Expected %+v, got %+v", expected, rec.calls)
	}
}

func TestRenderHalts(t *testing.T) {
	rec := &recorder{}
	r, err := New(Classic, rec)
	if err != nil {
		t.Fatal(err)
	}
	if r.State() != Ready {
		t.Errorf("Expected state %v, got %v", Ready, r.State())
	}

	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	n := len(rec.calls)

	if got := r.Config(); !reflect.DeepEqual(got, Classic) {
		t.Errorf("Expected the rendered configuration back, got %+v", got)
	}

	if err := r.Render(); !errors.Is(err, ErrHalted) {
		t.Errorf("Expected ErrHalted, got %v", err)
	}
	if len(rec.calls) != n {
		t.Errorf("Expected no writes after halting, got %d more", len(rec.calls)-n)
	}
	if r.State() != Halted {
		t.Errorf("Expected state %v, got %v", Halted, r.State())
	}
}

func TestRenderSurfaceError(t *testing.T) {
	tests := []struct {
		name      string
		failAfter int
	}{
		{name: "First cell", failAfter: 1},
		{name: "Mid row", failAfter: 37},
		{name: "Line break", failAfter: 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{failAfter: tt.failAfter}
			r, err := New(Classic, rec)
			if err != nil {
				t.Fatal(err)
			}

			err = r.Render()
			if !errors.Is(err, errSurface) {
				t.Fatalf("Expected surface error, got %v", err)
			}
			if r.State() != Failed {
				t.Errorf("Expected state %v, got %v", Failed, r.State())
			}
			if len(rec.calls) != tt.failAfter-1 {
				t.Errorf("Expected %d calls before failure, got %d", tt.failAfter-1, len(rec.calls))
			}
			if again := r.Render(); !errors.Is(again, errSurface) || errors.Is(again, ErrHalted) {
				t.Errorf("Expected the original failure again, got %v", again)
			}
		})
	}
}

// TestRenderReproducible renders the 80x24 frame twice onto separate VGA
// buffers and compares every glyph and color.
func TestRenderReproducible(t *testing.T) {
	render := func() []vga.Cell {
		buf := vga.New(vga.Width, vga.Height)
		r, err := New(Classic, buf)
		if err != nil {
			t.Fatal(err)
		}
		if err := r.Render(); err != nil {
			t.Fatal(err)
		}
		if buf.Scrolled() != 0 {
			t.Fatalf("Expected the frame to fit, scrolled %d", buf.Scrolled())
		}
		return buf.Snapshot()
	}

	first := render()
	second := render()
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical frames")
	}

	// The origin sits at column 57, row 12 and is bounded.
	if c := first[12*vga.Width+57]; c.Glyph != Classic.Palette.Background {
		t.Errorf("Expected background glyph at the origin, got %q", c.Glyph)
	}
	// The left edge is c = -2.5 + yi, outside the set.
	if c := first[0]; c.Glyph != Classic.Palette.Foreground {
		t.Errorf("Expected foreground glyph at the corner, got %q", c.Glyph)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	bad := Classic
	bad.MaxIterations = 0

	rec := &recorder{}
	r, err := New(bad, rec)
	if r != nil {
		t.Error("Expected no renderer")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Expected no writes, got %d", len(rec.calls))
	}

	if _, err := New(Classic, nil); err == nil {
		t.Error("Expected error for nil surface")
	}
}
