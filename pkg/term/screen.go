// Package term presents a text-mode display on the controlling terminal.
package term

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/willbeason/textbrot/pkg/palette"
	"github.com/willbeason/textbrot/pkg/vga"
)

var tcellColors = [...]tcell.Color{
	palette.Black:      tcell.ColorBlack,
	palette.Blue:       tcell.ColorNavy,
	palette.Green:      tcell.ColorGreen,
	palette.Cyan:       tcell.ColorTeal,
	palette.Red:        tcell.ColorMaroon,
	palette.Magenta:    tcell.ColorPurple,
	palette.Brown:      tcell.ColorOlive,
	palette.LightGray:  tcell.ColorSilver,
	palette.DarkGray:   tcell.ColorGray,
	palette.LightBlue:  tcell.ColorBlue,
	palette.LightGreen: tcell.ColorLime,
	palette.LightCyan:  tcell.ColorAqua,
	palette.LightRed:   tcell.ColorRed,
	palette.Pink:       tcell.ColorFuchsia,
	palette.Yellow:     tcell.ColorYellow,
	palette.White:      tcell.ColorWhite,
}

// Color returns the terminal color used for c.
func Color(c palette.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return tcellColors[c]
}

// Style returns the cell style for fg on bg.
func Style(fg, bg palette.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}

// Screen is a display surface drawn on a tcell.Screen.
//
// Cells go through a vga.Buffer, which owns the cursor and scrolling, and are
// mirrored onto the terminal as they are written. The terminal is flushed
// once per row. Each write, including the terminal update it causes, holds
// the Screen's lock for that one call.
type Screen struct {
	mu sync.Mutex

	screen tcell.Screen
	buf    *vga.Buffer
}

// New wraps an initialized tcell.Screen with a cols x rows text display.
func New(screen tcell.Screen, cols, rows int) *Screen {
	screen.Clear()
	return &Screen{
		screen: screen,
		buf:    vga.New(cols, rows),
	}
}

// Buffer exposes the underlying grid.
func (s *Screen) Buffer() *vga.Buffer {
	return s.buf
}

func (s *Screen) WriteCell(glyph rune, fg, bg palette.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scrolled := s.buf.Scrolled()
	if err := s.buf.WriteCell(glyph, fg, bg); err != nil {
		return err
	}

	if s.buf.Scrolled() != scrolled {
		s.redraw()
		return nil
	}

	// The cursor sits just past the cell written, including after a wrap.
	col, row := s.buf.Cursor()
	s.screen.SetContent(col-1, row, glyph, nil, Style(fg, bg))
	return nil
}

func (s *Screen) LineBreak() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scrolled := s.buf.Scrolled()
	if err := s.buf.LineBreak(); err != nil {
		return err
	}

	if s.buf.Scrolled() != scrolled {
		s.redraw()
	}
	s.screen.Show()
	return nil
}

// Show flushes pending cells to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// redraw must be called with mu held.
func (s *Screen) redraw() {
	cols, rows := s.buf.Size()
	cells := s.buf.Snapshot()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := cells[row*cols+col]
			s.screen.SetContent(col, row, c.Glyph, nil, Style(c.Foreground, c.Background))
		}
	}
}

// Wait holds the finished frame on screen until a key is pressed, the
// terminal goes away, or ctx is done. Resizes repaint the frame.
//
// The event pump started here exits at the next event after Wait returns,
// or when the screen is finalized.
func (s *Screen) Wait(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				s.mu.Lock()
				s.screen.Clear()
				s.redraw()
				s.mu.Unlock()
				s.screen.Sync()
			}
		}
	}
}
