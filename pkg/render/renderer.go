package render

import (
	"errors"
	"fmt"

	"github.com/willbeason/textbrot/pkg/transforms"
)

// State is the lifecycle of a Renderer.
type State int

const (
	// Ready renderers have not started a frame.
	Ready State = iota
	Rendering
	// Halted is reached only after a complete frame has been emitted. It is
	// terminal: a halted renderer does no further work.
	Halted
	// Failed means the surface rejected a write part way through the frame.
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Rendering:
		return "rendering"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrHalted is returned by Render once a frame has been completed.
var ErrHalted = errors.New("renderer halted after completing a frame")

// A Renderer paints one frame of the Mandelbrot set onto a Surface.
type Renderer struct {
	cfg       Config
	evaluator transforms.Evaluator
	surface   Surface

	state State
	err   error
}

// New checks cfg and binds it to s. An invalid configuration is returned as
// a *ConfigError and no Renderer is created.
func New(cfg Config, s Surface) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("render: nil surface")
	}

	return &Renderer{
		cfg:       cfg,
		evaluator: transforms.Mandelbrot{MaxIterations: cfg.MaxIterations},
		surface:   s,
	}, nil
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) Config() Config {
	return r.cfg
}

// Render scans the viewport top to bottom, left to right, writing one cell
// per point and a line break after each row.
//
// Writes are issued one at a time in raster order. The first surface error
// stops the frame and leaves the renderer Failed.
func (r *Renderer) Render() error {
	switch r.state {
	case Halted:
		return ErrHalted
	case Failed:
		return r.err
	}
	r.state = Rendering

	vp := r.cfg.Viewport
	pal := r.cfg.Palette
	limit := r.evaluator.Limit()

	for row := 0; row < vp.Height; row++ {
		for col := 0; col < vp.Width; col++ {
			count := r.evaluator.Evaluate(vp.Map(col, row)).Count
			glyph, fg := pal.Select(count, limit)

			if err := r.surface.WriteCell(glyph, fg, pal.BackgroundColor); err != nil {
				return r.fail(fmt.Errorf("writing cell (%d, %d): %w", col, row, err))
			}
		}

		if err := r.surface.LineBreak(); err != nil {
			return r.fail(fmt.Errorf("ending row %d: %w", row, err))
		}
	}

	r.state = Halted
	return nil
}

func (r *Renderer) fail(err error) error {
	r.state = Failed
	r.err = err
	return err
}
