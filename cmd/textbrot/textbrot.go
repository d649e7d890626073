package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/willbeason/textbrot/pkg/palette"
	"github.com/willbeason/textbrot/pkg/render"
	"github.com/willbeason/textbrot/pkg/term"
	"github.com/willbeason/textbrot/pkg/vga"
)

const (
	flagPreset          = "preset"
	flagWidth           = "width"
	flagHeight          = "height"
	flagReMin           = "re-min"
	flagReMax           = "re-max"
	flagImMin           = "im-min"
	flagImMax           = "im-max"
	flagMaxIterations   = "max-iterations"
	flagColors          = "colors"
	flagGlyph           = "glyph"
	flagBackgroundGlyph = "background-glyph"
	flagBackgroundColor = "background-color"
	flagOutput          = "output"
)

const (
	outputScreen = "screen"
	outputANSI   = "ansi"
	outputPlain  = "plain"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textbrot",
		Short: "Draw the Mandelbrot set in a character-cell display",
		Long: `Draw one frame of the Mandelbrot set with a fixed color palette.

The frame stays on screen until a key is pressed. With --output ansi or
--output plain the frame is written to standard output instead.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	flags := cmd.Flags()
	flags.String(flagPreset, "classic", fmt.Sprintf("base configuration, one of %v", render.PresetNames()))
	flags.Int(flagWidth, 0, "columns to render")
	flags.Int(flagHeight, 0, "rows to render")
	flags.Float64(flagReMin, 0, "real part of the left edge")
	flags.Float64(flagReMax, 0, "real part of the right edge")
	flags.Float64(flagImMin, 0, "imaginary part of the top edge")
	flags.Float64(flagImMax, 0, "imaginary part of the bottom edge")
	flags.Int(flagMaxIterations, 0, "iterations before a point counts as bounded")
	flags.StringSlice(flagColors, nil, "comma separated palette applied cyclically to escape counts")
	flags.String(flagGlyph, "", "glyph drawn for escaping points")
	flags.String(flagBackgroundGlyph, "", "glyph drawn for bounded points")
	flags.String(flagBackgroundColor, "", "cell background color")
	flags.String(flagOutput, outputScreen, "where to draw: screen, ansi or plain")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	output, err := cmd.Flags().GetString(flagOutput)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	var r *render.Renderer
	switch output {
	case outputScreen:
		r, err = drawScreen(cmd.Context(), cfg)
	case outputANSI, outputPlain:
		r, err = drawText(cmd, cfg, output)
	default:
		return fmt.Errorf("unknown output %q", output)
	}
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	done := r.Config()
	vp := done.Viewport
	logger.Printf("%v after %dx%d frame of [%g, %g]x[%g, %g] at %d iterations",
		r.State(), vp.Width, vp.Height, vp.ReMin, vp.ReMax, vp.ImMin, vp.ImMax, done.MaxIterations)
	return nil
}

// configFromFlags starts from the chosen preset and applies every flag the
// user set explicitly.
func configFromFlags(flags *pflag.FlagSet) (render.Config, error) {
	name, err := flags.GetString(flagPreset)
	if err != nil {
		return render.Config{}, err
	}
	cfg, err := render.Preset(name)
	if err != nil {
		return render.Config{}, err
	}

	var errs []error
	setInt := func(name string, dst *int) {
		if flags.Changed(name) {
			v, err := flags.GetInt(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	setFloat := func(name string, dst *float64) {
		if flags.Changed(name) {
			v, err := flags.GetFloat64(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	setGlyph := func(name string, dst *rune) {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			errs = append(errs, err)
			if utf8.RuneCountInString(v) != 1 {
				errs = append(errs, fmt.Errorf("--%s must be a single character, got %q", name, v))
				return
			}
			*dst, _ = utf8.DecodeRuneInString(v)
		}
	}
	setColor := func(name string, dst *palette.Color) {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			errs = append(errs, err)
			c, err := palette.ParseColor(v)
			errs = append(errs, err)
			*dst = c
		}
	}

	setInt(flagWidth, &cfg.Viewport.Width)
	setInt(flagHeight, &cfg.Viewport.Height)
	setFloat(flagReMin, &cfg.Viewport.ReMin)
	setFloat(flagReMax, &cfg.Viewport.ReMax)
	setFloat(flagImMin, &cfg.Viewport.ImMin)
	setFloat(flagImMax, &cfg.Viewport.ImMax)
	setInt(flagMaxIterations, &cfg.MaxIterations)
	setGlyph(flagGlyph, &cfg.Palette.Foreground)
	setGlyph(flagBackgroundGlyph, &cfg.Palette.Background)
	setColor(flagBackgroundColor, &cfg.Palette.BackgroundColor)

	if flags.Changed(flagColors) {
		names, err := flags.GetStringSlice(flagColors)
		errs = append(errs, err)

		colors := make([]palette.Color, 0, len(names))
		for _, n := range names {
			if strings.TrimSpace(n) == "" {
				continue
			}
			c, err := palette.ParseColor(n)
			errs = append(errs, err)
			colors = append(colors, c)
		}
		cfg.Palette.Colors = colors
	}

	return cfg, errors.Join(errs...)
}

// frameRows leaves room below the frame for the line break ending its last
// row, so the frame is never scrolled.
func frameRows(cfg render.Config) int {
	return cfg.Viewport.Height + 1
}

func drawScreen(ctx context.Context, cfg render.Config) (*render.Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	display := term.New(screen, cfg.Viewport.Width, frameRows(cfg))
	r, err := render.New(cfg, display)
	if err != nil {
		return nil, err
	}
	if err := r.Render(); err != nil {
		return nil, err
	}
	display.Show()

	err = display.Wait(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return r, nil
}

func drawText(cmd *cobra.Command, cfg render.Config, output string) (*render.Renderer, error) {
	buf := vga.New(cfg.Viewport.Width, frameRows(cfg))
	r, err := render.New(cfg, buf)
	if err != nil {
		return nil, err
	}
	if err := r.Render(); err != nil {
		return nil, err
	}

	if output == outputANSI {
		err = buf.WriteANSI(cmd.OutOrStdout())
	} else {
		err = buf.WritePlain(cmd.OutOrStdout())
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		stop()
		os.Exit(1)
	}
}
