// Command supershape samples a supershape and writes it as a list of
// coordinates, an SVG document, or a PNG image.
//
// The flags mirror the tunables of an interactive viewer and are subject to
// the same limits. Out of range values are replaced, with a warning.
//
// Usage:
//
//	supershape [flags]
//
// For example, to render a five-petalled flower as an outline:
//
//	supershape -m 5 -n1 1 -n2 1 -n3 1 -line -format png -o flower.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/supershape"
	"honnef.co/go/supershape/internal/bounds"
	"honnef.co/go/supershape/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	s := bounds.Defaults()
	fs := flag.NewFlagSet("supershape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&s.Size, "size", s.Size, "edge length of the canvas")
	fs.StringVar(&s.Foreground, "fg", s.Foreground, "foreground color (hex RRGGBBAA or color name)")
	fs.StringVar(&s.Background, "bg", s.Background, "background color (hex RRGGBBAA or color name)")
	fs.Float64Var(&s.A, "a", s.A, "radial denominator a")
	fs.Float64Var(&s.B, "b", s.B, "radial denominator b")
	fs.Float64Var(&s.M, "m", s.M, "rotational symmetry m")
	fs.Float64Var(&s.N1, "n1", s.N1, "exponent n1")
	fs.Float64Var(&s.N2, "n2", s.N2, "exponent n2")
	fs.Float64Var(&s.N3, "n3", s.N3, "exponent n3")
	fs.IntVar(&s.Points, "points", s.Points, "number of points per travel")
	fs.Float64Var(&s.Percent, "percent", s.Percent, "fraction of points to sample")
	fs.Float64Var(&s.Travel, "travel", s.Travel, "angular travel in multiples of π")
	fs.BoolVar(&s.Line, "line", s.Line, "draw a closed outline instead of points")
	fs.Float64Var(&s.LineWidth, "width", s.LineWidth, "line width or point radius")
	var (
		format  = fs.String("format", "flat", "output format: flat, svg or png")
		output  = fs.String("o", "", "output file (default stdout)")
		verbose = fs.Bool("v", false, "log debug information")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	if err := draw(logger, s, *format, *output, stdout); err != nil {
		logger.Error("supershape failed", "err", err)
		return err
	}
	return nil
}

func draw(logger *slog.Logger, s bounds.Settings, format, output string, stdout io.Writer) error {
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	fg, err := render.ParseColor(s.Foreground)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := render.ParseColor(s.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	s, repl := s.Sanitize()
	for _, r := range repl {
		logger.Warn("value out of range", "tunable", r.Name, "value", r.From, "replacement", r.To)
	}

	p := s.Params()
	logger.Debug("sampling",
		"a", p.A, "b", p.B, "m", p.M, "n1", p.N1, "n2", p.N2, "n3", p.N3,
		"points", p.PointCount, "percent", p.Percent, "travel", p.Travel)
	c, err := supershape.Sample(p)
	if err != nil {
		return err
	}
	bbox := c.BoundingBox()
	logger.Debug("sampled curve", "points", len(c), "width", bbox.Width(), "height", bbox.Height())

	style := render.Style{
		Foreground: fg,
		Background: bg,
		Line:       s.Line,
		LineWidth:  s.LineWidth,
	}
	write := func(w io.Writer) error {
		return render.Write(w, f, c, int(s.Size), style)
	}
	if output == "" {
		return write(stdout)
	}
	if err := writeFile(output, write); err != nil {
		return err
	}
	logger.Debug("wrote output", "file", output, "format", f)
	return nil
}

// writeFile creates name and fills it using write. The file is removed if
// anything fails.
func writeFile(name string, write func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
