// Package render draws supershapes for the supershape command. It writes
// flat coordinate lists, SVG documents and PNG previews rasterized by gg.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/gg"

	"honnef.co/go/supershape"
)

// Format selects an output format.
type Format int

const (
	// Flat writes one "x y" pair per line, in curve coordinates.
	Flat Format = iota + 1
	SVG
	PNG
)

func (f Format) String() string {
	switch f {
	case Flat:
		return "flat"
	case SVG:
		return "svg"
	case PNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses the name of a format as returned by [Format.String].
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Flat, SVG, PNG} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// Style describes how a curve is drawn.
type Style struct {
	// Foreground and Background are drawn opaque, whatever their alpha.
	Foreground gg.RGBA
	Background gg.RGBA
	// Line draws a closed outline. Otherwise every point is drawn as a dot.
	Line bool
	// LineWidth is the outline's width, or the radius of dots.
	LineWidth float64
}

// Write writes c in format f. size is the edge length of the square canvas
// for SVG and PNG output. The curve's origin is placed at the canvas's
// center, with y pointing up.
func Write(w io.Writer, f Format, c supershape.Curve, size int, style Style) error {
	switch f {
	case Flat:
		return WriteFlat(w, c)
	case SVG:
		return WriteSVG(w, c, size, style)
	case PNG:
		return WritePNG(w, c, size, style)
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
}

// canvas maps the y-up curve space to a y-down canvas with the origin at its
// center.
func canvas(size int) supershape.Affine {
	half := float64(size) / 2
	return supershape.FlipY.ThenTranslate(supershape.Vec(half, half))
}

// drawable drops points that can't be drawn and logs how many were dropped.
func drawable(c supershape.Curve) supershape.Curve {
	out := make(supershape.Curve, 0, len(c))
	for _, pt := range c {
		if pt.IsInf() || pt.IsNaN() {
			continue
		}
		out = append(out, pt)
	}
	if n := len(c) - len(out); n > 0 {
		Logger().Warn("skipping non-finite points", "skipped", n, "points", len(c))
	}
	return out
}

// WriteFlat writes one "x y" pair per line.
func WriteFlat(w io.Writer, c supershape.Curve) error {
	bw := bufio.NewWriter(w)
	flat := c.Flat()
	for i := 0; i < len(flat); i += 2 {
		bw.WriteString(strconv.FormatFloat(flat[i], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(flat[i+1], 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteSVG writes an SVG document of c.
func WriteSVG(w io.Writer, c supershape.Curve, size int, style Style) error {
	c = drawable(c).Transform(canvas(size))
	Logger().Debug("writing SVG", "size", size, "points", len(c), "line", style.Line)

	bw := bufio.NewWriter(w)
	bg := svgPaint(style.Background)
	fg := svgPaint(style.Foreground)
	lw := strconv.FormatFloat(style.LineWidth, 'g', -1, 64)
	opts := supershape.SVGOptions{MaxPrecision: 3}

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", size, size, size, size)
	fmt.Fprintf(bw, `<rect width="%d" height="%d" fill="%s"/>`+"\n", size, size, bg)
	if style.Line {
		if len(c) > 0 {
			bw.WriteString(`<path d="`)
			c.Path(true).WriteSVG(bw, opts)
			fmt.Fprintf(bw, `" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n", fg, lw)
		}
	} else {
		fmt.Fprintf(bw, `<g fill="%s">`+"\n", fg)
		for _, pt := range c {
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s"/>`+"\n",
				strconv.FormatFloat(pt.X, 'f', 3, 64), strconv.FormatFloat(pt.Y, 'f', 3, 64), lw)
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// WritePNG rasterizes c with gg and writes it as a PNG image.
func WritePNG(w io.Writer, c supershape.Curve, size int, style Style) (err error) {
	c = drawable(c).Transform(canvas(size))
	Logger().Debug("rasterizing PNG", "size", size, "points", len(c), "line", style.Line)

	dc := gg.NewContext(size, size)
	defer func() {
		if cerr := dc.Close(); err == nil {
			err = cerr
		}
	}()
	dc.ClearWithColor(opaque(style.Background))
	fg := opaque(style.Foreground)
	dc.SetRGBA(fg.R, fg.G, fg.B, fg.A)

	if style.Line {
		if len(c) > 0 {
			dc.SetLineWidth(style.LineWidth)
			dc.SetLineCap(gg.LineCapRound)
			dc.SetLineJoin(gg.LineJoinRound)
			for el := range c.Elements(true) {
				switch el.Kind {
				case supershape.MoveToKind:
					dc.MoveTo(el.P0.Splat())
				case supershape.LineToKind:
					dc.LineTo(el.P0.Splat())
				case supershape.ClosePathKind:
					dc.ClosePath()
				}
			}
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("stroking outline: %w", err)
			}
		}
	} else if len(c) > 0 {
		for _, pt := range c {
			dc.DrawPoint(pt.X, pt.Y, style.LineWidth)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("filling points: %w", err)
		}
	}
	return dc.EncodePNG(w)
}
