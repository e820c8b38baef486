// Package svg writes paths as standalone SVG documents, such as the operands and result of a boolean operation.
package svg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/makidraw/pathbool"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Options configures the SVG writer.
type Options struct {
	Compression int     // gzip compression level, 0 for none
	Minify      bool    // minify the document
	Precision   int     // significant digits of coordinates
	Margin      float64 // space around the drawing in units
}

// DefaultOptions are used when nil options are passed.
var DefaultOptions = Options{
	Minify:    true,
	Precision: 8,
	Margin:    1.0,
}

type num float64

func (f num) string(prec int) string {
	s := fmt.Sprintf("%.*g", prec, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), prec))
}

// SVG is a writer of scalable vector graphics documents.
type SVG struct {
	w    io.Writer
	buf  *bytes.Buffer // document before minification
	opts *Options
}

// New returns an SVG writer with a view box covering bounds plus the margin. Close must be called to finish the document.
func New(w io.Writer, bounds pathbool.Rect, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if opts.Precision <= 0 {
		opts.Precision = DefaultOptions.Precision
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	r := &SVG{
		w:    w,
		buf:  &bytes.Buffer{},
		opts: opts,
	}
	bounds = bounds.Expand(opts.Margin)
	fmt.Fprintf(r.buf, `<svg version="1.1" width="%s" height="%s" viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`,
		r.num(bounds.W()), r.num(bounds.H()), r.num(bounds.X0), r.num(bounds.Y0), r.num(bounds.W()), r.num(bounds.H()))
	return r
}

func (r *SVG) num(f float64) string {
	return num(f).string(r.opts.Precision)
}

// PathData returns the SVG path data of p with coordinates formatted to the given number of significant digits.
func PathData(p *pathbool.Path, prec int) string {
	sb := strings.Builder{}
	n := func(f float64) string {
		return num(f).string(prec)
	}
	for _, c := range p.Contours() {
		fmt.Fprintf(&sb, "M%s %s", n(c.Start().X), n(c.Start().Y))
		for i, cb := range c.Curves {
			if cb.IsLine() {
				if c.Closed && i == len(c.Curves)-1 {
					break
				}
				fmt.Fprintf(&sb, "L%s %s", n(cb.P3.X), n(cb.P3.Y))
			} else {
				fmt.Fprintf(&sb, "C%s %s %s %s %s %s", n(cb.P1.X), n(cb.P1.Y), n(cb.P2.X), n(cb.P2.Y), n(cb.P3.X), n(cb.P3.Y))
			}
		}
		if c.Closed {
			sb.WriteString("z")
		}
	}
	return sb.String()
}

// DrawPath adds the path filled with the given color using the even-odd fill rule. A nil stroke color draws no outline.
func (r *SVG) DrawPath(p *pathbool.Path, fill, stroke color.Color, strokeWidth float64) {
	if p.Empty() {
		return
	}
	fmt.Fprintf(r.buf, `<path d="%s" fill-rule="evenodd"`, PathData(p, r.opts.Precision))
	writeColor(r.buf, "fill", fill)
	if stroke != nil && 0.0 < strokeWidth {
		writeColor(r.buf, "stroke", stroke)
		fmt.Fprintf(r.buf, ` stroke-width="%s"`, r.num(strokeWidth))
	}
	fmt.Fprintf(r.buf, `/>`)
}

func writeColor(w io.Writer, attr string, col color.Color) {
	if col == nil {
		fmt.Fprintf(w, ` %s="none"`, attr)
		return
	}
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	fmt.Fprintf(w, ` %s="#%02x%02x%02x"`, attr, c.R, c.G, c.B)
	if c.A != 255 {
		fmt.Fprintf(w, ` %s-opacity="%s"`, attr, num(float64(c.A)/255.0).string(3))
	}
}

// Close finishes the document, minifies it if requested and writes it out.
func (r *SVG) Close() error {
	fmt.Fprintf(r.buf, "</svg>")

	var err error
	if r.opts.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		err = m.Minify("image/svg+xml", r.w, r.buf)
	} else {
		_, err = r.buf.WriteTo(r.w)
	}
	if r.opts.Compression != 0 {
		if errClose := r.w.(*gzip.Writer).Close(); err == nil { // does not close underlying writer
			err = errClose
		}
	}
	return err
}

// Layer is a path with its fill and optional stroke.
type Layer struct {
	Path        *pathbool.Path
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// Write writes the layers as an SVG document with a view box that covers all of them.
func Write(w io.Writer, layers []Layer, opts *Options) error {
	first := true
	bounds := pathbool.Rect{}
	for _, l := range layers {
		if l.Path.Empty() {
			continue
		}
		if first {
			bounds = l.Path.Bounds()
			first = false
		} else {
			bounds = bounds.Add(l.Path.Bounds())
		}
	}

	r := New(w, bounds, opts)
	for _, l := range layers {
		r.DrawPath(l.Path, l.Fill, l.Stroke, l.StrokeWidth)
	}
	return r.Close()
}
