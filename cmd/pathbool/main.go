package main

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/makidraw/pathbool"
	"github.com/makidraw/pathbool/rasterizer"
	"github.com/makidraw/pathbool/svg"
	"github.com/tdewolff/argp"
)

type Main struct {
	Op         string  `short:"p" default:"union" desc:"Operation: union, intersect, difference, xor or points"`
	Tolerance  float64 `short:"t" default:"0.0001" desc:"Parameter window width at which the intersection search stops"`
	Resolution float64 `short:"r" default:"0.001" desc:"Parameter grid for merging intersection candidates"`
	Stitch     float64 `short:"s" default:"1" desc:"Maximum distance between joined fragment ends"`
	NonZero    bool    `desc:"Use the non-zero fill rule instead of even-odd"`
	Scale      float64 `default:"4" desc:"Pixels per unit for PNG output"`
	Output     string  `short:"o" desc:"Output file (.svg or .png) drawing the operands and result"`
	Verbose    bool    `short:"v" desc:"Log diagnostics"`
	A          string  `index:"0" desc:"First path as SVG path data"`
	B          string  `index:"1" desc:"Second path as SVG path data"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean operations and intersections of cubic Bézier paths")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pathbool.SetLogger(logger)

	a, err := pathbool.ParseSVGPath(cmd.A)
	if err != nil {
		return fmt.Errorf("first path: %w", err)
	}
	b, err := pathbool.ParseSVGPath(cmd.B)
	if err != nil {
		return fmt.Errorf("second path: %w", err)
	}

	opts := pathbool.Options{
		Tolerance:       cmd.Tolerance,
		Resolution:      cmd.Resolution,
		StitchTolerance: cmd.Stitch,
	}
	if cmd.NonZero {
		opts.FillRule = pathbool.NonZero
	}
	if opts, err = opts.Validate(); err != nil {
		return err
	}

	var result *pathbool.Path
	if cmd.Op == "points" {
		pts, diag := opts.IntersectionPoints(a, b)
		logger.Debug("intersection points", "n", len(pts), "diag", diag)

		result = &pathbool.Path{}
		size := a.Bounds().Add(b.Bounds())
		dot := pathbool.Circle(0.01 * (size.W() + size.H()))
		for _, pt := range pts {
			fmt.Printf("%v %v\n", pt.X, pt.Y)
			result = result.Append(dot.Translate(pt.X, pt.Y))
		}
	} else {
		op, err := pathbool.ParseOp(cmd.Op)
		if err != nil {
			return err
		}

		var diag pathbool.Diagnostics
		result, diag = opts.Boolean(op, a, b)
		logger.Debug("boolean operation", "op", op, "diag", diag)
		fmt.Println(result)
	}

	if cmd.Output != "" {
		return cmd.write(a, b, result)
	}
	return nil
}

// write draws both operands and the result to the output file.
func (cmd *Main) write(a, b, result *pathbool.Path) error {
	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	colA := color.NRGBA{0xE0, 0x40, 0x40, 0x60}
	colB := color.NRGBA{0x40, 0x40, 0xE0, 0x60}
	colResult := color.NRGBA{0x20, 0x20, 0x20, 0xA0}

	var w io.Writer = f
	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".svg", ".svgz":
		opts := svg.DefaultOptions
		if ext == ".svgz" {
			opts.Compression = -1
		}
		err = svg.Write(w, []svg.Layer{
			{Path: a, Fill: colA},
			{Path: b, Fill: colB},
			{Path: result, Fill: colResult, Stroke: color.Black, StrokeWidth: 0.1},
		}, &opts)
	case ".png":
		img := rasterizer.Image([]rasterizer.Layer{
			{Path: a, Fill: colA},
			{Path: b, Fill: colB},
			{Path: result, Fill: colResult},
		}, cmd.Scale, 1.0)
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("unknown output format %q", ext)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
