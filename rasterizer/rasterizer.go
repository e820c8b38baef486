// Package rasterizer renders paths to images using golang.org/x/image/vector. Coverage follows the non-zero winding rule, holes must be wound against their outer contour.
package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/makidraw/pathbool"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ToRasterizer adds the path to ras, scaled by scale pixels per unit and moved by (dx,dy) pixels. Subpaths are implicitly closed.
func ToRasterizer(p *pathbool.Path, ras *vector.Rasterizer, scale, dx, dy float64) {
	pt := func(q pathbool.Point) (float32, float32) {
		return float32(q.X*scale + dx), float32(q.Y*scale + dy)
	}
	for _, c := range p.Contours() {
		ras.MoveTo(pt(c.Start()))
		for _, cb := range c.Curves {
			if cb.IsLine() {
				ras.LineTo(pt(cb.P3))
				continue
			}
			x1, y1 := pt(cb.P1)
			x2, y2 := pt(cb.P2)
			x3, y3 := pt(cb.P3)
			ras.CubeTo(x1, y1, x2, y2, x3, y3)
		}
		ras.ClosePath()
	}
}

// pixelBounds returns the pixel rectangle that covers the bounds of the path at the given scale.
func pixelBounds(p *pathbool.Path, scale float64) image.Rectangle {
	r := p.Bounds()
	return image.Rect(
		int(math.Floor(r.X0*scale)), int(math.Floor(r.Y0*scale)),
		int(math.Ceil(r.X1*scale))+1, int(math.Ceil(r.Y1*scale))+1,
	)
}

// Mask returns the coverage mask of the path, with scale pixels per unit. The bounds of the mask are the pixel bounds of the path, so that pixel (x,y) covers the area from (x,y)/scale to (x+1,y+1)/scale.
func Mask(p *pathbool.Path, scale float64) *image.Alpha {
	if p.Empty() || scale <= 0.0 {
		return image.NewAlpha(image.Rectangle{})
	}

	rect := pixelBounds(p, scale)
	mask := image.NewAlpha(rect)
	ras := vector.NewRasterizer(rect.Dx(), rect.Dy())
	ToRasterizer(p, ras, scale, -float64(rect.Min.X), -float64(rect.Min.Y))
	ras.Draw(mask, rect, image.Opaque, image.Point{})
	return mask
}

// Coverage returns the filled area of a mask in units, for a mask created with the same scale.
func Coverage(mask *image.Alpha, scale float64) float64 {
	sum := 0
	for _, a := range mask.Pix {
		sum += int(a)
	}
	return float64(sum) / 255.0 / (scale * scale)
}

// Draw paints the path onto img with the given color, scale pixels per unit and offset (dx,dy) in pixels.
func Draw(img draw.Image, p *pathbool.Path, col color.Color, scale, dx, dy float64) {
	size := img.Bounds().Size()
	if p.Empty() || size.X == 0 || size.Y == 0 {
		return
	}

	ras := vector.NewRasterizer(size.X, size.Y)
	ToRasterizer(p, ras, scale, dx-float64(img.Bounds().Min.X), dy-float64(img.Bounds().Min.Y))
	ras.DrawOp = draw.Over
	ras.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// Layer is a path and its fill color.
type Layer struct {
	Path *pathbool.Path
	Fill color.Color
}

// Image draws the layers in order on a white image that covers their bounds plus a margin, with scale pixels per unit.
func Image(layers []Layer, scale, margin float64) *image.RGBA {
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
	bounds = bounds.Expand(margin)

	w := int(math.Ceil(bounds.W()*scale)) + 1
	h := int(math.Ceil(bounds.H()*scale)) + 1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, l := range layers {
		Draw(img, l.Path, l.Fill, scale, -bounds.X0*scale, -bounds.Y0*scale)
	}
	return img
}
