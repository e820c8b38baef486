package pathbool

import (
	"math"
)

// arcMagic is the distance of the control points of a cubic quarter arc of a unit circle.
const arcMagic = 0.5522847498

// cornerTo adds a quarter arc from the current position to (x,y) bulging towards the corner (cx,cy). For a concave corner the arc bulges away from it.
func (p *Path) cornerTo(cx, cy, x, y float64, concave bool) {
	a := Point{}
	a.X, a.Y = p.Pos()
	b := Point{x, y}
	c := Point{cx, cy}
	if concave {
		c = a.Add(b).Sub(c)
	}
	c1 := a.Interpolate(c, arcMagic)
	c2 := b.Interpolate(c, arcMagic)
	p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Rectangle returns a rectangle of width w and height h.
func Rectangle(w, h float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle of width w and height h with rounded corners of radius r. A negative radius will cast the corners inwards (i.e. concave).
func RoundedRectangle(w, h, r float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	} else if equal(r, 0.0) {
		return Rectangle(w, h)
	}

	concave := r < 0.0
	r = math.Abs(r)
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	p := &Path{}
	p.MoveTo(0.0, r)
	p.cornerTo(0.0, 0.0, r, 0.0, concave)
	p.LineTo(w-r, 0.0)
	p.cornerTo(w, 0.0, w, r, concave)
	p.LineTo(w, h-r)
	p.cornerTo(w, h, w-r, h, concave)
	p.LineTo(r, h)
	p.cornerTo(0.0, h, 0.0, h-r, concave)
	p.Close()
	return p
}

// BeveledRectangle returns a rectangle of width w and height h with beveled corners at distance r from the corner.
func BeveledRectangle(w, h, r float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	} else if equal(r, 0.0) {
		return Rectangle(w, h)
	}

	r = math.Abs(r)
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	p := &Path{}
	p.MoveTo(0.0, r)
	p.LineTo(r, 0.0)
	p.LineTo(w-r, 0.0)
	p.LineTo(w, r)
	p.LineTo(w, h-r)
	p.LineTo(w-r, h)
	p.LineTo(r, h)
	p.LineTo(0.0, h-r)
	p.Close()
	return p
}

// Circle returns a circle of radius r centered at the origin.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns an ellipse of radii rx and ry centered at the origin, as four cubic quarter arcs in counter clockwise direction.
func Ellipse(rx, ry float64) *Path {
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(rx, 0.0)
	p.cornerTo(rx, ry, 0.0, ry, false)
	p.cornerTo(-rx, ry, -rx, 0.0, false)
	p.cornerTo(-rx, -ry, 0.0, -ry, false)
	p.cornerTo(rx, -ry, rx, 0.0, false)
	p.Close()
	return p
}

// RegularPolygon returns a regular polygon with radius r. It uses n vertices/edges, so when n approaches infinity this will return a path that approximates a circle. n must be 3 or more. The up boolean defines whether the first point will point north or not.
func RegularPolygon(n int, r float64, up bool) *Path {
	return RegularStarPolygon(n, 1, r, up)
}

// RegularStarPolygon returns a regular star polygon with radius r. It uses n vertices of density d. This will result in a self-intersection star in counter clockwise direction. If n/2 < d the star will be clockwise and if n and d are not coprime a regular polygon will be obtained, possible with multiple windings. n must be 3 or more and d 2 or more. The up boolean defines whether the first point will point north or not.
func RegularStarPolygon(n, d int, r float64, up bool) *Path {
	if n < 3 || d < 1 || n == d*2 || equal(r, 0.0) {
		return &Path{}
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta / 2.0
	}

	p := &Path{}
	for i := 0; i == 0 || i%n != 0; i += d {
		theta := theta0 + float64(i)*dtheta
		sintheta, costheta := math.Sincos(theta)
		if i == 0 {
			p.MoveTo(r*costheta, r*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}

// StarPolygon returns a star polygon of n points with alternating radius R and r. The up boolean defines whether the first point (true) or second point (false) will be pointing north.
func StarPolygon(n int, R, r float64, up bool) *Path {
	if n < 3 || equal(R, 0.0) || equal(r, 0.0) {
		return &Path{}
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}

	p := &Path{}
	for i := 0; i < n; i++ {
		theta := theta0 + float64(i)*dtheta
		sintheta, costheta := math.Sincos(theta)
		if i == 0 {
			p.MoveTo(R*costheta, R*sintheta)
		} else if i%2 == 0 {
			p.LineTo(R*costheta, R*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}

// Grid returns a grid of width w and height h, with grid line thickness r, and the number of cells horizontally and vertically as nx and ny respectively. The cells are holes wound against the outer rectangle.
func Grid(w, h float64, nx, ny int, r float64) *Path {
	if nx < 1 || ny < 1 || w <= float64(nx+1)*r || h <= float64(ny+1)*r {
		return &Path{}
	}

	p := Rectangle(w, h)
	dx, dy := (w-float64(nx+1)*r)/float64(nx), (h-float64(ny+1)*r)/float64(ny)
	cell := Rectangle(dx, dy).Reverse()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x := r + float64(i)*(r+dx)
			y := r + float64(j)*(r+dy)
			p = p.Append(cell.Translate(x, y))
		}
	}
	return p
}
