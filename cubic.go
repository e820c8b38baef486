package pathbool

import (
	"fmt"
	"math"
	"sort"
)

// Cubic is a cubic Bézier segment given by its start point P0, control points P1 and P2, and end point P3. Straight lines are stored as cubics with their control points at 1/3 and 2/3 of the line, so that every algorithm only deals with cubics.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// lineCubic returns the degenerate cubic that traces the line from p0 to p3 at constant speed.
func lineCubic(p0, p3 Point) Cubic {
	return Cubic{p0, p0.Interpolate(p3, 1.0/3.0), p0.Interpolate(p3, 2.0/3.0), p3}
}

// quadCubic returns the exact degree elevation of the quadratic Bézier p0,p1,p2.
func quadCubic(p0, p1, p2 Point) Cubic {
	return Cubic{p0, p0.Interpolate(p1, 2.0/3.0), p2.Interpolate(p1, 2.0/3.0), p2}
}

// Start returns the start point.
func (c Cubic) Start() Point {
	return c.P0
}

// End returns the end point.
func (c Cubic) End() Point {
	return c.P3
}

// Eval returns the point at parameter t using the Bernstein basis.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3.0 * mt * mt * t
	d := 3.0 * mt * t * t
	e := t * t * t
	return Point{
		a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Deriv returns the first derivative at parameter t.
func (c Cubic) Deriv(t float64) Point {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3.0 * mt * mt).Add(d1.Mul(6.0 * mt * t)).Add(d2.Mul(3.0 * t * t))
}

// Split splits the curve at t using De Casteljau's algorithm. Both halves share the point Eval(t).
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	pm := c.P1.Interpolate(c.P2, t)

	q1 := c.P0.Interpolate(c.P1, t)
	q2 := q1.Interpolate(pm, t)

	r2 := c.P2.Interpolate(c.P3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	return Cubic{c.P0, q1, q2, r0}, Cubic{r0, r1, r2, c.P3}
}

// SplitAt cuts the curve at the given increasing parameters in (0,1) and returns len(ts)+1 sub-curves. After each cut the remaining parameters are remapped to the remainder by t' = (t-t0)/(1-t0). Parameters that are not strictly increasing or fall outside (0,1) are skipped.
func (c Cubic) SplitAt(ts []float64) []Cubic {
	cs := make([]Cubic, 0, len(ts)+1)
	rest := c
	prev := 0.0
	for _, t := range ts {
		if t <= prev || 1.0 <= t {
			continue
		}
		first, second := rest.Split((t - prev) / (1.0 - prev))
		cs = append(cs, first)
		rest = second
		prev = t
	}
	return append(cs, rest)
}

// Reverse returns the same curve traversed from end to start.
func (c Cubic) Reverse() Cubic {
	return Cubic{c.P3, c.P2, c.P1, c.P0}
}

// Hull returns the bounding box of the control points, inflated to at least MinHullExtent in both axes.
func (c Cubic) Hull() Rect {
	return rectFromPoints(c.P0, c.P1, c.P2, c.P3).Inflate(MinHullExtent)
}

// Bounds returns the tight bounding box of the curve.
func (c Cubic) Bounds() Rect {
	r := rectFromPoints(c.P0, c.P3)
	if c.IsLine() {
		return r
	}
	for _, t := range c.extrema() {
		r = r.AddPoint(c.Eval(t))
	}
	return r
}

// extrema returns the parameters in (0,1) where the curve is horizontal or vertical.
func (c Cubic) extrema() []float64 {
	ts := []float64{}
	oneCoord := func(p0, p1, p2, p3 float64) {
		// derivative is 3*(a*t^2 + b*t + c)
		a := -p0 + 3.0*p1 - 3.0*p2 + p3
		b := 2.0 * (p0 - 2.0*p1 + p2)
		d := p1 - p0
		t1, t2 := solveQuadraticFormula(a, b, d)
		for _, t := range []float64{t1, t2} {
			if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
				ts = append(ts, t)
			}
		}
	}
	oneCoord(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	oneCoord(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	sort.Float64s(ts)
	return ts
}

// yExtrema returns the parameters in (0,1) where the curve is horizontal.
func (c Cubic) yExtrema() []float64 {
	a := -c.P0.Y + 3.0*c.P1.Y - 3.0*c.P2.Y + c.P3.Y
	b := 2.0 * (c.P0.Y - 2.0*c.P1.Y + c.P2.Y)
	d := c.P1.Y - c.P0.Y
	t1, t2 := solveQuadraticFormula(a, b, d)
	ts := []float64{}
	for _, t := range []float64{t1, t2} {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			ts = append(ts, t)
		}
	}
	return ts
}

// IsLine returns true if the curve is a straight line with its control points at 1/3 and 2/3, as produced for LineTo commands.
func (c Cubic) IsLine() bool {
	line := lineCubic(c.P0, c.P3)
	tol := Epsilon * math.Max(1.0, c.P3.Sub(c.P0).Length()) * 1e3
	return c.P1.Near(line.P1, tol) && c.P2.Near(line.P2, tol)
}

// Equals returns true if both curves have the same control points within tolerance tol.
func (c Cubic) Equals(q Cubic, tol float64) bool {
	return c.P0.Near(q.P0, tol) && c.P1.Near(q.P1, tol) && c.P2.Near(q.P2, tol) && c.P3.Near(q.P3, tol)
}

// size returns the length of the control polygon, an upper bound of the arc length.
func (c Cubic) size() float64 {
	return c.P1.Sub(c.P0).Length() + c.P2.Sub(c.P1).Length() + c.P3.Sub(c.P2).Length()
}

// SignedArea returns the signed area enclosed between the curve and the origin, positive for CCW traversal. Summed over a closed contour it gives the enclosed area by Green's theorem.
func (c Cubic) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v / 20.0
}

func (c Cubic) String() string {
	return fmt.Sprintf("C(%v,%v,%v,%v)", c.P0, c.P1, c.P2, c.P3)
}
