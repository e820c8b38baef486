package pathbool

import (
	"math"
)

// Flatten returns the path with every curve replaced by line segments that deviate at most tolerance from it.
func (p *Path) Flatten(tolerance float64) *Path {
	r := &Path{}
	for _, c := range p.Contours() {
		r.MoveTo(c.Start().X, c.Start().Y)
		for i, cb := range c.Curves {
			if cb.IsLine() {
				if c.Closed && i == len(c.Curves)-1 && cb.P3.Equals(c.Start()) {
					break
				}
				r.LineTo(cb.P3.X, cb.P3.Y)
				continue
			}
			for _, pt := range cb.flatten(tolerance) {
				r.LineTo(pt.X, pt.Y)
			}
		}
		if c.Closed {
			r.Close()
		}
	}
	return r
}

// flattenSmooth appends the points of a curve without inflection points by stepping along it with the largest step that keeps the deviation below flatness.
func (c Cubic) flattenSmooth(pts []Point, flatness float64) []Point {
	t := 0.0
	for t < 1.0 {
		s2nom := (c.P2.X-c.P0.X)*(c.P1.Y-c.P0.Y) - (c.P2.Y-c.P0.Y)*(c.P1.X-c.P0.X)
		s2denom := math.Hypot(c.P1.X-c.P0.X, c.P1.Y-c.P0.Y)
		if s2nom*s2denom == 0.0 {
			break
		}
		t = 2.0 * math.Sqrt(flatness/3.0*math.Abs(s2denom/s2nom))
		if t >= 1.0 {
			break
		}
		_, c = c.Split(t)
		pts = append(pts, c.P0)
	}
	return append(pts, c.P3)
}

// inflections returns the parameters of the inflection points in [0,1], or NaN.
func (c Cubic) inflections() (float64, float64) {
	ax := -c.P0.X + 3.0*c.P1.X - 3.0*c.P2.X + c.P3.X
	ay := -c.P0.Y + 3.0*c.P1.Y - 3.0*c.P2.Y + c.P3.Y
	bx := 3.0*c.P0.X - 6.0*c.P1.X + 3.0*c.P2.X
	by := 3.0*c.P0.Y - 6.0*c.P1.Y + 3.0*c.P2.Y
	cx := -3.0*c.P0.X + 3.0*c.P1.X
	cy := -3.0*c.P0.Y + 3.0*c.P1.Y

	tcusp := -0.5 * ((ay*cx - ax*cy) / (ay*bx - ax*by))
	if !(tcusp >= 0.0 && tcusp <= 1.0) { // handles NaN and Infs too
		return math.NaN(), math.NaN()
	}

	discriminant := tcusp*tcusp - ((by*cx-bx*cy)/(ay*bx-ax*by))/3.0
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return tcusp, math.NaN()
	}
	q := math.Sqrt(discriminant)
	return tcusp - q, tcusp + q
}

// inflectionRange returns the parameter range around the inflection point t that can be approximated by a line within flatness.
func (c Cubic) inflectionRange(t, flatness float64) (float64, float64) {
	if math.IsNaN(t) {
		return math.Inf(1), math.Inf(1)
	}

	// s(t) = 3*s2*t^2 + (s3 - 3*s2)*t^3 perpendicular to the curve at t = 0, with s2 = 0 at the inflection point
	_, q := c.Split(t)
	nr := q.P1.Sub(q.P0)
	ns := q.P3.Sub(q.P0)
	if nr.IsZero() {
		nr = q.P2.Sub(q.P1)
	}
	if nr.IsZero() {
		return 0.0, 1.0 // straight
	}

	s3 := math.Abs(ns.PerpDot(nr)) / nr.Length()
	if s3 == 0.0 {
		return 0.0, 1.0
	}

	tf := math.Cbrt(flatness / s3)
	return t - tf*(1-t), t + tf*(1-t)
}

// flatten returns the points, excluding the start point, of a polyline that approximates the curve within flatness. See "Fast, precise flattening of cubic Bézier path and offset curves" by T.F. Hain et al., 2005.
func (c Cubic) flatten(flatness float64) []Point {
	pts := []Point{}
	t1, t2 := c.inflections()
	if math.IsNaN(t1) && math.IsNaN(t2) {
		return c.flattenSmooth(pts, flatness)
	}

	t1min, t1max := c.inflectionRange(t1, flatness)
	t2min, t2max := c.inflectionRange(t2, flatness)
	if math.IsNaN(t2) && t1min <= 0.0 && 1.0 <= t1max {
		return append(pts, c.P3)
	}

	if 0.0 < t1min {
		q, _ := c.Split(t1min)
		pts = q.flattenSmooth(pts, flatness)
	}

	if 0.0 < t1max && t1max < 1.0 && t1max < t2min {
		// t1 and t2 ranges do not overlap, approximate t1 linearly
		_, q := c.Split(t1max)
		pts = append(pts, q.P0)
		if 1.0 <= t2min {
			return q.flattenSmooth(pts, flatness)
		}
	} else if 1.0 <= t2min {
		return append(pts, c.P3)
	}

	if 0.0 < t2min {
		if t2min < t1max {
			_, q := c.Split(t1max)
			pts = append(pts, q.P0)
		} else if 0.0 < t1max {
			_, q := c.Split(t1max)
			q, _ = q.Split((t2min - t1max) / (1 - t1max))
			pts = q.flattenSmooth(pts, flatness)
		} else {
			q, _ := c.Split(t2min)
			pts = q.flattenSmooth(pts, flatness)
		}
	}

	if t2max < 1.0 {
		_, q := c.Split(t2max)
		pts = append(pts, q.P0)
		return q.flattenSmooth(pts, flatness)
	}
	return append(pts, c.P3)
}
