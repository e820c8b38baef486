package pathbool

import "math"

// boundaryTolerance is the distance, relative to the size of the operands, below which a point is considered to lie on a boundary.
const boundaryTolerance = 1e-7

// crossings returns the winding number and the number of crossings of the ray from pt towards +x with the curve. The curve is split into y-monotone pieces and each piece counts when pt.Y lies in its half-open y-range, so that a ray through a vertex counts once for a passing boundary and zero or two times for a touching one.
func crossings(c Cubic, pt Point) (int, int) {
	box := rectFromPoints(c.P0, c.P1, c.P2, c.P3)
	if pt.Y < box.Y0 || box.Y1 < pt.Y || box.X1 < pt.X {
		return 0, 0
	}

	winding, n := 0, 0
	ts := append(append([]float64{0.0}, c.yExtrema()...), 1.0)
	for k := 0; k+1 < len(ts); k++ {
		t0, t1 := ts[k], ts[k+1]
		y0, y1 := c.Eval(t0).Y, c.Eval(t1).Y
		if y0 == y1 {
			continue
		}

		up := y0 < y1
		if up && !(y0 <= pt.Y && pt.Y < y1) || !up && !(y1 <= pt.Y && pt.Y < y0) {
			continue
		}

		// bisect the monotone piece for y(t) = pt.Y
		lo, hi := t0, t1
		for i := 0; i < 64 && Epsilon*Epsilon < hi-lo; i++ {
			mid := (lo + hi) / 2.0
			if (c.Eval(mid).Y < pt.Y) == up {
				lo = mid
			} else {
				hi = mid
			}
		}
		if pt.X < c.Eval((lo+hi)/2.0).X {
			n++
			if up {
				winding++
			} else {
				winding--
			}
		}
	}
	return winding, n
}

// windings returns the winding number and crossing count of the ray from pt towards +x over all contours, which are implicitly closed.
func windings(cs []Contour, pt Point) (int, int) {
	winding, n := 0, 0
	for _, c := range cs {
		for _, cb := range c.close().Curves {
			w, m := crossings(cb, pt)
			winding += w
			n += m
		}
	}
	return winding, n
}

// insideContours returns true if pt is in the interior of the contours for the given fill rule.
func insideContours(cs []Contour, pt Point, fillRule FillRule) bool {
	winding, n := windings(cs, pt)
	if fillRule == NonZero {
		return winding != 0
	}
	return n%2 == 1
}

// Contains returns true if (x,y) is inside the path for the given fill rule. Subpaths are implicitly closed.
func (p *Path) Contains(x, y float64, fillRule FillRule) bool {
	return insideContours(p.Contours(), Point{x, y}, fillRule)
}

// nearBoundary returns true if pt lies within distance tol of any curve of the contours. Curves are subdivided until their control polygon is shorter than tol, pruning pieces whose control box expanded by tol does not contain pt.
func nearBoundary(cs []Contour, pt Point, tol float64) bool {
	for _, c := range cs {
		for _, cb := range c.close().Curves {
			stack := []Cubic{cb}
			for depth := 0; 0 < len(stack) && depth < 1<<16; depth++ {
				piece := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !rectFromPoints(piece.P0, piece.P1, piece.P2, piece.P3).Expand(tol).Contains(pt) {
					continue
				}
				if piece.size() < tol {
					return true
				}
				c0, c1 := piece.Split(0.5)
				stack = append(stack, c0, c1)
			}
		}
	}
	return false
}

////////////////////////////////////////////////////////////////

// position is the classification of a fragment relative to the other path.
type position int

const (
	outside        position = iota
	inside                  // inside the other path
	sharedSame              // on the other boundary, both interiors on the same side
	sharedOpposite          // on the other boundary, interiors on opposite sides
)

func (pos position) String() string {
	switch pos {
	case outside:
		return "outside"
	case inside:
		return "inside"
	case sharedSame:
		return "sharedSame"
	case sharedOpposite:
		return "sharedOpposite"
	}
	return "?"
}

// classifier classifies fragments of one path against the other.
type classifier struct {
	self, other []Contour
	fillRule    FillRule
	tol         float64 // distance below which a point is on the boundary
}

// classify classifies the fragment by its midpoint. A midpoint on the other boundary is tested on both sides of the fragment to see which side belongs to the interiors of both paths.
func (cl classifier) classify(c Cubic) position {
	m := c.Eval(0.5)
	if nearBoundary(cl.other, m, cl.tol) {
		dir := c.Deriv(0.5)
		if dir.Length() < Epsilon {
			dir = c.P3.Sub(c.P0)
		}
		n := dir.Rot90CCW().Norm(10.0 * cl.tol)
		if n.IsZero() {
			return outside
		}

		selfLeft := insideContours(cl.self, m.Add(n), cl.fillRule)
		selfRight := insideContours(cl.self, m.Sub(n), cl.fillRule)
		otherLeft := insideContours(cl.other, m.Add(n), cl.fillRule)
		otherRight := insideContours(cl.other, m.Sub(n), cl.fillRule)
		if selfLeft != selfRight && otherLeft != otherRight {
			if selfLeft == otherLeft {
				return sharedSame
			}
			return sharedOpposite
		}
		// boundary does not separate interior from exterior, fall back to the side test
		if otherLeft && otherRight {
			return inside
		}
		return outside
	}
	if insideContours(cl.other, m, cl.fillRule) {
		return inside
	}
	return outside
}

// boundaryTol returns the on-boundary distance for operands of the given size.
func boundaryTol(size float64) float64 {
	return math.Max(boundaryTolerance*size, Epsilon)
}
