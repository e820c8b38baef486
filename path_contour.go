package pathbool

import "math"

// Contour is one subpath of a path as a continuous run of cubic Béziers: curve i+1 starts where curve i ends. Closed contours end at their start point.
type Contour struct {
	Curves []Cubic
	Closed bool
}

// Start returns the start point of the contour.
func (c Contour) Start() Point {
	if len(c.Curves) == 0 {
		return Point{}
	}
	return c.Curves[0].P0
}

// End returns the end point of the contour.
func (c Contour) End() Point {
	if len(c.Curves) == 0 {
		return Point{}
	}
	return c.Curves[len(c.Curves)-1].P3
}

// Reverse returns the contour traversed in the opposite direction.
func (c Contour) Reverse() Contour {
	cs := make([]Cubic, len(c.Curves))
	for i, cb := range c.Curves {
		cs[len(cs)-1-i] = cb.Reverse()
	}
	return Contour{cs, c.Closed}
}

// SignedArea returns the signed area of the curves, positive for CCW contours. Open contours must be closed first for this to be meaningful.
func (c Contour) SignedArea() float64 {
	area := 0.0
	for _, cb := range c.Curves {
		area += cb.SignedArea()
	}
	return area
}

// Bounds returns the tight bounding box of the contour.
func (c Contour) Bounds() Rect {
	if len(c.Curves) == 0 {
		return Rect{}
	}
	r := c.Curves[0].Bounds()
	for _, cb := range c.Curves[1:] {
		r = r.Add(cb.Bounds())
	}
	return r
}

// close returns the contour implicitly closed, adding a line back to the start when needed.
func (c Contour) close() Contour {
	if c.Closed || len(c.Curves) == 0 {
		return c
	}
	cs := append([]Cubic{}, c.Curves...)
	if !c.End().Equals(c.Start()) {
		cs = append(cs, lineCubic(c.End(), c.Start()))
	}
	return Contour{cs, true}
}

// Contours decomposes the path into its subpaths, converting every command into a cubic Bézier. LineTo becomes a degenerate cubic, QuadTo is elevated exactly, and a Close that doesn't end at the start point gets a synthesized closing line. Zero-length lines are dropped.
func (p *Path) Contours() []Contour {
	if p == nil {
		return nil
	}

	cs := []Contour{}
	cur := Contour{}
	var start, pos Point
	flush := func(closed bool) {
		if 0 < len(cur.Curves) {
			cur.Closed = closed
			cs = append(cs, cur)
		}
		cur = Contour{}
	}

	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			flush(false)
			start = Point{p.d[i], p.d[i+1]}
			pos = start
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			if !end.Equals(pos) {
				cur.Curves = append(cur.Curves, lineCubic(pos, end))
			}
			pos = end
		case QuadToCmd:
			cp := Point{p.d[i], p.d[i+1]}
			end := Point{p.d[i+2], p.d[i+3]}
			cur.Curves = append(cur.Curves, quadCubic(pos, cp, end))
			pos = end
		case CubeToCmd:
			cp1 := Point{p.d[i], p.d[i+1]}
			cp2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			cur.Curves = append(cur.Curves, Cubic{pos, cp1, cp2, end})
			pos = end
		case CloseCmd:
			if !pos.Equals(start) {
				cur.Curves = append(cur.Curves, lineCubic(pos, start))
			}
			flush(true)
			pos = start
		}
		i += cmdLen(cmd)
	}
	flush(false)
	return cs
}

// FromContours assembles contours into a path. Curves that are straight lines become LineTo commands, and the closing line of a closed contour is replaced by Close.
func FromContours(cs []Contour) *Path {
	p := &Path{}
	for _, c := range cs {
		if len(c.Curves) == 0 {
			continue
		}
		p.MoveTo(c.Start().X, c.Start().Y)
		for i, cb := range c.Curves {
			if cb.IsLine() {
				if c.Closed && i == len(c.Curves)-1 && cb.P3.Equals(c.Start()) {
					break
				}
				p.LineTo(cb.P3.X, cb.P3.Y)
			} else {
				p.CubeTo(cb.P1.X, cb.P1.Y, cb.P2.X, cb.P2.Y, cb.P3.X, cb.P3.Y)
			}
		}
		if c.Closed {
			p.Close()
		}
	}
	return p
}

// nestContours returns for each closed contour the number of other contours enclosing it and the index of the smallest one, or -1. Contours must not cross each other. A point halfway along the first curve is tested against every larger contour.
func nestContours(cs []Contour) ([]int, []int) {
	areas := make([]float64, len(cs))
	for i, c := range cs {
		areas[i] = math.Abs(c.SignedArea())
	}

	depth := make([]int, len(cs))
	parent := make([]int, len(cs))
	for i, c := range cs {
		parent[i] = -1
		if len(c.Curves) == 0 {
			continue
		}
		pt := c.Curves[0].Eval(0.5)
		for j := range cs {
			if i == j || areas[j] <= areas[i] {
				continue
			}
			if insideContours(cs[j:j+1], pt, EvenOdd) {
				depth[i]++
				if parent[i] == -1 || areas[j] < areas[parent[i]] {
					parent[i] = j
				}
			}
		}
	}
	return depth, parent
}
