package pathbool

import (
	"errors"
	"fmt"

	"github.com/ByteArena/poly2tri-go"
	"github.com/paulmach/orb"
)

// ErrTessellate is returned when the flattened polygons can not be triangulated.
var ErrTessellate = errors.New("tessellation failed")

// Tessellate flattens the path within tolerance and triangulates the filled area. Rings are nested as in ToOrb, holes are left out of the triangulation. Rings must not intersect or touch each other, which holds for results of boolean operations.
func (p *Path) Tessellate(tolerance float64) (tris [][3]Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			tris, err = nil, fmt.Errorf("%w: %v", ErrTessellate, r)
		}
	}()

	for _, poly := range p.ToOrb(tolerance) {
		swctx := poly2tri.NewSweepContext(sweepPoints(poly[0]), false)
		for _, hole := range poly[1:] {
			swctx.AddHole(sweepPoints(hole))
		}
		swctx.Triangulate()

		for _, tr := range swctx.GetTriangles() {
			p0 := Point{tr.Points[0].X, tr.Points[0].Y}
			p1 := Point{tr.Points[1].X, tr.Points[1].Y}
			p2 := Point{tr.Points[2].X, tr.Points[2].Y}
			tris = append(tris, [3]Point{p0, p1, p2})
		}
	}
	return tris, nil
}

// sweepPoints returns the points of a closed ring without repeating the first point.
func sweepPoints(r orb.Ring) []*poly2tri.Point {
	if r.Closed() {
		r = r[:len(r)-1]
	}
	pts := make([]*poly2tri.Point, 0, len(r))
	for _, pt := range r {
		pts = append(pts, poly2tri.NewPoint(pt[0], pt[1]))
	}
	return pts
}
