package pathbool

import (
	"sort"

	"github.com/paulmach/orb"
)

// ToOrb flattens the path within tolerance and returns it as polygons. Subpaths are implicitly closed. The nesting depth of each ring decides its role: rings inside an even number of other rings are outer rings, the others are holes of their innermost enclosing ring. Outer rings are counter clockwise and holes clockwise.
func (p *Path) ToOrb(tolerance float64) orb.MultiPolygon {
	type ring struct {
		contour Contour
		ring    orb.Ring
		depth   int
		parent  int
	}

	rings := []ring{}
	for _, c := range p.Flatten(tolerance).Contours() {
		c = c.close()
		r := orb.Ring{}
		for _, cb := range c.Curves {
			r = append(r, orb.Point{cb.P0.X, cb.P0.Y})
		}
		r = append(r, orb.Point{c.Start().X, c.Start().Y})
		if len(r) < 4 {
			continue // fewer than three distinct points
		}
		rings = append(rings, ring{contour: c, ring: r})
	}

	cs := make([]Contour, len(rings))
	for i, r := range rings {
		cs[i] = r.contour
	}
	depth, parent := nestContours(cs)
	for i := range rings {
		rings[i].depth = depth[i]
		rings[i].parent = parent[i]
	}

	order := make([]int, len(rings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return rings[order[a]].depth < rings[order[b]].depth })

	mp := orb.MultiPolygon{}
	polygon := map[int]int{} // ring index to polygon index
	for _, i := range order {
		r := rings[i]
		if r.depth%2 == 0 {
			if r.ring.Orientation() != orb.CCW {
				r.ring.Reverse()
			}
			polygon[i] = len(mp)
			mp = append(mp, orb.Polygon{r.ring})
		} else if k, ok := polygon[r.parent]; ok {
			if r.ring.Orientation() != orb.CW {
				r.ring.Reverse()
			}
			mp[k] = append(mp[k], r.ring)
		}
	}
	return mp
}

// FromOrb returns a path with one closed subpath for every ring of the polygons. The repeated first point of closed rings is dropped.
func FromOrb(mp orb.MultiPolygon) *Path {
	p := &Path{}
	for _, poly := range mp {
		for _, ring := range poly {
			if ring.Closed() {
				ring = ring[:len(ring)-1]
			}
			if len(ring) == 0 {
				continue
			}

			p.MoveTo(ring[0][0], ring[0][1])
			for _, point := range ring[1:] {
				p.LineTo(point[0], point[1])
			}
			p.Close()
		}
	}
	return p
}
