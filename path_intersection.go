package pathbool

import (
	"math"
	"sort"
	"time"
)

// overlapCells is the number of resolution cells a cluster of candidates must span to be treated as an overlapping (collinear or coincident) stretch instead of a single crossing.
const overlapCells = 10

// candidate is a raw intersection between curve i of path A and curve j of path B at parameters ta and tb.
type candidate struct {
	i, j   int
	ta, tb float64
}

// window is a pair of sub-curves together with the parameter windows they cover on the original curves.
type window struct {
	a, b   Cubic
	a0, a1 float64
	b0, b1 float64
	depth  int
}

// finder collects intersection candidates between the curves of two paths.
type finder struct {
	tolerance     float64
	maxDepth      int
	maxCandidates int

	zs           []candidate
	depthLimited bool
	truncated    bool
}

func newFinder(o Options) *finder {
	return &finder{
		tolerance:     o.Tolerance,
		maxDepth:      o.MaxDepth,
		maxCandidates: o.MaxCandidates,
	}
}

// intersect finds the candidates between curve a (index i) and curve b (index j) by recursive subdivision. Two straight curves are solved exactly. Branches whose hulls do not overlap are pruned, windows narrower than the tolerance are reported, and others are bisected into four combinations. It uses an explicit stack so that the depth is bounded by maxDepth.
func (f *finder) intersect(i int, a Cubic, j int, b Cubic) {
	stack := []window{{a, b, 0.0, 1.0, 0.0, 1.0, 0}}
	for 0 < len(stack) {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !w.a.Hull().Overlaps(w.b.Hull()) {
			continue
		}
		if w.a.IsLine() && w.b.IsLine() {
			if zs, ok := collinearOverlap(w.a, w.b); ok {
				for _, z := range zs {
					if f.maxCandidates <= len(f.zs) {
						f.truncated = true
						return
					}
					ta := w.a0 + z[0]*(w.a1-w.a0)
					tb := w.b0 + z[1]*(w.b1-w.b0)
					f.zs = append(f.zs, candidate{i, j, ta, tb})
				}
				continue
			}
			if w.depth == 0 {
				if za, zb, ok := lineCrossing(w.a, w.b); ok {
					if f.maxCandidates <= len(f.zs) {
						f.truncated = true
						return
					}
					f.zs = append(f.zs, candidate{i, j, za, zb})
				}
				continue
			}
		}

		converged := w.a1-w.a0 < f.tolerance && w.b1-w.b0 < f.tolerance
		if converged || f.maxDepth <= w.depth {
			if !converged {
				f.depthLimited = true
			}
			if f.maxCandidates <= len(f.zs) {
				f.truncated = true
				return
			}
			f.zs = append(f.zs, candidate{i, j, (w.a0 + w.a1) / 2.0, (w.b0 + w.b1) / 2.0})
			continue
		}

		am := (w.a0 + w.a1) / 2.0
		bm := (w.b0 + w.b1) / 2.0
		a0, a1 := w.a.Split(0.5)
		b0, b1 := w.b.Split(0.5)
		d := w.depth + 1
		stack = append(stack,
			window{a0, b0, w.a0, am, w.b0, bm, d},
			window{a0, b1, w.a0, am, bm, w.b1, d},
			window{a1, b0, am, w.a1, w.b0, bm, d},
			window{a1, b1, am, w.a1, bm, w.b1, d},
		)
	}
}

// collinearOverlap returns the parameter pairs at the ends of the stretch shared by two collinear lines. It returns false if the lines are not collinear, in which case the regular subdivision applies.
func collinearOverlap(a, b Cubic) ([][2]float64, bool) {
	da, db := a.P3.Sub(a.P0), b.P3.Sub(b.P0)
	la, lb := da.Length(), db.Length()
	if la == 0.0 || lb == 0.0 {
		return nil, false
	}
	tol := Epsilon * 1e3 * math.Max(1.0, math.Max(la, lb))
	if tol < math.Abs(da.PerpDot(b.P0.Sub(a.P0)))/la || tol < math.Abs(da.PerpDot(b.P3.Sub(a.P0)))/la {
		return nil, false
	}

	s0 := b.P0.Sub(a.P0).Dot(da) / (la * la)
	s1 := b.P3.Sub(a.P0).Dot(da) / (la * la)
	lo := math.Max(0.0, math.Min(s0, s1))
	hi := math.Min(1.0, math.Max(s0, s1))
	if hi < lo {
		return nil, true
	}

	zs := [][2]float64{}
	for _, ta := range []float64{lo, hi} {
		tb := a.Eval(ta).Sub(b.P0).Dot(db) / (lb * lb)
		zs = append(zs, [2]float64{ta, math.Max(0.0, math.Min(1.0, tb))})
		if hi-lo < Epsilon {
			break
		}
	}
	return zs, true
}

// lineCrossing returns the parameters where two straight, non-collinear lines cross. Parallel lines and crossings outside both lines return false.
func lineCrossing(a, b Cubic) (float64, float64, bool) {
	da, db := a.P3.Sub(a.P0), b.P3.Sub(b.P0)
	den := da.PerpDot(db)
	if den == 0.0 {
		return 0.0, 0.0, false
	}
	r := b.P0.Sub(a.P0)
	ta := r.PerpDot(db) / den
	tb := r.PerpDot(da) / den

	eps := Epsilon * 1e3
	if ta < -eps || 1.0+eps < ta || tb < -eps || 1.0+eps < tb {
		return 0.0, 0.0, false
	}
	return math.Max(0.0, math.Min(1.0, ta)), math.Max(0.0, math.Min(1.0, tb)), true
}

// coincident returns true if both curves trace the same points, in either direction.
func coincident(a, b Cubic, tol float64) bool {
	return a.Equals(b, tol) || a.Equals(b.Reverse(), tol)
}

// find runs the subdivision search over all curve pairs of as and bs whose hulls overlap. Coincident curve pairs are skipped, they share their whole boundary and are handled by the classifier.
func (f *finder) find(as, bs []Cubic) {
	hullsB := make([]Rect, len(bs))
	for j, b := range bs {
		hullsB[j] = b.Hull()
	}
	for i, a := range as {
		hullA := a.Hull()
		for j, b := range bs {
			if !hullA.Overlaps(hullsB[j]) {
				continue
			}
			if coincident(a, b, Epsilon*1e3*math.Max(1.0, a.size())) {
				continue
			}
			f.intersect(i, a, j, b)
			if f.truncated {
				return
			}
		}
	}
}

////////////////////////////////////////////////////////////////

// cluster is a group of raw parameters on one curve that converge on the same root, or that cover an overlapping stretch.
type cluster struct {
	min, max, mean float64
	overlap        bool
}

// dedupParams quantizes the raw parameters ts of one curve to the grid of the given resolution and merges adjacent occupied cells into clusters. The grid is intentionally lossy: roots closer than a few cells merge into one.
func dedupParams(ts []float64, resolution float64) []cluster {
	if len(ts) == 0 {
		return nil
	}

	cells := map[int64][]float64{}
	for _, t := range ts {
		key := int64(math.Round(t / resolution))
		cells[key] = append(cells[key], t)
	}
	keys := make([]int64, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	clusters := []cluster{}
	add := func(first, last int64, vals []float64) {
		c := cluster{min: vals[0], max: vals[0]}
		sum := 0.0
		for _, t := range vals {
			c.min = math.Min(c.min, t)
			c.max = math.Max(c.max, t)
			sum += t
		}
		c.mean = sum / float64(len(vals))
		c.overlap = overlapCells < last-first
		clusters = append(clusters, c)
	}

	first := keys[0]
	vals := append([]float64{}, cells[first]...)
	for k := 1; k < len(keys); k++ {
		if keys[k]-keys[k-1] <= 1 {
			vals = append(vals, cells[keys[k]]...)
			continue
		}
		add(first, keys[k-1], vals)
		first = keys[k]
		vals = append(vals[:0:0], cells[first]...)
	}
	add(first, keys[len(keys)-1], vals)
	return clusters
}

// roots returns the parameters of a cluster, one for a crossing and both ends for an overlapping stretch.
func (c cluster) roots() []float64 {
	if c.overlap {
		return []float64{c.min, c.max}
	}
	return []float64{c.mean}
}

// splitParams turns the clusters of one curve into the ordered split set. Roots within one resolution cell of the curve's end points snap to them and are dropped, the curve already ends there.
func splitParams(clusters []cluster, resolution float64) []float64 {
	ts := []float64{}
	for _, c := range clusters {
		for _, t := range c.roots() {
			if t < resolution || 1.0-resolution < t {
				continue
			}
			if 0 < len(ts) && t-ts[len(ts)-1] < resolution {
				continue
			}
			ts = append(ts, t)
		}
	}
	return ts
}

// snapParam snaps t to the curve's end points when within one resolution cell.
func snapParam(t, resolution float64) float64 {
	if t < resolution {
		return 0.0
	} else if 1.0-resolution < t {
		return 1.0
	}
	return t
}

// splitSets holds the deduplicated split parameters of every curve of both paths.
type splitSets struct {
	a, b         [][]float64
	clustersA    [][]cluster
	candidates   int
	depthLimited bool
	truncated    bool
}

// count returns the total number of split parameters.
func (s splitSets) count() int {
	n := 0
	for _, ts := range s.a {
		n += len(ts)
	}
	for _, ts := range s.b {
		n += len(ts)
	}
	return n
}

// findSplits runs the intersection search between the curves of as and bs and deduplicates the candidates per curve.
func findSplits(as, bs []Cubic, o Options) splitSets {
	f := newFinder(o)
	f.find(as, bs)

	rawA := make([][]float64, len(as))
	rawB := make([][]float64, len(bs))
	for _, z := range f.zs {
		rawA[z.i] = append(rawA[z.i], z.ta)
		rawB[z.j] = append(rawB[z.j], z.tb)
	}

	s := splitSets{
		a:            make([][]float64, len(as)),
		b:            make([][]float64, len(bs)),
		clustersA:    make([][]cluster, len(as)),
		candidates:   len(f.zs),
		depthLimited: f.depthLimited,
		truncated:    f.truncated,
	}
	for i := range as {
		s.clustersA[i] = dedupParams(rawA[i], o.Resolution)
		s.a[i] = splitParams(s.clustersA[i], o.Resolution)
	}
	for j := range bs {
		s.b[j] = splitParams(dedupParams(rawB[j], o.Resolution), o.Resolution)
	}
	return s
}

////////////////////////////////////////////////////////////////

// gridKey is a point quantized to a square grid cell, used as a map key for deduplicating points.
type gridKey struct {
	x, y int64
}

// pointSet is a set of points where points in the same or a neighbouring grid cell are considered equal. This is intentionally lossy.
type pointSet struct {
	cell   float64
	cells  map[gridKey]Point
	points []Point
}

func newPointSet(cell float64) *pointSet {
	return &pointSet{cell: cell, cells: map[gridKey]Point{}}
}

func (s *pointSet) key(p Point) gridKey {
	return gridKey{int64(math.Round(p.X / s.cell)), int64(math.Round(p.Y / s.cell))}
}

// Add adds p unless a point exists in the same or a neighbouring cell. It returns true if p was added.
func (s *pointSet) Add(p Point) bool {
	k := s.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			if _, ok := s.cells[gridKey{k.x + dx, k.y + dy}]; ok {
				return false
			}
		}
	}
	s.cells[k] = p
	s.points = append(s.points, p)
	return true
}

// Points returns the points sorted by their grid cell, by x and then y.
func (s *pointSet) Points() []Point {
	ps := append([]Point{}, s.points...)
	sort.Slice(ps, func(i, j int) bool {
		ki, kj := s.key(ps[i]), s.key(ps[j])
		if ki.x != kj.x {
			return ki.x < kj.x
		}
		return ki.y < kj.y
	})
	return ps
}

// flattenContours returns the curves of all contours in order.
func flattenContours(cs []Contour) []Cubic {
	curves := []Cubic{}
	for _, c := range cs {
		curves = append(curves, c.Curves...)
	}
	return curves
}

// closedContours decomposes p and implicitly closes every subpath.
func closedContours(p *Path) []Contour {
	cs := p.Contours()
	for i := range cs {
		cs[i] = cs[i].close()
	}
	return cs
}

// scale returns a length representative of the size of both paths, at least 1.
func scale(as, bs []Contour) float64 {
	s := 1.0
	for _, cs := range [][]Contour{as, bs} {
		for _, c := range cs {
			r := c.Bounds()
			s = math.Max(s, math.Max(r.W(), r.H()))
		}
	}
	return s
}

// IntersectionPoints returns the points where the boundaries of p and q cross or touch, for the given options.
func (o Options) IntersectionPoints(p, q *Path) ([]Point, Diagnostics) {
	start := time.Now()
	o = o.withDefaults()

	csA, csB := closedContours(p), closedContours(q)
	as, bs := flattenContours(csA), flattenContours(csB)
	s := findSplits(as, bs, o)

	set := newPointSet(o.Tolerance * scale(csA, csB))
	for i, clusters := range s.clustersA {
		for _, c := range clusters {
			for _, t := range c.roots() {
				set.Add(as[i].Eval(snapParam(t, o.Resolution)))
			}
		}
	}

	diag := Diagnostics{
		Candidates:   s.candidates,
		Splits:       s.count(),
		DepthLimited: s.depthLimited,
		Truncated:    s.truncated,
		Elapsed:      time.Since(start),
	}
	return set.Points(), diag
}

// IntersectionPoints returns the points where the boundaries of p and q cross or touch. Both paths are implicitly closed.
func IntersectionPoints(p, q *Path) []Point {
	zs, _ := DefaultOptions.IntersectionPoints(p, q)
	return zs
}

// Intersections returns the points where the boundaries of p and q cross or touch.
func (p *Path) Intersections(q *Path) []Point {
	return IntersectionPoints(p, q)
}
