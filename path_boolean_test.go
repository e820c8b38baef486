package pathbool

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// lens is the area of the intersection of two unit circles one unit apart.
var lens = 2.0*math.Pi/3.0 - math.Sqrt(3.0)/2.0

func nearRect(a, b Rect, tol float64) bool {
	return math.Abs(a.X0-b.X0) < tol && math.Abs(a.Y0-b.Y0) < tol && math.Abs(a.X1-b.X1) < tol && math.Abs(a.Y1-b.Y1) < tol
}

func TestOp(t *testing.T) {
	for _, op := range []Op{OpUnion, OpIntersect, OpDifference, OpXor} {
		t.Run(op.String(), func(t *testing.T) {
			op2, err := ParseOp(op.String())
			test.Error(t, err)
			test.T(t, op2, op)
		})
	}
	_, err := ParseOp("subtract")
	test.That(t, err != nil)
	test.T(t, Op(9).String(), "Op(9)")
}

func TestOpSelects(t *testing.T) {
	var tts = []struct {
		op            Op
		pos           position
		fromA         bool
		keep, reverse bool
	}{
		{OpUnion, outside, true, true, false},
		{OpUnion, inside, true, false, false},
		{OpUnion, sharedSame, true, true, false},
		{OpUnion, sharedSame, false, false, false},
		{OpUnion, sharedOpposite, true, false, false},
		{OpIntersect, inside, false, true, false},
		{OpIntersect, outside, false, false, false},
		{OpIntersect, sharedSame, true, true, false},
		{OpDifference, outside, true, true, false},
		{OpDifference, sharedOpposite, true, true, false},
		{OpDifference, sharedSame, true, false, false},
		{OpDifference, inside, false, true, true},
		{OpDifference, outside, false, false, true},
		{OpXor, outside, false, true, false},
		{OpXor, inside, true, true, true},
		{OpXor, sharedSame, true, false, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			keep, reverse := tt.op.selects(tt.pos, tt.fromA)
			test.T(t, keep, tt.keep)
			if keep {
				test.T(t, reverse, tt.reverse)
			}
		})
	}
}

func TestBooleanCircles(t *testing.T) {
	p, q := Circle(1.0), Circle(1.0).Translate(1.0, 0.0)
	h := math.Sqrt(3.0) / 2.0

	var tts = []struct {
		op       Op
		area     float64
		bounds   Rect
		contours int
	}{
		{OpUnion, 2.0*math.Pi - lens, Rect{-1.0, -1.0, 2.0, 1.0}, 1},
		{OpIntersect, lens, Rect{0.0, -h, 1.0, h}, 1},
		{OpDifference, math.Pi - lens, Rect{-1.0, -1.0, 0.5, 1.0}, 1},
		{OpXor, 2.0 * (math.Pi - lens), Rect{-1.0, -1.0, 2.0, 1.0}, -1},
	}
	for _, tt := range tts {
		t.Run(tt.op.String(), func(t *testing.T) {
			r, diag := DefaultOptions.Boolean(tt.op, p, q)
			test.T(t, diag.Open, 0)
			test.T(t, diag.Splits, 4)
			if tt.contours != -1 {
				test.T(t, len(r.Contours()), tt.contours)
			}
			test.That(t, r.Closed())
			test.That(t, math.Abs(r.Area()-tt.area) < 1e-2, r.Area(), "!=", tt.area)
			test.That(t, nearRect(r.Bounds(), tt.bounds, 1e-2), r.Bounds(), "!=", tt.bounds)
		})
	}
}

func TestBooleanRectangles(t *testing.T) {
	a := Rectangle(10.0, 10.0)
	overlap := Rectangle(10.0, 10.0).Translate(5.0, 5.0)
	abut := Rectangle(10.0, 10.0).Translate(10.0, 0.0)
	nested := Rectangle(4.0, 4.0).Translate(3.0, 3.0)
	apart := Rectangle(10.0, 10.0).Translate(20.0, 0.0)

	var tts = []struct {
		op   Op
		p, q *Path
		area float64
		n    int
	}{
		{OpUnion, a, overlap, 175.0, 1},
		{OpIntersect, a, overlap, 25.0, 1},
		{OpDifference, a, overlap, 75.0, 1},
		{OpXor, a, overlap, 150.0, -1}, // one or two contours touching at the intersections
		{OpUnion, a, abut, 200.0, 1},
		{OpIntersect, a, abut, 0.0, 0},
		{OpDifference, a, abut, 100.0, 1},
		{OpUnion, a, nested, 100.0, 1},
		{OpIntersect, a, nested, 16.0, 1},
		{OpDifference, a, nested, 84.0, 2},
		{OpDifference, nested, a, 0.0, 0},
		{OpXor, a, nested, 84.0, 2},
		{OpUnion, a, apart, 200.0, 2},
		{OpIntersect, a, apart, 0.0, 0},
		{OpDifference, a, apart, 100.0, 1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i, tt.op), func(t *testing.T) {
			r, diag := DefaultOptions.Boolean(tt.op, tt.p, tt.q)
			test.T(t, diag.Open, 0)
			if tt.n != -1 {
				test.T(t, len(r.Contours()), tt.n, r)
			}
			test.That(t, math.Abs(r.Area()-tt.area) < 1e-6, r.Area(), "!=", tt.area)
		})
	}
}

func TestBooleanRectilinear(t *testing.T) {
	a := Rectangle(100.0, 100.0)
	b := Rectangle(100.0, 100.0).Translate(30.0, 0.0)

	r := Intersect(a, b)
	test.That(t, math.Abs(r.Area()-7000.0) < 1e-9, r.Area())
	test.That(t, nearRect(r.Bounds(), Rect{30.0, 0.0, 100.0, 100.0}, 1e-9), r.Bounds())

	// every vertex of the result lies on one of the operands' vertical edges
	for _, op := range []Op{OpUnion, OpIntersect, OpDifference, OpXor} {
		r, _ := DefaultOptions.Boolean(op, a, b)
		for _, c := range r.Contours() {
			for _, cb := range c.Curves {
				onEdge := false
				for _, x := range []float64{0.0, 30.0, 100.0, 130.0} {
					onEdge = onEdge || math.Abs(cb.P0.X-x) < 1e-9
				}
				test.That(t, onEdge, op, cb.P0)
			}
		}
	}
}

func TestBooleanOppositeWinding(t *testing.T) {
	a := Circle(1.0)
	b := Circle(1.0).Reverse().Translate(5.0, 0.0)
	test.That(t, math.Abs(Union(a, b).Area()-2.0*math.Pi) < 1e-3, Union(a, b).Area())
	test.That(t, math.Abs(Xor(a, b).Area()-2.0*math.Pi) < 1e-3, Xor(a, b).Area())
}

func TestBooleanHole(t *testing.T) {
	r := Difference(Rectangle(10.0, 10.0), Rectangle(4.0, 4.0).Translate(3.0, 3.0))
	cs := r.Contours()
	test.T(t, len(cs), 2)
	test.That(t, 0.0 < cs[0].SignedArea())
	test.That(t, cs[1].SignedArea() < 0.0)
	test.That(t, !r.Contains(5.0, 5.0, NonZero))
	test.That(t, r.Contains(1.0, 5.0, NonZero))

	// a clockwise outer path gets a counter clockwise hole
	r = Difference(Rectangle(10.0, 10.0).Reverse(), Rectangle(4.0, 4.0).Translate(3.0, 3.0))
	cs = r.Contours()
	test.T(t, len(cs), 2)
	test.That(t, cs[0].SignedArea() < 0.0)
	test.That(t, 0.0 < cs[1].SignedArea())
}

func TestBooleanSelf(t *testing.T) {
	for _, p := range []*Path{Rectangle(10.0, 10.0), Circle(2.0), StarPolygon(5, 4.0, 2.0, true)} {
		t.Run(p.String(), func(t *testing.T) {
			area, bounds := p.Area(), p.Bounds()

			r := Union(p, p)
			test.That(t, math.Abs(r.Area()-area) < 1e-6, r.Area(), "!=", area)
			test.That(t, nearRect(r.Bounds(), bounds, 1e-6))

			r = Intersect(p, p)
			test.That(t, math.Abs(r.Area()-area) < 1e-6, r.Area(), "!=", area)

			test.That(t, Difference(p, p).Empty())
			test.That(t, Xor(p, p).Empty())
		})
	}
}

func TestBooleanCommutative(t *testing.T) {
	var tts = []struct {
		p, q *Path
	}{
		{Circle(1.0), Circle(1.0).Translate(1.0, 0.0)},
		{Circle(1.0), Rectangle(2.0, 1.0).Translate(-0.5, 0.3)},
		{Ellipse(3.0, 1.0), Ellipse(1.0, 3.0)},
		{RegularPolygon(6, 2.0, true), StarPolygon(5, 2.5, 1.0, true)},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			for _, op := range []Op{OpUnion, OpIntersect, OpXor} {
				r0, diag0 := DefaultOptions.Boolean(op, tt.p, tt.q)
				r1, diag1 := DefaultOptions.Boolean(op, tt.q, tt.p)
				test.T(t, diag0.Open, 0, op)
				test.T(t, diag1.Open, 0, op)
				test.That(t, math.Abs(r0.Area()-r1.Area()) < 1e-3, op, r0.Area(), "!=", r1.Area())
				test.That(t, nearRect(r0.Bounds(), r1.Bounds(), 1e-3), op, r0.Bounds(), "!=", r1.Bounds())
			}

			// inclusion-exclusion
			areaP, areaQ := tt.p.Area(), tt.q.Area()
			union := Union(tt.p, tt.q).Area()
			intersect := Intersect(tt.p, tt.q).Area()
			test.That(t, intersect <= math.Min(areaP, areaQ)+1e-6)
			test.That(t, math.Max(areaP, areaQ) <= union+1e-6)
			test.That(t, math.Abs(union+intersect-areaP-areaQ) < 1e-3, union, intersect, areaP, areaQ)
		})
	}
}

func TestBooleanEmpty(t *testing.T) {
	p := Rectangle(10.0, 10.0)
	empty := &Path{}
	test.T(t, Union(p, empty).String(), "M0 0L10 0L10 10L0 10z")
	test.T(t, Union(empty, p).String(), "M0 0L10 0L10 10L0 10z")
	test.T(t, Difference(p, empty).String(), "M0 0L10 0L10 10L0 10z")
	test.T(t, Xor(empty, p).String(), "M0 0L10 0L10 10L0 10z")
	test.That(t, Intersect(p, empty).Empty())
	test.That(t, Difference(empty, p).Empty())
	test.That(t, Union(empty, nil).Empty())
}

func TestBooleanOpenOperand(t *testing.T) {
	// open subpaths are closed implicitly
	r := Intersect(MustParseSVGPath("M0 0L10 0L10 10L0 10"), Rectangle(10.0, 10.0).Translate(5.0, 5.0))
	test.That(t, math.Abs(r.Area()-25.0) < 1e-6, r.Area())
	test.That(t, r.Closed())
}

func TestPathBooleanMethods(t *testing.T) {
	p, q := Rectangle(10.0, 10.0), Rectangle(10.0, 10.0).Translate(5.0, 5.0)
	test.That(t, math.Abs(p.And(q).Area()-25.0) < 1e-6)
	test.That(t, math.Abs(p.Or(q).Area()-175.0) < 1e-6)
	test.That(t, math.Abs(p.Not(q).Area()-75.0) < 1e-6)
	test.That(t, math.Abs(p.Xor(q).Area()-150.0) < 1e-6)
}

func TestBooleanFillRule(t *testing.T) {
	// two nested squares in the same direction: a ring under EvenOdd, a filled square under NonZero
	p := Rectangle(10.0, 10.0).Append(Rectangle(4.0, 4.0).Translate(3.0, 3.0))
	q := Rectangle(2.0, 2.0).Translate(4.0, 4.0)

	r, _ := DefaultOptions.Boolean(OpIntersect, p, q)
	test.That(t, r.Empty(), r)

	o := DefaultOptions
	o.FillRule = NonZero
	r, _ = o.Boolean(OpIntersect, p, q)
	test.That(t, math.Abs(r.Area()-4.0) < 1e-6, r)
}

func TestBooleanDiagnostics(t *testing.T) {
	p, q := Circle(1.0), Circle(1.0).Translate(1.0, 0.0)
	_, diag := DefaultOptions.Boolean(OpUnion, p, q)
	test.That(t, 0 < diag.Candidates)
	test.T(t, diag.Splits, 4)
	test.T(t, diag.Contours, 1)
	test.T(t, diag.Fragments, 8)
	test.That(t, !diag.Degraded())

	// an invalid option falls back to the defaults
	o := Options{Tolerance: -1.0}
	r, diag := o.Boolean(OpUnion, p, q)
	test.T(t, diag.Contours, 1)
	test.That(t, math.Abs(r.Area()-(2.0*math.Pi-lens)) < 1e-2)
}
