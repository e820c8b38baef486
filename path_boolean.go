package pathbool

import (
	"fmt"
	"time"
)

// Op is a boolean operation between two paths.
type Op int

// Boolean operations.
const (
	OpUnion      Op = iota // points in either path
	OpIntersect            // points in both paths
	OpDifference           // points in the first path but not the second
	OpXor                  // points in exactly one path
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpDifference:
		return "difference"
	case OpXor:
		return "xor"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp parses the name of a boolean operation as returned by Op.String.
func ParseOp(s string) (Op, error) {
	for _, op := range []Op{OpUnion, OpIntersect, OpDifference, OpXor} {
		if op.String() == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// selects returns whether a fragment with the given position is part of the result, and whether it must be reversed. Fragments on the shared boundary are taken from the first path only.
func (op Op) selects(pos position, fromA bool) (bool, bool) {
	switch op {
	case OpUnion:
		return pos == outside || fromA && pos == sharedSame, false
	case OpIntersect:
		return pos == inside || fromA && pos == sharedSame, false
	case OpDifference:
		if fromA {
			return pos == outside || pos == sharedOpposite, false
		}
		return pos == inside, true
	case OpXor:
		return pos == outside || pos == inside, pos == inside
	}
	return false, false
}

// operand is one path of a boolean operation, with its contours cut at the split parameters and classified against the other path.
type operand struct {
	contours  []Contour
	fragments [][]Cubic    // per contour
	positions [][]position // per fragment
	area      float64      // total signed area
}

func newOperand(cs []Contour, splits [][]float64, cl classifier, minSize float64) operand {
	ops := operand{
		contours:  cs,
		fragments: make([][]Cubic, len(cs)),
		positions: make([][]position, len(cs)),
	}
	i := 0
	for k, c := range cs {
		ops.area += c.SignedArea()
		for _, cb := range c.Curves {
			for _, frag := range cb.SplitAt(splits[i]) {
				if frag.size() < minSize {
					continue
				}
				ops.fragments[k] = append(ops.fragments[k], frag)
				ops.positions[k] = append(ops.positions[k], cl.classify(frag))
			}
			i++
		}
	}
	return ops
}

// whole returns the position of contour k when it is neither cut nor touching the other boundary, so that it can be kept or dropped unmodified.
func (ops operand) whole(k int, cut bool) (position, bool) {
	if cut || len(ops.positions[k]) == 0 {
		return outside, false
	}
	pos := ops.positions[k][0]
	for _, p := range ops.positions[k] {
		if p != pos || p == sharedSame || p == sharedOpposite {
			return outside, false
		}
	}
	return pos, true
}

// cutContours returns for every contour whether any of its curves has split parameters.
func cutContours(cs []Contour, splits [][]float64) []bool {
	cut := make([]bool, len(cs))
	i := 0
	for k, c := range cs {
		for range c.Curves {
			if 0 < len(splits[i]) {
				cut[k] = true
			}
			i++
		}
	}
	return cut
}

// Boolean returns the result of the boolean operation op between p and q. Both paths are implicitly closed. The contours of both paths are cut at their mutual intersections, every fragment is classified as inside, outside or on the boundary of the other path, and the fragments selected by op are stitched back into contours. Contours that are not cut are kept or dropped as a whole.
func (o Options) Boolean(op Op, p, q *Path) (*Path, Diagnostics) {
	start := time.Now()
	o = o.withDefaults()

	var diag Diagnostics
	csA, csB := closedContours(p), closedContours(q)
	if len(csA) == 0 || len(csB) == 0 {
		r := &Path{}
		switch {
		case len(csA) != 0 && (op == OpUnion || op == OpDifference || op == OpXor):
			r = FromContours(csA)
		case len(csB) != 0 && (op == OpUnion || op == OpXor):
			r = FromContours(csB)
		}
		diag.Contours = len(r.Contours())
		diag.Elapsed = time.Since(start)
		Logger().Debug("boolean", "op", op, "diag", diag)
		return r, diag
	}

	as, bs := flattenContours(csA), flattenContours(csB)
	s := findSplits(as, bs, o)
	diag.Candidates = s.candidates
	diag.Splits = s.count()
	diag.DepthLimited = s.depthLimited
	diag.Truncated = s.truncated

	size := scale(csA, csB)
	tol := boundaryTol(size)
	minSize := Epsilon * size
	opA := newOperand(csA, s.a, classifier{csA, csB, o.FillRule, tol}, minSize)
	opB := newOperand(csB, s.b, classifier{csB, csA, o.FillRule, tol}, minSize)

	result := []Contour{}
	frags := []Cubic{}
	collect := func(ops, other operand, cut []bool, fromA bool) {
		for k, c := range ops.contours {
			if pos, ok := ops.whole(k, cut[k]); ok {
				if keep, reverse := op.selects(pos, fromA); keep {
					// holes are oriented opposite to the path that contains them
					if reverse || op == OpXor && pos == inside {
						if (0.0 < c.SignedArea()) == (0.0 < other.area) {
							c = c.Reverse()
						}
					}
					result = append(result, c)
					diag.Fragments += len(c.Curves)
				}
				continue
			}
			for n, frag := range ops.fragments[k] {
				if keep, reverse := op.selects(ops.positions[k][n], fromA); keep {
					if reverse {
						frag = frag.Reverse()
					}
					frags = append(frags, frag)
				}
			}
		}
	}
	collect(opA, opB, cutContours(csA, s.a), true)
	collect(opB, opA, cutContours(csB, s.b), false)
	diag.Fragments += len(frags)

	for _, c := range stitch(frags, o.StitchTolerance) {
		if !c.Closed {
			diag.Open++
		}
		result = append(result, c)
	}
	diag.Contours = len(result)
	diag.Elapsed = time.Since(start)

	Logger().Debug("boolean", "op", op, "diag", diag)
	if diag.Degraded() {
		Logger().Warn("boolean result degraded", "op", op, "diag", diag)
	}
	return FromContours(result), diag
}

// Union returns the union of p and q, the points in either path.
func Union(p, q *Path) *Path {
	r, _ := DefaultOptions.Boolean(OpUnion, p, q)
	return r
}

// Intersect returns the intersection of p and q, the points in both paths.
func Intersect(p, q *Path) *Path {
	r, _ := DefaultOptions.Boolean(OpIntersect, p, q)
	return r
}

// Difference returns p minus q, the points in p but not in q.
func Difference(p, q *Path) *Path {
	r, _ := DefaultOptions.Boolean(OpDifference, p, q)
	return r
}

// Xor returns the exclusive or of p and q, the points in exactly one path.
func Xor(p, q *Path) *Path {
	r, _ := DefaultOptions.Boolean(OpXor, p, q)
	return r
}

// And returns the boolean path operation of path p AND q, i.e. the intersection of both.
func (p *Path) And(q *Path) *Path {
	return Intersect(p, q)
}

// Or returns the boolean path operation of path p OR q, i.e. the union of both.
func (p *Path) Or(q *Path) *Path {
	return Union(p, q)
}

// Xor returns the boolean path operation of path p XOR q, i.e. the symmetric difference of both.
func (p *Path) Xor(q *Path) *Path {
	return Xor(p, q)
}

// Not returns the boolean path operation of path p NOT q, i.e. the difference of both.
func (p *Path) Not(q *Path) *Path {
	return Difference(p, q)
}
