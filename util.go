package pathbool

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// MinHullExtent is the minimum width and height of a bounding hull. Straight curves would otherwise have a zero-area hull that never overlaps anything.
const MinHullExtent = 1e-4

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Near returns true if P and Q are within distance d of each other.
func (p Point) Near(q Point, d float64) bool {
	return p.Sub(q).Length() <= d
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm normalized OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle given by its lower-left and upper-right corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// rectFromPoints returns the smallest rectangle containing all points.
func rectFromPoints(ps ...Point) Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	r := Rect{ps[0].X, ps[0].Y, ps[0].X, ps[0].Y}
	for _, p := range ps[1:] {
		r = r.AddPoint(p)
	}
	return r
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// AddPoint returns the rectangle grown to include p.
func (r Rect) AddPoint(p Point) Rect {
	r.X0 = math.Min(r.X0, p.X)
	r.Y0 = math.Min(r.Y0, p.Y)
	r.X1 = math.Max(r.X1, p.X)
	r.Y1 = math.Max(r.Y1, p.Y)
	return r
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	r.X0 = math.Min(r.X0, q.X0)
	r.Y0 = math.Min(r.Y0, q.Y0)
	r.X1 = math.Max(r.X1, q.X1)
	r.Y1 = math.Max(r.Y1, q.Y1)
	return r
}

// Inflate grows the rectangle so that its width and height are at least size, keeping it centered.
func (r Rect) Inflate(size float64) Rect {
	if d := size - r.W(); 0.0 < d {
		r.X0 -= d / 2.0
		r.X1 += d / 2.0
	}
	if d := size - r.H(); 0.0 < d {
		r.Y0 -= d / 2.0
		r.Y1 += d / 2.0
	}
	return r
}

// Expand grows the rectangle by d on all sides.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Overlaps returns true if both rectangles overlap or touch.
func (r Rect) Overlaps(q Rect) bool {
	return r.X0 <= q.X1 && q.X0 <= r.X1 && r.Y0 <= q.Y1 && q.Y0 <= r.Y1
}

// Contains returns true if p lies within or on the edge of the rectangle.
func (r Rect) Contains(p Point) bool {
	return r.X0 <= p.X && p.X <= r.X1 && r.Y0 <= p.Y && p.Y <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

////////////////////////////////////////////////////////////////

// solveQuadraticFormula returns the real roots of a*x^2 + b*x + c = 0 in ascending order. Missing roots are NaN.
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			return math.NaN(), math.NaN()
		}
		return -c / b, math.NaN()
	}
	if c == 0.0 {
		x := -b / a
		if x < 0.0 {
			return x, 0.0
		}
		return 0.0, x
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Citardauq formula to avoid catastrophic cancellation when 4*a*c is small
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}
