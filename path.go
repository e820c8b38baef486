package pathbool

import (
	"math"
	stdstrconv "strconv"

	"github.com/tdewolff/parse/v2/strconv"
)

// PathCmd is a drawing instruction of a path.
type PathCmd int

// Path commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

// cmdLen returns the number of coordinate values a command carries.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubeToCmd:
		return 6
	}
	return 0
}

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case QuadToCmd:
		return "Q"
	case CubeToCmd:
		return "C"
	case CloseCmd:
		return "z"
	}
	return "?"
}

// Path is a sequence of drawing instructions (MoveTo, LineTo, QuadTo, CubeTo, Close) with floating point coordinates. A path may hold several subpaths, each starting with a MoveTo. Paths are built with the drawing methods; all operations on a path return a new path and leave the receiver untouched.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64 // start of the current subpath
	y0   float64
}

// Empty returns true if the path has no drawing commands other than MoveTo.
func (p *Path) Empty() bool {
	if p == nil {
		return true
	}
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Len returns the number of commands.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.cmds)
}

// Pos returns the current position of the pen.
func (p *Path) Pos() (float64, float64) {
	if len(p.cmds) > 0 && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if len(p.d) > 1 {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// StartPos returns the start position of the current subpath.
func (p *Path) StartPos() (float64, float64) {
	return p.x0, p.y0
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	if p == nil {
		return &Path{}
	}
	return &Path{
		cmds: append([]PathCmd{}, p.cmds...),
		d:    append([]float64{}, p.d...),
		x0:   p.x0,
		y0:   p.y0,
	}
}

// Append returns a new path with the subpaths of q appended to those of p. If q does not start with a MoveTo, one is inserted at the origin.
func (p *Path) Append(q *Path) *Path {
	r := p.Copy()
	if q.Empty() {
		return r
	}
	if q.cmds[0] != MoveToCmd {
		r.MoveTo(0.0, 0.0)
	}
	r.cmds = append(r.cmds, q.cmds...)
	r.d = append(r.d, q.d...)
	r.x0, r.y0 = q.x0, q.y0
	return r
}

// Closed returns true if the last subpath of p is closed.
func (p *Path) Closed() bool {
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// Equals returns true if p and q have the same commands and their coordinates are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if p.Len() != q.Len() || len(p.d) != len(q.d) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if !equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Translate returns the path moved by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	r := p.Copy()
	for i := 0; i+1 < len(r.d); i += 2 {
		r.d[i+0] += x
		r.d[i+1] += y
	}
	r.x0 += x
	r.y0 += y
	return r
}

// Reverse returns the path with every subpath traversed in the opposite direction.
func (p *Path) Reverse() *Path {
	cs := p.Contours()
	for i := range cs {
		cs[i] = cs[i].Reverse()
	}
	return FromContours(cs)
}

// Bounds returns the tight bounding box of the path.
func (p *Path) Bounds() Rect {
	first := true
	r := Rect{}
	for _, c := range p.Contours() {
		for _, cb := range c.Curves {
			if first {
				r = cb.Bounds()
				first = false
			} else {
				r = r.Add(cb.Bounds())
			}
		}
	}
	return r
}

// Area returns the area enclosed by the subpaths, which are implicitly closed. Subpaths nested inside an odd number of others are holes and subtract, regardless of their winding.
func (p *Path) Area() float64 {
	cs := p.Contours()
	for i := range cs {
		cs[i] = cs[i].close()
	}
	depth, _ := nestContours(cs)

	area := 0.0
	for i, c := range cs {
		if depth[i]%2 == 0 {
			area += math.Abs(c.SignedArea())
		} else {
			area -= math.Abs(c.SignedArea())
		}
	}
	return area
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a straight line from the current position to (x,y).
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// QuadTo adds a quadratic Bézier with control point (x1,y1) and end point (x,y).
func (p *Path) QuadTo(x1, y1, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, x1, y1, x, y)
}

// CubeTo adds a cubic Bézier with control points (x1,y1) and (x2,y2) and end point (x,y).
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, x1, y1, x2, y2, x, y)
}

// Close closes the current subpath with a line back to its start. It is a no-op for an empty or already closed subpath.
func (p *Path) Close() {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd || p.cmds[len(p.cmds)-1] == MoveToCmd {
		return
	}
	p.cmds = append(p.cmds, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Precision is the number of decimals used when formatting coordinates.
var Precision = 12

func appendNum(b []byte, f float64) []byte {
	if f == 0.0 {
		return append(b, '0') // also catches negative zero
	}
	if b2, ok := strconv.AppendFloat(b, f, Precision); ok {
		return b2
	}
	return stdstrconv.AppendFloat(b, f, 'g', Precision+1, 64)
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	b := []byte{}
	i := 0
	for _, cmd := range p.cmds {
		b = append(b, cmd.String()...)
		for j := 0; j < cmdLen(cmd); j++ {
			if 0 < j {
				b = append(b, ' ')
			}
			b = appendNum(b, p.d[i+j])
		}
		i += cmdLen(cmd)
	}
	return string(b)
}
