package pathbool

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is returned for malformed or unsupported SVG path data.
var ErrBadPath = errors.New("bad path data")

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVGPath parses an SVG path data string and panics on error.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string, see https://www.w3.org/TR/SVG2/paths.html#PathData. Elliptical arcs are not supported.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	i := 0
	nums := func(f []float64) error {
		for j := range f {
			i += skipCommaWhitespace(path[i:])
			num, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				return fmt.Errorf("%w: expected number at position %d", ErrBadPath, i)
			}
			f[j] = num
			i += n
		}
		return nil
	}

	var prevCmd byte
	var cp Point // last control point, for smooth curves
	f := make([]float64, 6)
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		if 'A' <= path[i] && path[i] != 'e' && path[i] != 'E' {
			cmd = path[i]
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("%w: path must start with a command", ErrBadPath)
		} else if prevCmd == 'M' {
			cmd = 'L'
		} else if prevCmd == 'm' {
			cmd = 'l'
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: unexpected number after close at position %d", ErrBadPath, i)
		}

		x, y := p.Pos()
		rel := 'a' <= cmd
		off := func(a, b float64) (float64, float64) {
			if rel {
				return a + x, b + y
			}
			return a, b
		}

		switch cmd {
		case 'M', 'm':
			if err := nums(f[:2]); err != nil {
				return nil, err
			}
			a, b := off(f[0], f[1])
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			if err := nums(f[:2]); err != nil {
				return nil, err
			}
			a, b := off(f[0], f[1])
			p.LineTo(a, b)
		case 'H', 'h':
			if err := nums(f[:1]); err != nil {
				return nil, err
			}
			a := f[0]
			if rel {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			if err := nums(f[:1]); err != nil {
				return nil, err
			}
			b := f[0]
			if rel {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			if err := nums(f[:6]); err != nil {
				return nil, err
			}
			a, b := off(f[0], f[1])
			c, d := off(f[2], f[3])
			e, g := off(f[4], f[5])
			p.CubeTo(a, b, c, d, e, g)
			cp = Point{c, d}
		case 'S', 's':
			if err := nums(f[:4]); err != nil {
				return nil, err
			}
			c, d := off(f[0], f[1])
			e, g := off(f[2], f[3])
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cp.X, 2*y-cp.Y
			}
			p.CubeTo(a, b, c, d, e, g)
			cp = Point{c, d}
		case 'Q', 'q':
			if err := nums(f[:4]); err != nil {
				return nil, err
			}
			a, b := off(f[0], f[1])
			c, d := off(f[2], f[3])
			p.QuadTo(a, b, c, d)
			cp = Point{a, b}
		case 'T', 't':
			if err := nums(f[:2]); err != nil {
				return nil, err
			}
			c, d := off(f[0], f[1])
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cp.X, 2*y-cp.Y
			}
			p.QuadTo(a, b, c, d)
			cp = Point{a, b}
		case 'A', 'a':
			return nil, fmt.Errorf("%w: elliptical arcs are not supported", ErrBadPath)
		default:
			return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrBadPath, cmd, i-1)
		}
		prevCmd = cmd
	}
	return p, nil
}
