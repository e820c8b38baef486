package pathbool

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5, 2)
	test.That(t, p.Empty())

	p.LineTo(6, 2)
	test.That(t, !p.Empty())

	var q *Path
	test.That(t, q.Empty())
	test.T(t, q.Len(), 0)
}

func TestPathEquals(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0M5 10")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	test.That(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Closed())
	test.That(t, MustParseSVGPath("M5 0L5 10z").Closed())
	test.That(t, !MustParseSVGPath("M5 0L5 10zM5 10").Closed())
	test.That(t, MustParseSVGPath("M5 0L5 10zM5 10L6 10z").Closed())
}

func TestPathAppend(t *testing.T) {
	test.T(t, MustParseSVGPath("M5 0L5 10").Append(nil).String(), "M5 0L5 10")
	test.T(t, (&Path{}).Append(MustParseSVGPath("M5 0L5 10")).String(), "M5 0L5 10")

	p := MustParseSVGPath("M5 0L5 10").Append(MustParseSVGPath("M5 15L10 15"))
	test.T(t, p.String(), "M5 0L5 10M5 15L10 15")

	// the receiver is not modified
	q := MustParseSVGPath("M5 0L5 10")
	q.Append(MustParseSVGPath("M1 1L2 2"))
	test.T(t, q.String(), "M5 0L5 10")
}

func TestPathClose(t *testing.T) {
	p := &Path{}
	p.Close()
	test.T(t, p.Len(), 0)

	p.MoveTo(1, 1)
	p.Close()
	test.T(t, p.String(), "M1 1")

	p.LineTo(2, 1)
	p.Close()
	p.Close()
	test.T(t, p.String(), "M1 1L2 1z")

	x, y := p.Pos()
	test.T(t, x, 1.0)
	test.T(t, y, 1.0)
}

func TestPathString(t *testing.T) {
	var tts = []struct {
		p    *Path
		want string
	}{
		{&Path{}, ""},
		{Rectangle(10, 5), "M0 0L10 0L10 5L0 5z"},
		{MustParseSVGPath("M0.5 -1.25Q1 2 3 4C5 6 7 8 9 10"), "M.5 -1.25Q1 2 3 4C5 6 7 8 9 10"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.p.String(), tt.want)
		})
	}
}

func TestPathParseSVG(t *testing.T) {
	var tts = []struct {
		s    string
		want string
	}{
		{"M10 10L20 10", "M10 10L20 10"},
		{"m10 10l10 0", "M10 10L20 10"},
		{"M10,10 20,10 20,20z", "M10 10L20 10L20 20z"},
		{"M10 10H20V20h-10v-10", "M10 10L20 10L20 20L10 20L10 10"},
		{"M0 0C0 1 1 1 1 0S2 -1 2 0", "M0 0C0 1 1 1 1 0C1 -1 2 -1 2 0"},
		{"M0 0Q1 1 2 0T4 0", "M0 0Q1 1 2 0Q3 -1 4 0"},
		{"M0 0c0 1 1 1 1 0", "M0 0C0 1 1 1 1 0"},
		{"M0 0q1 1 2 0t2 0", "M0 0Q1 1 2 0Q3 -1 4 0"},
		{"M1 1L2 2zL3 3", "M1 1L2 2zL3 3"},
		{"M1e1 2E-1", "M10 .2"},
		{"  M 1 2 \n L 3 4 ", "M1 2L3 4"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, err := ParseSVGPath(tt.s)
			test.Error(t, err)
			test.T(t, p.String(), tt.want)
		})
	}
}

func TestPathParseSVGErrors(t *testing.T) {
	var tts = []string{
		"5",
		"M10",
		"M10 10L",
		"M10 10A5 5 0 0 1 20 20",
		"M10 10X20",
		"M10 10L20 20z5",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSVGPath(tt)
			test.That(t, errors.Is(err, ErrBadPath), err)
		})
	}
}

func TestPathContours(t *testing.T) {
	var tts = []struct {
		p       string
		n       []int
		closed  []bool
		reassem string
	}{
		{"M0 0L10 0L10 10L0 10z", []int{4}, []bool{true}, "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 10L0 10L0 0z", []int{4}, []bool{true}, "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 10", []int{2}, []bool{false}, "M0 0L10 0L10 10"},
		{"M0 0L10 0L10 0L10 10", []int{2}, []bool{false}, "M0 0L10 0L10 10"},
		{"M0 0L10 0zM20 0L30 0L30 10z", []int{2, 3}, []bool{true, true}, "M0 0L10 0zM20 0L30 0L30 10z"},
		{"M0 0C0 10 10 10 10 0z", []int{2}, []bool{true}, "M0 0C0 10 10 10 10 0z"},
		{"M0 0M5 5L6 6", []int{1}, []bool{false}, "M5 5L6 6"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			cs := MustParseSVGPath(tt.p).Contours()
			test.T(t, len(cs), len(tt.n))
			for k, c := range cs {
				test.T(t, len(c.Curves), tt.n[k])
				test.T(t, c.Closed, tt.closed[k])
				for j := 1; j < len(c.Curves); j++ {
					test.T(t, c.Curves[j].P0, c.Curves[j-1].P3)
				}
			}
			test.T(t, FromContours(cs).String(), tt.reassem)
		})
	}
}

func TestPathContoursQuad(t *testing.T) {
	cs := MustParseSVGPath("M0 0Q1 2 2 0").Contours()
	test.T(t, len(cs), 1)
	test.That(t, cs[0].Curves[0].Eval(0.5).Equals(Point{1.0, 1.0}))
}

func TestPathReverse(t *testing.T) {
	var tts = []struct {
		p    string
		want string
	}{
		{"", ""},
		{"M5 5L10 10", "M10 10L5 5"},
		{"M0 0L10 0L10 10z", "M0 0L10 10L10 0z"},
		{"M0 0C0 1 1 1 1 0", "M1 0C1 1 0 1 0 0"},
		{"M0 0L1 0zM5 5L6 5", "M0 0L1 0zM6 5L5 5"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, MustParseSVGPath(tt.p).Reverse().String(), tt.want)
		})
	}
}

func TestPathBounds(t *testing.T) {
	test.T(t, (&Path{}).Bounds(), Rect{})
	test.T(t, MustParseSVGPath("M2 3L10 3L10 7z").Bounds(), Rect{2.0, 3.0, 10.0, 7.0})

	r := MustParseSVGPath("M0 0C0 1 1 1 1 0").Bounds()
	test.That(t, math.Abs(r.Y1-0.75) < 1e-9)

	r = Circle(2.0).Translate(5.0, 5.0).Bounds()
	test.That(t, math.Abs(r.X0-3.0) < 1e-9 && math.Abs(r.X1-7.0) < 1e-9)
	test.That(t, math.Abs(r.Y0-3.0) < 1e-9 && math.Abs(r.Y1-7.0) < 1e-9)
}

func TestPathArea(t *testing.T) {
	var tts = []struct {
		p    *Path
		area float64
	}{
		{&Path{}, 0.0},
		{Rectangle(4.0, 5.0), 20.0},
		{Rectangle(4.0, 5.0).Reverse(), 20.0},
		{MustParseSVGPath("M0 0L4 0L4 5L0 5"), 20.0}, // implicitly closed
		{Circle(1.0), math.Pi},
		{Grid(10.0, 10.0, 2, 2, 2.0), 84.0},
		{Rectangle(4.0, 5.0).Append(Rectangle(4.0, 5.0).Reverse().Translate(10.0, 0.0)), 40.0},
		{Rectangle(10.0, 10.0).Append(Rectangle(4.0, 4.0).Translate(3.0, 3.0)), 84.0},
		{Rectangle(10.0, 10.0).Append(Rectangle(6.0, 6.0).Translate(2.0, 2.0).Reverse()).Append(Rectangle(2.0, 2.0).Translate(4.0, 4.0)), 68.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			area := tt.p.Area()
			test.That(t, math.Abs(area-tt.area) < 1e-3*math.Max(1.0, tt.area), area, "!=", tt.area)
		})
	}
}

func TestPathTranslate(t *testing.T) {
	p := MustParseSVGPath("M1 2L3 4z")
	test.T(t, p.Translate(1.0, -1.0).String(), "M2 1L4 3z")
	test.T(t, p.String(), "M1 2L3 4z")
}

func TestPathContains(t *testing.T) {
	square := Rectangle(10.0, 10.0)
	ring := Rectangle(10.0, 10.0).Append(Rectangle(4.0, 4.0).Translate(3.0, 3.0))
	ringCW := Rectangle(10.0, 10.0).Append(Rectangle(4.0, 4.0).Translate(3.0, 3.0).Reverse())

	var tts = []struct {
		p        *Path
		x, y     float64
		fillRule FillRule
		want     bool
	}{
		{square, 5.0, 5.0, EvenOdd, true},
		{square, 15.0, 5.0, EvenOdd, false},
		{square, -5.0, 5.0, EvenOdd, false},
		{square, 5.0, 0.0, EvenOdd, true}, // ray through vertices counts once
		{square, 5.0, 10.0, EvenOdd, false},
		{ring, 1.0, 5.0, EvenOdd, true},
		{ring, 5.0, 5.0, EvenOdd, false},
		{ring, 5.0, 5.0, NonZero, true},
		{ringCW, 5.0, 5.0, NonZero, false},
		{Circle(1.0), 0.0, 0.0, EvenOdd, true},
		{Circle(1.0), 0.0, 0.99, EvenOdd, true},
		{Circle(1.0), 0.0, 1.01, EvenOdd, false},
		{Circle(1.0), 0.8, 0.8, EvenOdd, false},
		{MustParseSVGPath("M0 0L10 0L5 10"), 5.0, 2.0, EvenOdd, true}, // open subpath
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.p.Contains(tt.x, tt.y, tt.fillRule), tt.want)
		})
	}
}

func TestPathNestContours(t *testing.T) {
	p := Rectangle(10.0, 10.0).Append(Rectangle(6.0, 6.0).Translate(2.0, 2.0)).Append(Rectangle(2.0, 2.0).Translate(4.0, 4.0)).Append(Rectangle(1.0, 1.0).Translate(20.0, 0.0))
	depth, parent := nestContours(p.Contours())
	test.T(t, depth, []int{0, 1, 2, 0})
	test.T(t, parent, []int{-1, 0, 1, -1})
}
