package pathbool

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func triangleArea(tri [3]Point) float64 {
	return math.Abs(tri[1].Sub(tri[0]).PerpDot(tri[2].Sub(tri[0]))) / 2.0
}

func TestTessellate(t *testing.T) {
	var tts = []struct {
		p    *Path
		n    int
		area float64
	}{
		{&Path{}, 0, 0.0},
		{Rectangle(10.0, 10.0), 2, 100.0},
		{Difference(Rectangle(10.0, 10.0), Rectangle(4.0, 4.0).Translate(3.0, 3.0)), 8, 84.0},
		{Circle(1.0), -1, math.Pi},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tris, err := tt.p.Tessellate(1e-3)
			test.Error(t, err)
			if tt.n != -1 {
				test.T(t, len(tris), tt.n)
			}

			area := 0.0
			for _, tri := range tris {
				area += triangleArea(tri)
			}
			test.That(t, math.Abs(area-tt.area) < 1e-2, area, "!=", tt.area)
		})
	}
}
