package pathbool

import "math"

// snapStart moves the start point of c to p. Straight lines stay straight.
func snapStart(c Cubic, p Point) Cubic {
	if c.IsLine() {
		return lineCubic(p, c.P3)
	}
	c.P0 = p
	return c
}

// snapEnd moves the end point of c to p. Straight lines stay straight.
func snapEnd(c Cubic, p Point) Cubic {
	if c.IsLine() {
		return lineCubic(c.P0, p)
	}
	c.P3 = p
	return c
}

// stitch joins fragments into contours. Starting from any remaining fragment, it repeatedly appends the fragment whose start point is nearest to the current position. A fragment is reversed and matched by its end point only when no start point is in reach. Joints are snapped so that consecutive curves meet exactly. A contour is closed when the current position returns to its start within tol and no other fragment continues closer, and it is left open when no fragment is within tol. Fragments left over start a new contour.
func stitch(frags []Cubic, tol float64) []Contour {
	used := make([]bool, len(frags))
	remaining := len(frags)

	cs := []Contour{}
	for 0 < remaining {
		cur := Contour{}
		for k := range frags {
			if !used[k] {
				used[k] = true
				remaining--
				cur.Curves = append(cur.Curves, frags[k])
				break
			}
		}

		for {
			end, start := cur.End(), cur.Start()
			best, bestDist, reverse := -1, math.Inf(1), false
			for k, f := range frags {
				if !used[k] {
					if d := f.P0.Sub(end).Length(); d <= tol && d < bestDist {
						best, bestDist = k, d
					}
				}
			}
			if best == -1 {
				for k, f := range frags {
					if !used[k] {
						if d := f.P3.Sub(end).Length(); d <= tol && d < bestDist {
							best, bestDist, reverse = k, d, true
						}
					}
				}
			}

			// close unless another fragment continues closer than the start
			if d := end.Sub(start).Length(); d <= tol && d <= bestDist && (1 < len(cur.Curves) || !cur.Curves[0].IsLine()) {
				last := len(cur.Curves) - 1
				cur.Curves[last] = snapEnd(cur.Curves[last], start)
				cur.Closed = true
				break
			} else if best == -1 {
				break
			}

			used[best] = true
			remaining--
			f := frags[best]
			if reverse {
				f = f.Reverse()
			}
			cur.Curves = append(cur.Curves, snapStart(f, end))
		}
		cs = append(cs, cur)
	}
	return cs
}
