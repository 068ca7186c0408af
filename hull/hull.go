// Package hull computes convex hulls of integer point sets by gift wrapping
// (Jarvis march).
package hull

import "github.com/mvickers/chalkboard/geom"

// ConvexHull returns the boundary of the smallest convex polygon enclosing
// points, one vertex per element, starting from the leftmost input point
// (ties go to the first occurrence). The closing edge back to the start is
// implied, not materialized.
//
// Fewer than three points have no enclosing polygon, so the result is
// empty. That is the documented answer for degenerate input, not a failure;
// this function has no error conditions at all.
//
// Each wrap step scans every point to find the next vertex, so the cost is
// O(n·h) for h hull vertices. The input is read only; the result is freshly
// allocated.
func ConvexHull(points []geom.Point) []geom.Point {
	if len(points) < 3 {
		return nil
	}

	leftmost := 0
	for i := 1; i < len(points); i++ {
		if points[i].X < points[leftmost].X {
			leftmost = i
		}
	}

	var result []geom.Point
	p := leftmost
	for {
		result = append(result, points[p])

		// The candidate starts as the next point in input order. Any point
		// clockwise of the current candidate, as seen from p, displaces it.
		// Collinear points never displace the candidate, which is also what
		// keeps duplicates of the candidate from churning the scan.
		q := (p + 1) % len(points)
		for i := range points {
			if geom.Orient(points[p], points[i], points[q]) == geom.Clockwise {
				q = i
			}
		}

		p = q
		if p == leftmost {
			break
		}
	}
	return result
}
