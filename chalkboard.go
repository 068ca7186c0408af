// Classic textbook computations, one per package: convex hulls by gift
// wrapping, line-segment intersection, and ground-to-ground projectile
// motion.
//
// Everything works on plain values and returns fresh results. There is no
// shared state between the packages and nothing here ever returns an error;
// inputs with no meaningful answer (like asking for the hull of two points)
// get an empty result instead.
package chalkboard

import (
	"github.com/mvickers/chalkboard/geom"
	"github.com/mvickers/chalkboard/hull"
)

type Point = geom.Point
type Segment = geom.Segment

// ConvexHull returns the hull boundary of points, starting from the
// leftmost one. Fewer than three points yield an empty result.
func ConvexHull(points []Point) []Point {
	return hull.ConvexHull(points)
}

// SegmentsIntersect reports whether two closed segments share a point.
func SegmentsIntersect(a, b Segment) bool {
	return a.Intersects(b)
}
