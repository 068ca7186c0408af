package hull

// This contains no actual tests. It is just a helper for checking hull
// results against inputs where the exact vertex sequence isn't worth
// spelling out by hand.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvickers/chalkboard/geom"
)

// Helper to check that a hull is valid for its input. The rules are:
// 1. Every input point is on or inside the polygon described by the hull.
// 2. The walk starts at the leftmost input point (first occurrence on ties).
// 3. Wrapping the hull again reproduces it, up to starting-point rotation.
func AssertValidHull(t *testing.T, points, hullPoints []geom.Point) {
	require.GreaterOrEqual(t, len(hullPoints), 3, "hull of %d points should be a polygon", len(points))

	// The wrap travels so that the inside is never to its left. A point
	// counter-clockwise of any directed hull edge is outside.
	n := len(hullPoints)
	for _, p := range points {
		for i, a := range hullPoints {
			b := hullPoints[(i+1)%n]
			require.NotEqual(t, geom.CounterClockwise, geom.Orient(a, b, p),
				"point %v is outside hull edge %v-%v", p, a, b)
		}
	}

	leftmost := points[0]
	for _, p := range points[1:] {
		if p.X < leftmost.X {
			leftmost = p
		}
	}
	require.Equal(t, leftmost, hullPoints[0], "hull should start at the leftmost input point")

	again := ConvexHull(hullPoints)
	requireSameCycle(t, hullPoints, again)
}

// requireSameCycle checks that two vertex sequences describe the same closed
// walk, allowing for a different starting vertex.
func requireSameCycle(t *testing.T, expected, actual []geom.Point) {
	require.Equal(t, len(expected), len(actual), "cycles differ in length")
	n := len(expected)

	offset := -1
	for i, p := range actual {
		if p == expected[0] {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "cycle %v has no vertex %v", actual, expected[0])

	for i := range expected {
		require.Equal(t, expected[i], actual[(offset+i)%n], "cycles diverge at position %d", i)
	}
}
