package geom

// Point is a location on the integer grid. Points are plain values: two
// points are the same point exactly when their coordinates match, and
// nothing in this module mutates one after it is built. Integer coordinates
// keep every orientation test exact; there is no epsilon anywhere.
type Point struct {
	X int
	Y int
}

// Segment is the closed line segment between Start and End. Degenerate
// segments (Start == End) are allowed and behave as single points.
type Segment struct {
	Start Point
	End   Point
}
