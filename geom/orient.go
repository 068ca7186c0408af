// Package geom provides exact primitives for plane geometry on integer
// coordinates: points, segments, orientation tests, and segment
// intersection.
package geom

// Orientation is the rotational sense of an ordered triplet of points.
type Orientation int

const (
	Collinear Orientation = iota
	CounterClockwise
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "collinear"
	}
}

// Orient classifies the turn made at q when traveling p -> q -> r, from the
// sign of the cross product of the two steps. The sense follows screen
// coordinates (y growing downward); Clockwise is the negative branch. The
// hull wrap in package hull replaces its candidate on Clockwise and only on
// Clockwise; that choice also decides which collinear boundary points
// survive, so the sign mapping here must not be flipped.
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}
