package geom

// Intersects reports whether s and other share at least one point. The
// general case checks that each segment's endpoints straddle the other's
// supporting line; endpoints touching, T-junctions and collinear overlap
// fall through to the bounding-box checks below.
func (s Segment) Intersects(other Segment) bool {
	p1, p2 := s.Start, s.End
	p3, p4 := other.Start, other.End

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 < 0 && d2 > 0) || (d1 > 0 && d2 < 0)) &&
		((d3 < 0 && d4 > 0) || (d3 > 0 && d4 < 0)) {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// direction is the raw cross product of (q - p) and (r - p). Only the sign
// is meaningful. Note this is not the same expression Orient uses; Orient
// pivots on the middle point, direction pivots on the first.
func direction(p, q, r Point) int {
	return (r.Y-p.Y)*(q.X-p.X) - (r.X-p.X)*(q.Y-p.Y)
}

// onSegment reports whether r lies within the bounding box of pq. Callers
// must have already established that r is collinear with pq.
func onSegment(p, q, r Point) bool {
	return minInt(p.X, q.X) <= r.X && r.X <= maxInt(p.X, q.X) &&
		minInt(p.Y, q.Y) <= r.Y && r.Y <= maxInt(p.Y, q.Y)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
