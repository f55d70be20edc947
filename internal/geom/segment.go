package geom

// DistanceToSegment returns the shortest distance from point p to the line
// segment between a and b. The projection of p onto the segment's line is
// clamped to the segment; a zero-length segment falls back to the plain
// point distance.
func DistanceToSegment(p, a, b Vector) float64 {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	nearest := a.Add(ab.Scale(t))
	return p.Distance(nearest)
}
