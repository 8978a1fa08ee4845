package geometry

import "math"

// Segment is a straight line between A and B.
type Segment struct {
	A Vector2D `json:"a" yaml:"a"`
	B Vector2D `json:"b" yaml:"b"`
}

func (s Segment) Len() float64 {
	return s.A.DistanceTo(s.B)
}

// Midpoint of the segment.
func (s Segment) Midpoint() Vector2D {
	return s.A.Lerp(s.B, 0.5)
}

// RayIntersect returns the distance t along the ray origin + t*dir at which it
// crosses the segment. dir does not need to be unit length; t is expressed in
// multiples of dir. Parallel and colinear segments never report a hit.
func (s Segment) RayIntersect(origin, dir Vector2D) (float64, bool) {
	edge := s.B.Sub(s.A)
	denom := dir.Cross(edge)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	diff := s.A.Sub(origin)
	t := diff.Cross(edge) / denom
	u := diff.Cross(dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
