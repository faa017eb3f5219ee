package geom2d

import "cogentcore.org/core/math32"

// Center is the centroid of the defining points for straight shapes, and the
// origin for round shapes and rays.
func Center(s Shape) Point {
	switch s := s.(type) {
	case Point:
		return s
	case Segment:
		return s.Midpoint()
	case Rect:
		return s.Position.Add(s.Size.MulScalar(0.5))
	case Circle:
		return s.Origin
	case Ellipse:
		return s.Origin
	case Ray:
		return s.Origin
	}
	points := s.Points()
	var sum Vector
	for _, p := range points {
		sum = sum.Add(p.Vec())
	}
	return PointOf(sum.DivScalar(float32(len(points))))
}

// Area is zero for points, segments and rays.
func Area(s Shape) float32 {
	switch s := s.(type) {
	case Rect:
		return s.Size.X * s.Size.Y
	case Circle:
		return math32.Pi * s.Radius * s.Radius
	case Ellipse:
		return math32.Pi * s.A * s.B
	case Triangle:
		return SignedArea(s.vertices[:]) / 2
	case Polygon:
		return SignedArea(s.vertices) / 2
	}
	return 0
}

// Perimeter is the length of the boundary. The ellipse uses Ramanujan's
// second approximation.
func Perimeter(s Shape) float32 {
	switch s := s.(type) {
	case Point:
		return 0
	case Segment:
		return s.Length()
	case Ray:
		return inf(1)
	case Circle:
		return 2 * math32.Pi * s.Radius
	case Ellipse:
		if s.A+s.B == 0 {
			return 0
		}
		h := (s.A - s.B) * (s.A - s.B) / ((s.A + s.B) * (s.A + s.B))
		return math32.Pi * (s.A + s.B) * (1 + 3*h/(10+math32.Sqrt(4-3*h)))
	}
	var total float32
	sides, _ := compositeSides(s)
	for _, side := range sides {
		total += side.Length()
	}
	return total
}
