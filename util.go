package geom2d

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

// Epsilon decides point coincidence, compared against squared distances. It is
// what makes a point "on" a segment, ray or circle boundary, and what lets the
// tracer recognize the point it just bounced off.
const Epsilon = 1e-4

var (
	// ErrInvalidWinding rejects triangles and polygons whose shoelace sum is
	// not positive. Reverse the vertex order to fix it.
	ErrInvalidWinding = errors.New("vertices must wind clockwise with positive area")
	// ErrTooFewVertices rejects polygons with fewer than three vertices.
	ErrTooFewVertices = errors.New("polygon needs at least three vertices")
)

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// SignedArea is the shoelace sum Σ(x_i·y_{i+1} − x_{i+1}·y_i), which is twice
// the signed area. It is positive for vertices that run clockwise on screen
// (y pointing down).
func SignedArea(points []Point) float32 {
	var sum float32
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum
}

func checkWinding(points []Point) error {
	if area := SignedArea(points); area <= 0 {
		return errors.Wrapf(ErrInvalidWinding, "shoelace sum %g", area)
	}
	return nil
}

// DistanceTo is the distance from p to the closest point of s. A zero-length
// segment is treated as a point.
func DistanceTo(p Point, s Segment) float32 {
	return p.Distance(s.ClosestPoint(p))
}

func (s Segment) Vector() Vector {
	return s.End.Sub(s.Start)
}

func (s Segment) Length() float32 {
	return s.Start.Distance(s.End)
}

func (s Segment) Midpoint() Point {
	return Pt((s.Start.X+s.End.X)/2, (s.Start.Y+s.End.Y)/2)
}

// PointAt returns Start + t·(End − Start).
func (s Segment) PointAt(t float32) Point {
	return s.Start.Add(s.Vector().MulScalar(t))
}

// Parameter projects p onto the segment's line and returns the (unclamped)
// parameter of the projection. It is zero for a zero-length segment.
func (s Segment) Parameter(p Point) float32 {
	v := s.Vector()
	lengthSquared := v.LengthSquared()
	if lengthSquared == 0 {
		return 0
	}
	return p.Sub(s.Start).Dot(v) / lengthSquared
}

// ClosestPoint is the point of s nearest to p, with the projection parameter
// clamped to [0, 1].
func (s Segment) ClosestPoint(p Point) Point {
	return s.PointAt(clamp01(s.Parameter(p)))
}

// Coefficients returns the standard form a·x + b·y = c of the line through
// the segment.
func (s Segment) Coefficients() (a, b, c float32) {
	a = s.End.Y - s.Start.Y
	b = s.Start.X - s.End.X
	c = a*s.Start.X + b*s.Start.Y
	return a, b, c
}

// SlopeIntercept returns y = m·x + b for the line through the segment. It is
// not defined for vertical (or zero-length) segments.
func (s Segment) SlopeIntercept() (m, b float32, ok bool) {
	dx := s.End.X - s.Start.X
	if dx == 0 {
		return 0, 0, false
	}
	m = (s.End.Y - s.Start.Y) / dx
	return m, s.Start.Y - m*s.Start.X, true
}

// Less orders segments lexicographically by start then end point. It gives
// the segment-segment solver a canonical operand order.
func (s Segment) Less(other Segment) bool {
	for _, pair := range [4][2]float32{
		{s.Start.X, other.Start.X},
		{s.Start.Y, other.Start.Y},
		{s.End.X, other.End.X},
		{s.End.Y, other.End.Y},
	} {
		if pair[0] != pair[1] {
			return pair[0] < pair[1]
		}
	}
	return false
}

func clamp01(t float32) float32 {
	return math32.Max(0, math32.Min(1, t))
}

// Roots of a·t² + b·t + c = 0 in ascending order. A zero discriminant gives a
// single (tangent) root. Callers never pass a zero a.
func solveQuadratic(a, b, c float32) []float32 {
	discriminant := b*b - 4*a*c
	switch {
	case discriminant < 0:
		return nil
	case discriminant == 0:
		return []float32{-b / (2 * a)}
	}
	root := math32.Sqrt(discriminant)
	t1 := (-b - root) / (2 * a)
	t2 := (-b + root) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float32{t1, t2}
}

func inf(sign int) float32 {
	return float32(math.Inf(sign))
}

func perpendicular(v Vector) Vector {
	return Vec(-v.Y, v.X)
}
