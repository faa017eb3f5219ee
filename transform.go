package geom2d

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

// Transforms never modify their receiver. Callers that want in-place
// semantics assign the result back.

// Translate moves s by the given offset. A triangle or polygon whose sliver
// of area rounds away at the new position fails with ErrInvalidWinding.
func Translate(s Shape, by Vector) (Shape, error) {
	switch s := s.(type) {
	case Point:
		return s.Add(by), nil
	case Segment:
		return s.Translate(by), nil
	case Rect:
		return s.Translate(by), nil
	case Circle:
		return s.Translate(by), nil
	case Triangle:
		return s.Translate(by)
	case Polygon:
		return s.Translate(by)
	case Ray:
		return s.Translate(by), nil
	case Ellipse:
		return s.Translate(by), nil
	}
	panic("Translate: unknown shape")
}

// Rotate turns s by angle radians about pivot, from +X toward +Y. A rotated
// Rect becomes a Polygon. An Ellipse has no angle of its own, so only its
// origin moves. Triangles and polygons are checked again after rounding, as
// in Translate.
func Rotate(s Shape, angle float32, pivot Point) (Shape, error) {
	switch s := s.(type) {
	case Point:
		return rotatePoint(s, angle, pivot), nil
	case Segment:
		return s.Rotate(angle, pivot), nil
	case Rect:
		return s.Rotate(angle, pivot)
	case Circle:
		return s.Rotate(angle, pivot), nil
	case Triangle:
		return s.Rotate(angle, pivot)
	case Polygon:
		return s.Rotate(angle, pivot)
	case Ray:
		return s.Rotate(angle, pivot), nil
	case Ellipse:
		return s.Rotate(angle, pivot), nil
	}
	panic("Rotate: unknown shape")
}

// Scale scales s uniformly about pivot. Scaling a triangle or polygon by zero
// leaves no area and fails with ErrInvalidWinding.
func Scale(s Shape, factor float32, pivot Point) (Shape, error) {
	switch s := s.(type) {
	case Point:
		return scalePoint(s, factor, pivot), nil
	case Segment:
		return s.Scale(factor, pivot), nil
	case Rect:
		return s.Scale(factor, pivot), nil
	case Circle:
		return s.Scale(factor, pivot), nil
	case Triangle:
		return s.Scale(factor, pivot)
	case Polygon:
		return s.Scale(factor, pivot)
	case Ray:
		return s.Scale(factor, pivot), nil
	case Ellipse:
		return s.Scale(factor, pivot), nil
	}
	panic("Scale: unknown shape")
}

func rotatePoint(p Point, angle float32, pivot Point) Point {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	v := p.Sub(pivot)
	return pivot.Add(Vec(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos))
}

func rotateVector(v Vector, angle float32) Vector {
	return rotatePoint(PointOf(v), angle, Point{}).Vec()
}

func scalePoint(p Point, factor float32, pivot Point) Point {
	return pivot.Add(p.Sub(pivot).MulScalar(factor))
}

func mapPoints(points []Point, f func(Point) Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = f(p)
	}
	return result
}

func (s Segment) Translate(by Vector) Segment {
	return Segment{s.Start.Add(by), s.End.Add(by)}
}

func (s Segment) Rotate(angle float32, pivot Point) Segment {
	return Segment{rotatePoint(s.Start, angle, pivot), rotatePoint(s.End, angle, pivot)}
}

func (s Segment) Scale(factor float32, pivot Point) Segment {
	return Segment{scalePoint(s.Start, factor, pivot), scalePoint(s.End, factor, pivot)}
}

func (r Rect) Translate(by Vector) Rect {
	return Rect{Position: r.Position.Add(by), Size: r.Size}
}

func (r Rect) Rotate(angle float32, pivot Point) (Polygon, error) {
	poly, err := r.Polygon()
	if err != nil {
		return Polygon{}, errors.Wrap(err, "rotate rect")
	}
	return poly.Rotate(angle, pivot)
}

// Scale keeps the size non-negative, so a negative factor mirrors the corners
// but still yields a top-left Position.
func (r Rect) Scale(factor float32, pivot Point) Rect {
	return RectFromPoints(scalePoint(r.Min(), factor, pivot), scalePoint(r.Max(), factor, pivot))
}

func (c Circle) Translate(by Vector) Circle {
	return Circle{Origin: c.Origin.Add(by), Radius: c.Radius}
}

func (c Circle) Rotate(angle float32, pivot Point) Circle {
	return Circle{Origin: rotatePoint(c.Origin, angle, pivot), Radius: c.Radius}
}

func (c Circle) Scale(factor float32, pivot Point) Circle {
	return Circle{Origin: scalePoint(c.Origin, factor, pivot), Radius: c.Radius * math32.Abs(factor)}
}

// Translate and Rotate keep the winding in exact arithmetic, but float32
// rounding can flatten a thin triangle, so the result is validated like a new
// one.
func (t Triangle) Translate(by Vector) (Triangle, error) {
	return NewTriangle(t.vertices[0].Add(by), t.vertices[1].Add(by), t.vertices[2].Add(by))
}

func (t Triangle) Rotate(angle float32, pivot Point) (Triangle, error) {
	return NewTriangle(
		rotatePoint(t.vertices[0], angle, pivot),
		rotatePoint(t.vertices[1], angle, pivot),
		rotatePoint(t.vertices[2], angle, pivot),
	)
}

func (t Triangle) Scale(factor float32, pivot Point) (Triangle, error) {
	a, b, c := scalePoint(t.vertices[0], factor, pivot), scalePoint(t.vertices[1], factor, pivot), scalePoint(t.vertices[2], factor, pivot)
	return NewTriangle(a, b, c)
}

func (poly Polygon) Translate(by Vector) (Polygon, error) {
	return NewPolygon(mapPoints(poly.vertices, func(p Point) Point { return p.Add(by) })...)
}

func (poly Polygon) Rotate(angle float32, pivot Point) (Polygon, error) {
	return NewPolygon(mapPoints(poly.vertices, func(p Point) Point { return rotatePoint(p, angle, pivot) })...)
}

func (poly Polygon) Scale(factor float32, pivot Point) (Polygon, error) {
	return NewPolygon(mapPoints(poly.vertices, func(p Point) Point { return scalePoint(p, factor, pivot) })...)
}

func (r Ray) Translate(by Vector) Ray {
	return Ray{Origin: r.Origin.Add(by), Direction: r.Direction}
}

func (r Ray) Rotate(angle float32, pivot Point) Ray {
	return NewRay(rotatePoint(r.Origin, angle, pivot), rotateVector(r.Direction, angle))
}

// Scale moves the origin. A negative factor turns the ray around.
func (r Ray) Scale(factor float32, pivot Point) Ray {
	direction := r.Direction
	if factor < 0 {
		direction = direction.MulScalar(-1)
	}
	return Ray{Origin: scalePoint(r.Origin, factor, pivot), Direction: direction}
}

func (e Ellipse) Translate(by Vector) Ellipse {
	return Ellipse{Origin: e.Origin.Add(by), A: e.A, B: e.B}
}

func (e Ellipse) Rotate(angle float32, pivot Point) Ellipse {
	return Ellipse{Origin: rotatePoint(e.Origin, angle, pivot), A: e.A, B: e.B}
}

func (e Ellipse) Scale(factor float32, pivot Point) Ellipse {
	f := math32.Abs(factor)
	return Ellipse{Origin: scalePoint(e.Origin, factor, pivot), A: e.A * f, B: e.B * f}
}
