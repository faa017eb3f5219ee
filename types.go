package geom2d

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

// Vector is the vector math collaborator. Directions, normals and offsets are
// vectors; positions are Points.
type Vector = math32.Vector2

// Vec is shorthand for building a Vector.
func Vec(x, y float32) Vector {
	return math32.Vec2(x, y)
}

// Kind identifies one member of the closed set of shape kinds.
type Kind int

const (
	KindPoint Kind = iota
	KindSegment
	KindRect
	KindCircle
	KindTriangle
	KindPolygon
	KindRay
	KindEllipse
)

var kindNames = [...]string{"Point", "Segment", "Rect", "Circle", "Triangle", "Polygon", "Ray", "Ellipse"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Shape is implemented only by the shape types of this package. Algorithms
// switch over the concrete types, so adding a kind means adding cases, not
// implementing an interface somewhere else.
type Shape interface {
	Kind() Kind
	// Points returns the defining points of the shape: endpoints, vertices,
	// or the origin for round shapes and rays.
	Points() []Point
	isShape()
}

// Composite shapes are made of straight sides. Most predicates on a composite
// are computed by reducing it to its sides.
type Composite interface {
	Shape
	Vertices() []Point
	Sides() []Segment
}

type Point struct {
	X float32
	Y float32
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func PointOf(v Vector) Point {
	return Point{X: v.X, Y: v.Y}
}

func (p Point) Vec() Vector {
	return math32.Vec2(p.X, p.Y)
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return math32.Vec2(p.X-other.X, p.Y-other.Y)
}

func (p Point) DistanceSquared(other Point) float32 {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(other Point) float32 {
	return math32.Sqrt(p.DistanceSquared(other))
}

// Coincident reports whether two points are the same within Epsilon, measured
// on the squared distance.
func (p Point) Coincident(other Point) bool {
	return p.DistanceSquared(other) < Epsilon
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A Segment is the closed set of points between Start and End. It may have
// zero length.
type Segment struct {
	Start Point
	End   Point
}

func Seg(x1, y1, x2, y2 float32) Segment {
	return Segment{Pt(x1, y1), Pt(x2, y2)}
}

// Rect is axis aligned. Position is the top-left corner in y-down screen
// coordinates. Algorithms assume a non-negative Size.
type Rect struct {
	Position Point
	Size     Vector
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{Position: Pt(x, y), Size: Vec(w, h)}
}

// RectFromPoints builds the rectangle spanned by two opposite corners, in any
// order.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := math32.Min(a.X, b.X), math32.Max(a.X, b.X)
	minY, maxY := math32.Min(a.Y, b.Y), math32.Max(a.Y, b.Y)
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

type Circle struct {
	Origin Point
	Radius float32
}

func NewCircle(x, y, r float32) Circle {
	return Circle{Origin: Pt(x, y), Radius: r}
}

// Triangle vertices always have a positive shoelace sum. The zero value is
// degenerate and only useful as a placeholder.
type Triangle struct {
	vertices [3]Point
}

// NewTriangle fails with ErrInvalidWinding unless the vertices are clockwise
// in screen coordinates (positive shoelace sum).
func NewTriangle(a, b, c Point) (Triangle, error) {
	if err := checkWinding([]Point{a, b, c}); err != nil {
		return Triangle{}, err
	}
	return Triangle{vertices: [3]Point{a, b, c}}, nil
}

// TriangleFromPoints is NewTriangle over the points representation.
func TriangleFromPoints(points [3]Point) (Triangle, error) {
	return NewTriangle(points[0], points[1], points[2])
}

func (t Triangle) A() Point { return t.vertices[0] }
func (t Triangle) B() Point { return t.vertices[1] }
func (t Triangle) C() Point { return t.vertices[2] }

// Polygon holds at least three vertices with a positive shoelace sum. The
// vertex slice is owned by the polygon and never handed out.
type Polygon struct {
	vertices []Point
}

func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "polygon with %d vertices", len(points))
	}
	if err := checkWinding(points); err != nil {
		return Polygon{}, err
	}
	return Polygon{vertices: append([]Point(nil), points...)}, nil
}

// NewRegularPolygon places the vertices at equal angular steps around center,
// starting on the positive X axis.
func NewRegularPolygon(center Point, radius float32, sides int) (Polygon, error) {
	if sides < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "regular polygon with %d sides", sides)
	}
	points := make([]Point, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range points {
		angle := step * float32(i)
		points[i] = Pt(center.X+radius*math32.Cos(angle), center.Y+radius*math32.Sin(angle))
	}
	return NewPolygon(points...)
}

func (poly Polygon) Len() int {
	return len(poly.vertices)
}

func (poly Polygon) Vertex(i int) Point {
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

func (poly Polygon) Equal(other Polygon) bool {
	if len(poly.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range poly.vertices {
		if v != other.vertices[i] {
			return false
		}
	}
	return true
}

// Ray is semi-infinite. Its Direction is always unit length, unless the ray
// was built from a zero direction.
type Ray struct {
	Origin    Point
	Direction Vector
}

func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: normalize(direction)}
}

// WithDirection returns the ray pointing along direction, normalized.
func (r Ray) WithDirection(direction Vector) Ray {
	return NewRay(r.Origin, direction)
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) Point {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// Ellipse is axis aligned, with semi-axis A along X and B along Y.
type Ellipse struct {
	Origin Point
	A, B   float32
}

func NewEllipse(x, y, a, b float32) Ellipse {
	return Ellipse{Origin: Pt(x, y), A: a, B: b}
}

func (Point) Kind() Kind    { return KindPoint }
func (Segment) Kind() Kind  { return KindSegment }
func (Rect) Kind() Kind     { return KindRect }
func (Circle) Kind() Kind   { return KindCircle }
func (Triangle) Kind() Kind { return KindTriangle }
func (Polygon) Kind() Kind  { return KindPolygon }
func (Ray) Kind() Kind      { return KindRay }
func (Ellipse) Kind() Kind  { return KindEllipse }

func (Point) isShape()    {}
func (Segment) isShape()  {}
func (Rect) isShape()     {}
func (Circle) isShape()   {}
func (Triangle) isShape() {}
func (Polygon) isShape()  {}
func (Ray) isShape()      {}
func (Ellipse) isShape()  {}

func (p Point) Points() []Point    { return []Point{p} }
func (s Segment) Points() []Point  { return []Point{s.Start, s.End} }
func (r Rect) Points() []Point     { return r.Vertices() }
func (c Circle) Points() []Point   { return []Point{c.Origin} }
func (t Triangle) Points() []Point { return t.Vertices() }
func (poly Polygon) Points() []Point {
	return poly.Vertices()
}
func (r Ray) Points() []Point     { return []Point{r.Origin} }
func (e Ellipse) Points() []Point { return []Point{e.Origin} }

// Vertices are listed top-left, top-right, bottom-right, bottom-left, which
// has a positive shoelace sum for a non-negative size.
func (r Rect) Vertices() []Point {
	x0, y0 := r.Position.X, r.Position.Y
	x1, y1 := x0+r.Size.X, y0+r.Size.Y
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func (t Triangle) Vertices() []Point {
	return []Point{t.vertices[0], t.vertices[1], t.vertices[2]}
}

func (poly Polygon) Vertices() []Point {
	return append([]Point(nil), poly.vertices...)
}

func (r Rect) Sides() []Segment     { return sidesOf(r.Vertices()) }
func (t Triangle) Sides() []Segment { return sidesOf(t.Vertices()) }
func (poly Polygon) Sides() []Segment {
	return sidesOf(poly.vertices)
}

func sidesOf(vertices []Point) []Segment {
	sides := make([]Segment, len(vertices))
	for i, v := range vertices {
		sides[i] = Segment{v, vertices[CircularIndex(i+1, len(vertices))]}
	}
	return sides
}

// Polygon returns the rectangle as a polygon. A rectangle with zero area
// cannot be a polygon.
func (r Rect) Polygon() (Polygon, error) {
	return NewPolygon(r.Vertices()...)
}

func (r Rect) Min() Point { return r.Position }
func (r Rect) Max() Point { return r.Position.Add(r.Size) }

func normalize(v Vector) Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.DivScalar(length)
}
