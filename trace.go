package geom2d

// DefaultNudge is how far the tracer backs a new ray origin off the surface it
// just hit, along the reversed incoming direction.
const DefaultNudge = 0.05

// Collision describes where a ray meets a shape. Normal is unit length, or
// zero when the surface has no direction at the hit (a zero-length segment).
// Distance is measured from the ray origin.
type Collision struct {
	Point    Point
	Normal   Vector
	Shape    Shape
	Distance float32

	index int
}

// HasNormal tells a hit on a degenerate surface apart from a regular hit.
func (c Collision) HasNormal() bool {
	return c.Normal.LengthSquared() > 0
}

// Collide returns the first hit of r on s. The boolean is false when the ray
// misses.
func Collide(r Ray, s Shape) (Collision, bool) {
	return nearestCollision(collisions(r, s), nil)
}

// Reflect applies the law of reflection: incident − 2·(incident·normal)·normal.
// The normal must be unit length.
func Reflect(incident, normal Vector) Vector {
	return incident.Sub(normal.MulScalar(2 * incident.Dot(normal)))
}

// Every hit of r on s, with the surface normal at the hit. Straight surfaces
// get the normal that faces the incoming ray; round surfaces get the outward
// one.
func collisions(r Ray, s Shape) []Collision {
	if sides, ok := compositeSides(s); ok {
		var result []Collision
		for _, side := range sides {
			for _, c := range collisions(r, side) {
				c.Shape = s
				result = append(result, c)
			}
		}
		return result
	}

	var normalAt func(p Point) Vector
	switch target := s.(type) {
	case Point:
		normalAt = func(Point) Vector { return r.Direction.MulScalar(-1) }
	case Segment:
		n := facing(normalize(perpendicular(target.Vector())), r.Direction)
		normalAt = func(Point) Vector { return n }
	case Ray:
		n := facing(normalize(perpendicular(target.Direction)), r.Direction)
		normalAt = func(Point) Vector { return n }
	case Circle:
		normalAt = func(p Point) Vector { return normalize(p.Sub(target.Origin)) }
	case Ellipse:
		// Gradient of (x/A)² + (y/B)².
		normalAt = func(p Point) Vector {
			return normalize(Vec((p.X-target.Origin.X)/(target.A*target.A), (p.Y-target.Origin.Y)/(target.B*target.B)))
		}
	default:
		panic("collisions: unknown shape")
	}

	var result []Collision
	for _, p := range Intersects(r, s) {
		result = append(result, Collision{
			Point:    p,
			Normal:   normalAt(p),
			Shape:    s,
			Distance: r.Origin.Distance(p),
		})
	}
	return result
}

func facing(normal, incoming Vector) Vector {
	if normal.Dot(incoming) > 0 {
		return normal.MulScalar(-1)
	}
	return normal
}

// Pick the hit closest to the ray origin, ignoring hits at skip.
func nearestCollision(hits []Collision, skip *Point) (Collision, bool) {
	var best Collision
	found := false
	for _, hit := range hits {
		if skip != nil && hit.Point.Coincident(*skip) {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// Bounce is one reflection: where the ray hit, what it hit, and the direction
// it leaves in.
type Bounce struct {
	Point     Point
	Normal    Vector
	Direction Vector
	Shape     Shape
	// Index of Shape in the slice passed to Trace. Equal shapes are told apart
	// by it.
	Index int
}

// Tracer follows a ray through a set of shapes.
type Tracer struct {
	// Nudge is the distance a new origin is moved back along the incoming
	// direction so the next ray does not start on the surface it left.
	Nudge float32
}

var DefaultTracer = Tracer{Nudge: DefaultNudge}

// Trace bounces r around shapes with the default tracer.
func Trace(r Ray, shapes []Shape, maxBounces int) []Bounce {
	return DefaultTracer.Trace(r, shapes, maxBounces)
}

// Trace returns the bounces in order. It stops when the ray escapes or after
// maxBounces reflections, whichever is first.
//
// A ray that meets a corner exactly reflects off the first side that reports
// the hit, then off the adjacent side a nudge away. For a convex corner the
// pair of bounces sends the ray back the way it came.
func (t Tracer) Trace(r Ray, shapes []Shape, maxBounces int) []Bounce {
	var bounces []Bounce
	var previous *Point
	for len(bounces) < maxBounces {
		var hits []Collision
		for i, s := range shapes {
			for _, c := range collisions(r, s) {
				c.index = i
				hits = append(hits, c)
			}
		}
		hit, ok := nearestCollision(hits, previous)
		if !ok {
			break
		}

		direction := Reflect(r.Direction, hit.Normal)
		bounces = append(bounces, Bounce{
			Point:     hit.Point,
			Normal:    hit.Normal,
			Direction: direction,
			Shape:     hit.Shape,
			Index:     hit.index,
		})

		origin := hit.Point.Add(r.Direction.MulScalar(-t.Nudge))
		r = NewRay(origin, direction)
		point := hit.Point
		previous = &point
	}
	return bounces
}
