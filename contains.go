package geom2d

// Contains reports whether every point of b lies in a.
//
// The boundary policy depends on the container and is pinned by tests:
//   - Circle and Ellipse exclude their boundary.
//   - Rect includes its boundary.
//   - Triangle uses barycentric coordinates u ≥ 0, v ≥ 0, u + v < 1, so the
//     edge opposite the first vertex is excluded and the other two are not.
//   - Polygon uses edge crossing parity, which leaves the boundary to
//     floating point.
//   - Point, Segment and Ray contain what lies on them within Epsilon.
//
// Pairs listed as unsupported by Supports fail with ErrUnsupported.
func Contains(a, b Shape) (result bool, err error) {
	defer func() {
		recoveredErr := handleUnsupportedRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return contains(a, b), nil
}

func contains(a, b Shape) bool {
	switch b := b.(type) {
	case Point:
		return containsPoint(a, b)
	case Segment:
		return containsSegment(a, b)
	case Circle:
		return containsCircle(a, b)
	case Ellipse:
		return containsEllipse(a, b)
	case Ray:
		return containsRay(a, b)
	}
	// Every container here is convex except Polygon, and containsSegment
	// handles both, so a composite is contained iff all of its sides are.
	sides, _ := compositeSides(b)
	for _, side := range sides {
		if !containsSegment(a, side) {
			return false
		}
	}
	return true
}

func containsPoint(a Shape, p Point) bool {
	switch a := a.(type) {
	case Point, Segment, Ray:
		return onBoundary(p, a)
	case Rect:
		lo, hi := a.Min(), a.Max()
		return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
	case Circle:
		return p.DistanceSquared(a.Origin) < a.Radius*a.Radius
	case Ellipse:
		if a.A == 0 || a.B == 0 {
			return false
		}
		dx, dy := (p.X-a.Origin.X)/a.A, (p.Y-a.Origin.Y)/a.B
		return dx*dx+dy*dy < 1
	case Triangle:
		return a.containsPoint(p)
	case Polygon:
		return a.ContainsPointByEvenOdd(p)
	}
	panic("containsPoint: unknown shape")
}

// Barycentric test, with P = A + u·(C − A) + v·(B − A).
func (t Triangle) containsPoint(p Point) bool {
	a := t.vertices[0]
	v0 := t.vertices[2].Sub(a)
	v1 := t.vertices[1].Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	inverse := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * inverse
	v := (dot00*dot12 - dot01*dot02) * inverse
	return u >= 0 && v >= 0 && u+v < 1
}

// Even-odd rule point-in-polygon.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// CrossingCount counts the sides crossed by a horizontal ray from p towards
// +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.vertices {
		nextVertex := poly.vertices[CircularIndex(i+1, len(poly.vertices))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// A convex container holds a segment iff it holds both endpoints. A polygon
// may be concave, so the segment must also stay clear of its boundary.
func containsSegment(a Shape, s Segment) bool {
	if !containsPoint(a, s.Start) || !containsPoint(a, s.End) {
		return false
	}
	if poly, ok := a.(Polygon); ok {
		return len(Intersects(poly, s)) == 0
	}
	return true
}

func containsCircle(a Shape, c Circle) bool {
	switch a := a.(type) {
	case Point, Segment, Ray:
		return c.Radius == 0 && containsPoint(a, c.Origin)
	case Rect:
		return containsExtents(a, c.Origin, c.Radius, c.Radius)
	case Circle:
		return a.Origin.Distance(c.Origin)+c.Radius < a.Radius
	case Triangle:
		return containsPoint(a, c.Origin) && sidesClear(a.Sides(), c)
	case Polygon:
		return containsPoint(a, c.Origin) && sidesClear(a.Sides(), c)
	case Ellipse:
		unsupported(RelContains, a.Kind(), c.Kind())
	}
	panic("containsCircle: unknown shape")
}

func sidesClear(sides []Segment, c Circle) bool {
	for _, side := range sides {
		if DistanceTo(c.Origin, side) < c.Radius {
			return false
		}
	}
	return true
}

func containsEllipse(a Shape, e Ellipse) bool {
	switch a := a.(type) {
	case Point, Segment, Ray:
		return e.A == 0 && e.B == 0 && containsPoint(a, e.Origin)
	case Rect:
		return containsExtents(a, e.Origin, e.A, e.B)
	}
	unsupported(RelContains, a.Kind(), e.Kind())
	return false
}

func containsExtents(r Rect, origin Point, halfWidth, halfHeight float32) bool {
	lo, hi := r.Min(), r.Max()
	return origin.X-halfWidth >= lo.X && origin.X+halfWidth <= hi.X &&
		origin.Y-halfHeight >= lo.Y && origin.Y+halfHeight <= hi.Y
}

// Only a ray can hold a ray: same direction, and the inner origin on the outer
// ray.
func containsRay(a Shape, r Ray) bool {
	outer, ok := a.(Ray)
	if !ok {
		return false
	}
	return outer.Direction.Dot(r.Direction) > 1-Epsilon && onBoundary(r.Origin, outer)
}
