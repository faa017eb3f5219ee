package geom2d

import "cogentcore.org/core/math32"

// Intersects returns every point shared by the boundaries of a and b, in the
// order the algorithms find them. Composite shapes are reduced to their sides
// and the per-side results are concatenated, so a hit on a shared corner is
// reported once per side that touches it.
//
// Pairs without a closed form (see Supports) answer nil.
func Intersects(a, b Shape) []Point {
	if sides, ok := compositeSides(a); ok {
		var result []Point
		for _, side := range sides {
			result = append(result, Intersects(side, b)...)
		}
		return result
	}
	if sides, ok := compositeSides(b); ok {
		var result []Point
		for _, side := range sides {
			result = append(result, Intersects(a, side)...)
		}
		return result
	}
	return intersectBase(a, b)
}

// Overlaps reports whether the boundaries of a and b share at least one point.
// A shape strictly inside another does not overlap it.
func Overlaps(a, b Shape) bool {
	return len(Intersects(a, b)) > 0
}

func compositeSides(s Shape) ([]Segment, bool) {
	switch s := s.(type) {
	case Rect:
		return s.Sides(), true
	case Triangle:
		return s.Sides(), true
	case Polygon:
		return s.Sides(), true
	}
	return nil, false
}

// Base cases over Point, Segment, Ray, Circle and Ellipse.
func intersectBase(a, b Shape) []Point {
	if p, ok := a.(Point); ok {
		return pointIfOn(p, b)
	}
	if p, ok := b.(Point); ok {
		return pointIfOn(p, a)
	}
	switch a := a.(type) {
	case Segment:
		switch b := b.(type) {
		case Segment:
			return intersectSegmentSegment(a, b)
		case Ray:
			return intersectRaySegment(b, a)
		case Circle:
			return intersectSegmentCircle(a, b)
		case Ellipse:
			return intersectSegmentEllipse(a, b)
		}
	case Ray:
		switch b := b.(type) {
		case Segment:
			return intersectRaySegment(a, b)
		case Ray:
			return intersectRayRay(a, b)
		case Circle:
			return intersectRayCircle(a, b)
		case Ellipse:
			return intersectRayEllipse(a, b)
		}
	case Circle:
		switch b := b.(type) {
		case Segment:
			return intersectSegmentCircle(b, a)
		case Ray:
			return intersectRayCircle(b, a)
		case Circle:
			return intersectCircleCircle(a, b)
		case Ellipse:
			return nil
		}
	case Ellipse:
		switch b := b.(type) {
		case Segment:
			return intersectSegmentEllipse(b, a)
		case Ray:
			return intersectRayEllipse(b, a)
		case Circle, Ellipse:
			return nil
		}
	}
	panic("intersectBase: composite shape reached a base case")
}

func pointIfOn(p Point, s Shape) []Point {
	if onBoundary(p, s) {
		return []Point{p}
	}
	return nil
}

// Is p on the boundary of s, within Epsilon?
func onBoundary(p Point, s Shape) bool {
	switch s := s.(type) {
	case Point:
		return p.Coincident(s)
	case Segment:
		return p.Coincident(s.ClosestPoint(p))
	case Ray:
		return p.Coincident(s.ClosestPoint(p))
	case Circle:
		d := p.Distance(s.Origin) - s.Radius
		return d*d < Epsilon
	case Ellipse:
		if s.A == 0 || s.B == 0 {
			return p.Coincident(s.Origin)
		}
		dx, dy := (p.X-s.Origin.X)/s.A, (p.Y-s.Origin.Y)/s.B
		d := dx*dx + dy*dy - 1
		return d*d < Epsilon
	}
	sides, _ := compositeSides(s)
	for _, side := range sides {
		if onBoundary(p, side) {
			return true
		}
	}
	return false
}

// Solve p + t·r = q + u·s. Parallel lines (zero determinant) have no unique
// solution.
func solveLines(p Point, r Vector, q Point, s Vector) (t, u float32, ok bool) {
	det := r.Cross(s)
	if det == 0 {
		return 0, 0, false
	}
	qp := q.Sub(p)
	return qp.Cross(s) / det, qp.Cross(r) / det, true
}

// Collinear overlapping segments have a zero determinant and yield nothing.
func intersectSegmentSegment(a, b Segment) []Point {
	// Solve in a fixed operand order so the result does not depend on
	// argument order down to the last bit.
	if b.Less(a) {
		a, b = b, a
	}
	t, u, ok := solveLines(a.Start, a.Vector(), b.Start, b.Vector())
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return nil
	}
	return []Point{a.PointAt(t)}
}

func intersectRaySegment(r Ray, s Segment) []Point {
	t, u, ok := solveLines(r.Origin, r.Direction, s.Start, s.Vector())
	if !ok || t < 0 || u < 0 || u > 1 {
		return nil
	}
	return []Point{r.PointAt(t)}
}

func intersectRayRay(a, b Ray) []Point {
	t, u, ok := solveLines(a.Origin, a.Direction, b.Origin, b.Direction)
	if !ok || t < 0 || u < 0 {
		return nil
	}
	return []Point{a.PointAt(t)}
}

// Parameters where origin + t·d crosses the circle, ascending.
func circleParameters(origin Point, d Vector, c Circle) []float32 {
	f := origin.Sub(c.Origin)
	a := d.Dot(d)
	b := 2 * f.Dot(d)
	k := f.Dot(f) - c.Radius*c.Radius
	return solveQuadratic(a, b, k)
}

// Parameters where origin + t·d crosses the ellipse, ascending. The ellipse
// equation (x/A)² + (y/B)² = 1 becomes a quadratic in t.
func ellipseParameters(origin Point, d Vector, e Ellipse) []float32 {
	if e.A == 0 || e.B == 0 {
		return nil
	}
	fx, fy := (origin.X-e.Origin.X)/e.A, (origin.Y-e.Origin.Y)/e.B
	dx, dy := d.X/e.A, d.Y/e.B
	a := dx*dx + dy*dy
	b := 2 * (fx*dx + fy*dy)
	k := fx*fx + fy*fy - 1
	return solveQuadratic(a, b, k)
}

func intersectSegmentCircle(s Segment, c Circle) []Point {
	d := s.Vector()
	if d.LengthSquared() == 0 {
		return pointIfOn(s.Start, c)
	}
	return segmentPoints(s, circleParameters(s.Start, d, c))
}

func intersectSegmentEllipse(s Segment, e Ellipse) []Point {
	d := s.Vector()
	if d.LengthSquared() == 0 {
		return pointIfOn(s.Start, e)
	}
	return segmentPoints(s, ellipseParameters(s.Start, d, e))
}

func intersectRayCircle(r Ray, c Circle) []Point {
	if r.Direction.LengthSquared() == 0 {
		return pointIfOn(r.Origin, c)
	}
	return rayPoints(r, circleParameters(r.Origin, r.Direction, c))
}

func intersectRayEllipse(r Ray, e Ellipse) []Point {
	if r.Direction.LengthSquared() == 0 {
		return pointIfOn(r.Origin, e)
	}
	return rayPoints(r, ellipseParameters(r.Origin, r.Direction, e))
}

func segmentPoints(s Segment, params []float32) []Point {
	var result []Point
	for _, t := range params {
		if t >= 0 && t <= 1 {
			result = append(result, s.PointAt(t))
		}
	}
	return result
}

func rayPoints(r Ray, params []float32) []Point {
	var result []Point
	for _, t := range params {
		if t >= 0 {
			result = append(result, r.PointAt(t))
		}
	}
	return result
}

// Two circles meet on their radical line. With d the distance between the
// centers, the line sits at distance a = (r1² − r2² + d²) / 2d from the first
// center, and the intersections are h = √(r1² − a²) either side of it.
func intersectCircleCircle(c1, c2 Circle) []Point {
	between := c2.Origin.Sub(c1.Origin)
	d := between.Length()
	if d > c1.Radius+c2.Radius {
		return nil // Apart
	}
	if d < math32.Abs(c1.Radius-c2.Radius) {
		return nil // One inside the other
	}
	if d == 0 {
		return nil // Concentric, including coincident
	}
	a := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	hSquared := c1.Radius*c1.Radius - a*a
	mid := c1.Origin.Add(between.MulScalar(a / d))
	if hSquared <= 0 {
		return []Point{mid} // Tangent
	}
	offset := perpendicular(between).MulScalar(math32.Sqrt(hSquared) / d)
	return []Point{mid.Add(offset), mid.Add(offset.MulScalar(-1))}
}
