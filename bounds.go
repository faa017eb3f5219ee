package geom2d

import "cogentcore.org/core/math32"

// AABB returns the smallest axis-aligned rectangle holding s. A Rect is its
// own box. A ray's box is infinite along the axes its direction moves on.
func AABB(s Shape) Rect {
	switch s := s.(type) {
	case Rect:
		return s
	case Circle:
		return extentsBox(s.Origin, s.Radius, s.Radius)
	case Ellipse:
		return extentsBox(s.Origin, s.A, s.B)
	case Ray:
		lo, hi := s.Origin, s.Origin
		switch {
		case s.Direction.X > 0:
			hi.X = inf(1)
		case s.Direction.X < 0:
			lo.X = inf(-1)
		}
		switch {
		case s.Direction.Y > 0:
			hi.Y = inf(1)
		case s.Direction.Y < 0:
			lo.Y = inf(-1)
		}
		return Rect{Position: lo, Size: hi.Sub(lo)}
	}
	return boundsOf(s.Points())
}

func extentsBox(origin Point, halfWidth, halfHeight float32) Rect {
	return NewRect(origin.X-halfWidth, origin.Y-halfHeight, 2*halfWidth, 2*halfHeight)
}

func boundsOf(points []Point) Rect {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math32.Min(lo.X, p.X)
		lo.Y = math32.Min(lo.Y, p.Y)
		hi.X = math32.Max(hi.X, p.X)
		hi.Y = math32.Max(hi.Y, p.Y)
	}
	return Rect{Position: lo, Size: hi.Sub(lo)}
}

// BoundingCircle returns a circle holding s. It is exact for every kind but
// two: a triangle gets its circumcircle, which is larger than the minimal
// circle when the triangle is obtuse, and a polygon gets Ritter's
// approximation.
func BoundingCircle(s Shape) Circle {
	switch s := s.(type) {
	case Point:
		return Circle{Origin: s}
	case Segment:
		return Circle{Origin: s.Midpoint(), Radius: s.Length() / 2}
	case Rect:
		return Circle{Origin: Center(s), Radius: s.Size.Length() / 2}
	case Circle:
		return s
	case Ellipse:
		return Circle{Origin: s.Origin, Radius: math32.Max(s.A, s.B)}
	case Triangle:
		return s.Circumcircle()
	case Polygon:
		return Ritter(s.vertices)
	case Ray:
		return Circle{Origin: s.Origin, Radius: inf(1)}
	}
	panic("BoundingCircle: unknown shape")
}

// Circumcircle passes through all three vertices. The radius comes from the
// side lengths, R = abc / 4K with K the area.
func (t Triangle) Circumcircle() Circle {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	area := SignedArea(t.vertices[:]) / 2
	radius := b.Distance(c) * c.Distance(a) * a.Distance(b) / (4 * area)

	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	center := Pt(
		(aa*(b.Y-c.Y)+bb*(c.Y-a.Y)+cc*(a.Y-b.Y))/d,
		(aa*(c.X-b.X)+bb*(a.X-c.X)+cc*(b.X-a.X))/d,
	)
	return Circle{Origin: center, Radius: radius}
}

// Ritter computes an approximate minimal bounding circle in linear time. It
// starts from the diameter between the first point and the point farthest from
// it, then grows the circle to cover every point still outside: the center
// moves toward the outlier by half the excess, and the radius grows by half
// the excess.
func Ritter(points []Point) Circle {
	if len(points) == 0 {
		return Circle{}
	}
	p := points[0]
	q := farthestFrom(points, p)
	center := Segment{p, q}.Midpoint()
	radius := p.Distance(q) / 2

	for _, v := range points {
		d := v.Distance(center)
		if d <= radius {
			continue
		}
		grown := (radius + d) / 2
		center = center.Add(v.Sub(center).MulScalar((grown - radius) / d))
		radius = grown
	}
	return Circle{Origin: center, Radius: radius}
}

func farthestFrom(points []Point, from Point) Point {
	farthest := points[0]
	for _, p := range points[1:] {
		if p.DistanceSquared(from) > farthest.DistanceSquared(from) {
			farthest = p
		}
	}
	return farthest
}

// Union is the smallest rectangle holding both r and other.
func (r Rect) Union(other Rect) Rect {
	lo, hi := r.Min(), r.Max()
	otherLo, otherHi := other.Min(), other.Max()
	lo = Pt(math32.Min(lo.X, otherLo.X), math32.Min(lo.Y, otherLo.Y))
	hi = Pt(math32.Max(hi.X, otherHi.X), math32.Max(hi.Y, otherHi.Y))
	return Rect{Position: lo, Size: hi.Sub(lo)}
}
