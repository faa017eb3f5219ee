package geom2d

// Closest returns the point on the boundary of b that is nearest to a. Round
// shapes are treated by their outline: the closest point of a circle to a
// point inside it is still on the circle.
//
// Pairs involving an Ellipse fail with ErrUnsupported.
func Closest(a, b Shape) (Point, error) {
	_, onB, err := NearestPoints(a, b)
	return onB, err
}

// Distance is the distance between the nearest points of a and b, zero when
// they touch.
func Distance(a, b Shape) (float32, error) {
	onA, onB, err := NearestPoints(a, b)
	if err != nil {
		return 0, err
	}
	return onA.Distance(onB), nil
}

// NearestPoints returns the pair of points, one on a and one on b, that are
// closest to each other. When several pairs tie, the first one found wins.
func NearestPoints(a, b Shape) (onA, onB Point, err error) {
	defer func() {
		recoveredErr := handleUnsupportedRecover(recover())
		if recoveredErr != nil {
			onA, onB = Point{}, Point{}
			err = recoveredErr
		}
	}()
	onA, onB = nearest(a, b)
	return onA, onB, nil
}

// ClosestPoint is the point of the ray nearest to p.
func (r Ray) ClosestPoint(p Point) Point {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.PointAt(t)
}

func nearest(a, b Shape) (onA, onB Point) {
	if a.Kind() == KindEllipse || b.Kind() == KindEllipse {
		unsupported(RelClosest, a.Kind(), b.Kind())
	}
	if sides, ok := compositeSides(a); ok {
		best := newNearestPair()
		for _, side := range sides {
			best.consider(nearest(side, b))
		}
		return best.onA, best.onB
	}
	if sides, ok := compositeSides(b); ok {
		best := newNearestPair()
		for _, side := range sides {
			best.consider(nearest(a, side))
		}
		return best.onA, best.onB
	}
	return nearestBase(a, b)
}

type nearestPair struct {
	onA, onB Point
	distance float32
}

func newNearestPair() *nearestPair {
	return &nearestPair{distance: inf(1)}
}

func (n *nearestPair) consider(onA, onB Point) {
	if d := onA.DistanceSquared(onB); d < n.distance {
		n.onA, n.onB, n.distance = onA, onB, d
	}
}

// Base cases over Point, Segment, Ray and Circle. Mirrored pairs are solved
// once and swapped.
func nearestBase(a, b Shape) (onA, onB Point) {
	if p, ok := a.(Point); ok {
		return p, closestOn(p, b)
	}
	if p, ok := b.(Point); ok {
		return closestOn(p, a), p
	}
	if hits := Intersects(a, b); len(hits) > 0 {
		return hits[0], hits[0]
	}
	switch a := a.(type) {
	case Segment, Ray:
		switch b := b.(type) {
		case Segment, Ray:
			return nearestLinear(a, b)
		case Circle:
			return nearestLinearCircle(a, b)
		}
	case Circle:
		switch b := b.(type) {
		case Segment, Ray:
			onB, onA = nearestLinearCircle(b, a)
			return onA, onB
		case Circle:
			return nearestCircleCircle(a, b)
		}
	}
	panic("nearestBase: unexpected shape pair")
}

// Closest point of a base shape to p.
func closestOn(p Point, s Shape) Point {
	switch s := s.(type) {
	case Point:
		return s
	case Segment:
		return s.ClosestPoint(p)
	case Ray:
		return s.ClosestPoint(p)
	case Circle:
		return s.project(p)
	}
	panic("closestOn: unexpected shape")
}

// Radial projection onto the circle. The center projects onto the +X extreme.
func (c Circle) project(p Point) Point {
	v := p.Sub(c.Origin)
	if v.LengthSquared() == 0 {
		return c.Origin.Add(Vec(c.Radius, 0))
	}
	return c.Origin.Add(normalize(v).MulScalar(c.Radius))
}

// Two segments or rays that do not cross are nearest at an endpoint of one of
// them.
func nearestLinear(a, b Shape) (onA, onB Point) {
	best := newNearestPair()
	for _, p := range a.Points() {
		best.consider(p, closestOn(p, b))
	}
	for _, p := range b.Points() {
		best.consider(closestOn(p, a), p)
	}
	return best.onA, best.onB
}

// The linear shape does not cross the circle, so it is either outside it or
// (a segment) wholly inside it.
func nearestLinearCircle(l Shape, c Circle) (onL, onC Point) {
	q := closestOn(c.Origin, l)
	if q.DistanceSquared(c.Origin) >= c.Radius*c.Radius {
		return q, c.project(q)
	}
	// Inside: the distance to the outline is largest away from the center,
	// which for a segment is at its farther endpoint.
	far := l.Points()[0]
	for _, p := range l.Points()[1:] {
		if p.DistanceSquared(c.Origin) > far.DistanceSquared(c.Origin) {
			far = p
		}
	}
	return far, c.project(far)
}

// Non-crossing circles are nearest along the line through their centers.
func nearestCircleCircle(c1, c2 Circle) (onA, onB Point) {
	between := c2.Origin.Sub(c1.Origin)
	if between.LengthSquared() == 0 {
		return c1.project(c1.Origin), c2.project(c2.Origin)
	}
	direction := normalize(between)
	d := between.Length()
	switch {
	case d < c2.Radius-c1.Radius:
		// c1 sits inside c2: both outlines are nearest on the side of c1
		// away from c2's center.
		direction = direction.MulScalar(-1)
		return c1.Origin.Add(direction.MulScalar(c1.Radius)), c2.Origin.Add(direction.MulScalar(c2.Radius))
	case d < c1.Radius-c2.Radius:
		return c1.Origin.Add(direction.MulScalar(c1.Radius)), c2.Origin.Add(direction.MulScalar(c2.Radius))
	}
	return c1.Origin.Add(direction.MulScalar(c1.Radius)), c2.Origin.Add(direction.MulScalar(-c2.Radius))
}
