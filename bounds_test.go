package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, r, AABB(r))
	assert.Equal(t, NewRect(-2, -1, 6, 6), AABB(NewCircle(1, 2, 3)))
	assert.Equal(t, NewRect(-4, -2, 8, 4), AABB(NewEllipse(0, 0, 4, 2)))
	assert.Equal(t, NewRect(0, 0, 10, 10), AABB(mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(0, 10))))
	assert.Equal(t, NewRect(0, 0, 10, 10), AABB(notchedSquare(t)))
	assert.Equal(t, NewRect(2, 1, 3, 4), AABB(Seg(5, 1, 2, 5)))
	assert.Equal(t, NewRect(3, 3, 0, 0), AABB(Pt(3, 3)))

	t.Run("ray", func(t *testing.T) {
		box := AABB(NewRay(Pt(1, 1), Vec(1, 0)))
		assert.Equal(t, Pt(1, 1), box.Position)
		assert.True(t, math.IsInf(float64(box.Size.X), 1))
		assert.Zero(t, box.Size.Y)

		box = AABB(NewRay(Pt(1, 1), Vec(-1, -1)))
		assert.True(t, math.IsInf(float64(box.Position.X), -1))
		assert.True(t, math.IsInf(float64(box.Position.Y), -1))
	})
}

func TestCircumcircle(t *testing.T) {
	c := mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(0, 10)).Circumcircle()
	assert.Equal(t, Pt(5, 5), c.Origin)
	assert.InDelta(t, 7.0711, c.Radius, 1e-4)
}

func TestBoundingCircle(t *testing.T) {
	assert.Equal(t, Circle{Origin: Pt(3, 4), Radius: 5}, BoundingCircle(NewRect(0, 0, 6, 8)))
	assert.Equal(t, Circle{Origin: Pt(3, 4), Radius: 5}, BoundingCircle(Seg(0, 0, 6, 8)))
	assert.Equal(t, Circle{Origin: Pt(1, 1)}, BoundingCircle(Pt(1, 1)))
	assert.Equal(t, Circle{Origin: Pt(1, 1), Radius: 4}, BoundingCircle(NewEllipse(1, 1, 4, 2)))
	assert.True(t, math.IsInf(float64(BoundingCircle(NewRay(Pt(0, 0), Vec(1, 0))).Radius), 1))

	t.Run("regular polygon", func(t *testing.T) {
		hexagon, err := NewRegularPolygon(Pt(5, 5), 10, 6)
		assert.NoError(t, err)
		c := BoundingCircle(hexagon)
		assert.InDelta(t, 5, c.Origin.X, 1e-3)
		assert.InDelta(t, 5, c.Origin.Y, 1e-3)
		assert.InDelta(t, 10, c.Radius, 1e-3)
	})

	t.Run("covers every vertex", func(t *testing.T) {
		shapes := []Shape{
			notchedSquare(t),
			mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(5, 2)),
			mustPolygon(t, Pt(0, 0), Pt(7, -3), Pt(12, 4), Pt(9, 11), Pt(2, 9), Pt(-4, 5)),
		}
		for _, s := range shapes {
			c := BoundingCircle(s)
			for _, v := range s.Points() {
				assert.LessOrEqual(t, v.Distance(c.Origin), c.Radius+1e-4, "%s vertex %v", s.Kind(), v)
			}
		}
	})
}

func TestRitterGrowsToOutliers(t *testing.T) {
	// The first diameter is (0,0)-(10,0); (5,8) lies outside it.
	c := Ritter([]Point{{0, 0}, {10, 0}, {5, 8}})
	for _, p := range []Point{{0, 0}, {10, 0}, {5, 8}} {
		assert.LessOrEqual(t, p.Distance(c.Origin), c.Radius+1e-4)
	}
	assert.Equal(t, Circle{}, Ritter(nil))
}

func TestRitterStartsFromTheFirstPoint(t *testing.T) {
	// The first diameter runs from (1,1) to (4,0), which leaves (0,0) outside.
	// Growing toward it gives r = (√10/2 + √6.5) / 2.
	points := []Point{{1, 1}, {0, 0}, {4, 0}}
	c := Ritter(points)
	assert.InDelta(t, 2.0653, c.Radius, 1e-3)
	assert.InDelta(t, 2.0252, c.Origin.X, 1e-3)
	assert.InDelta(t, 0.4050, c.Origin.Y, 1e-3)
	for _, p := range points {
		assert.LessOrEqual(t, p.Distance(c.Origin), c.Radius+1e-4)
	}
}

func TestCircumcircleOfObtuseTriangle(t *testing.T) {
	c := mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(5, 2)).Circumcircle()
	assert.InDelta(t, 5, c.Origin.X, 1e-4)
	assert.InDelta(t, -5.25, c.Origin.Y, 1e-4)
	assert.InDelta(t, 7.25, c.Radius, 1e-4)
}

func TestRectUnion(t *testing.T) {
	a, b := NewRect(0, 0, 2, 2), NewRect(5, -1, 1, 1)
	assert.Equal(t, NewRect(0, -1, 6, 3), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(NewRect(1, 1, 0, 0)))
}
