package geom2d

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContain(t *testing.T, a, b Shape) bool {
	t.Helper()
	result, err := Contains(a, b)
	require.NoError(t, err)
	return result
}

// A 10×10 square with a 2-wide notch cut in from the y = 10 edge
// down to y = 4.
func notchedSquare(t *testing.T) Polygon {
	return mustPolygon(t,
		Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(6, 10),
		Pt(6, 4), Pt(4, 4), Pt(4, 10), Pt(0, 10),
	)
}

func TestContainsPoint(t *testing.T) {
	t.Run("circle excludes its boundary", func(t *testing.T) {
		c := NewCircle(0, 0, 5)
		assert.False(t, mustContain(t, c, Pt(5, 0)))
		assert.True(t, mustContain(t, c, Pt(4.999, 0)))
		assert.True(t, mustContain(t, c, Pt(0, 0)))
	})

	t.Run("ellipse excludes its boundary", func(t *testing.T) {
		e := NewEllipse(0, 0, 4, 2)
		assert.False(t, mustContain(t, e, Pt(4, 0)))
		assert.True(t, mustContain(t, e, Pt(3, 0)))
		assert.False(t, mustContain(t, e, Pt(0, 3)))
	})

	t.Run("rect includes its boundary", func(t *testing.T) {
		r := NewRect(0, 0, 10, 10)
		assert.True(t, mustContain(t, r, Pt(10, 10)))
		assert.True(t, mustContain(t, r, Pt(0, 5)))
		assert.False(t, mustContain(t, r, Pt(10.01, 5)))
	})

	t.Run("triangle", func(t *testing.T) {
		tri := mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(0, 10))
		assert.True(t, mustContain(t, tri, Pt(2, 2)))
		assert.True(t, mustContain(t, tri, Pt(5, 0)))
		assert.True(t, mustContain(t, tri, Pt(0, 5)))
		// u + v == 1 on the edge opposite A
		assert.False(t, mustContain(t, tri, Pt(5, 5)))
		assert.False(t, mustContain(t, tri, Pt(-1, 2)))
	})

	t.Run("concave polygon", func(t *testing.T) {
		poly := notchedSquare(t)
		assert.True(t, mustContain(t, poly, Pt(2, 8)))
		assert.True(t, mustContain(t, poly, Pt(5, 2)))
		assert.False(t, mustContain(t, poly, Pt(5, 8)))
		assert.Equal(t, 2, poly.CrossingCount(Pt(5, 8)))
	})

	t.Run("linear shapes", func(t *testing.T) {
		assert.True(t, mustContain(t, Seg(0, 0, 10, 0), Pt(5, 0)))
		assert.False(t, mustContain(t, Seg(0, 0, 10, 0), Pt(5, 1)))
		assert.True(t, mustContain(t, NewRay(Pt(0, 0), Vec(1, 0)), Pt(100, 0)))
		assert.False(t, mustContain(t, NewRay(Pt(0, 0), Vec(1, 0)), Pt(-1, 0)))
		assert.True(t, mustContain(t, Pt(1, 1), Pt(1, 1)))
	})
}

func TestContainsSegment(t *testing.T) {
	poly := notchedSquare(t)
	assert.True(t, mustContain(t, poly, Seg(1, 2, 9, 2)))
	// Both ends inside, but it crosses the notch
	assert.False(t, mustContain(t, poly, Seg(2, 8, 8, 8)))

	assert.True(t, mustContain(t, NewCircle(0, 0, 5), Seg(-1, 0, 1, 0)))
	assert.False(t, mustContain(t, NewCircle(0, 0, 5), Seg(-1, 0, 6, 0)))
}

func TestContainsCircle(t *testing.T) {
	t.Run("circle in circle", func(t *testing.T) {
		outer := NewCircle(0, 0, 5)
		assert.True(t, mustContain(t, outer, NewCircle(1, 0, 3)))
		// Internally tangent
		assert.False(t, mustContain(t, outer, NewCircle(2, 0, 3)))
		assert.False(t, mustContain(t, outer, outer))
	})

	t.Run("circle in rect", func(t *testing.T) {
		r := NewRect(0, 0, 10, 10)
		assert.True(t, mustContain(t, r, NewCircle(5, 5, 5)))
		assert.False(t, mustContain(t, r, NewCircle(5, 5, 5.5)))
	})

	t.Run("circle in triangle", func(t *testing.T) {
		tri := mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(0, 10))
		assert.True(t, mustContain(t, tri, NewCircle(2, 2, 1)))
		assert.False(t, mustContain(t, tri, NewCircle(2, 2, 2.5)))
	})

	t.Run("circle in polygon", func(t *testing.T) {
		poly := notchedSquare(t)
		assert.True(t, mustContain(t, poly, NewCircle(2, 2, 1)))
		// Center inside, but the circle pokes into the notch
		assert.False(t, mustContain(t, poly, NewCircle(2, 7, 3)))
	})
}

func TestContainsComposite(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, mustContain(t, r, mustTriangle(t, Pt(1, 1), Pt(9, 1), Pt(1, 9))))
	assert.True(t, mustContain(t, r, r))
	assert.True(t, mustContain(t, NewCircle(0, 0, 20), r))
	assert.False(t, mustContain(t, NewCircle(0, 0, 10), r))
	assert.False(t, mustContain(t, notchedSquare(t), NewRect(1, 1, 8, 8)))
	assert.True(t, mustContain(t, NewRect(-10, -10, 30, 30), notchedSquare(t)))
}

func TestContainsEllipse(t *testing.T) {
	assert.True(t, mustContain(t, NewRect(0, 0, 10, 10), NewEllipse(5, 5, 4, 2)))
	assert.False(t, mustContain(t, NewRect(0, 0, 10, 10), NewEllipse(5, 5, 6, 2)))
	assert.True(t, mustContain(t, NewEllipse(0, 0, 4, 2), Seg(-1, 0, 1, 0)))
}

func TestContainsRay(t *testing.T) {
	outer := NewRay(Pt(0, 0), Vec(1, 0))
	assert.True(t, mustContain(t, outer, NewRay(Pt(5, 0), Vec(2, 0))))
	assert.False(t, mustContain(t, outer, NewRay(Pt(-5, 0), Vec(1, 0))))
	assert.False(t, mustContain(t, outer, NewRay(Pt(5, 0), Vec(-1, 0))))
	assert.False(t, mustContain(t, NewRect(0, 0, 10, 10), NewRay(Pt(5, 5), Vec(1, 0))))
}

func TestContainsUnsupported(t *testing.T) {
	pairs := [][2]Shape{
		{NewEllipse(0, 0, 4, 2), NewCircle(0, 0, 1)},
		{NewCircle(0, 0, 5), NewEllipse(0, 0, 1, 2)},
		{NewEllipse(0, 0, 4, 2), NewEllipse(0, 0, 1, 1)},
		{mustTriangle(t, Pt(0, 0), Pt(10, 0), Pt(0, 10)), NewEllipse(2, 2, 1, 1)},
		{notchedSquare(t), NewEllipse(2, 2, 1, 1)},
	}
	for _, pair := range pairs {
		result, err := Contains(pair[0], pair[1])
		assert.False(t, result)
		assert.True(t, errors.Is(err, ErrUnsupported), "%s in %s", pair[1].Kind(), pair[0].Kind())
		assert.False(t, Supports(RelContains, pair[0].Kind(), pair[1].Kind()))
	}
}
