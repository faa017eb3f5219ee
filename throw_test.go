package geom2d

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleUnsupportedRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := handleUnsupportedRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			unsupported(RelContains, KindEllipse, KindCircle)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with unsupported pair", func(t *testing.T) {
		err := testFn(true, false)
		assert.True(t, errors.Is(err, ErrUnsupported))
		assert.EqualError(t, err, "contains(Ellipse, Circle): not implemented for this pair of shapes")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestSupports(t *testing.T) {
	assert.False(t, Supports(RelContains, KindTriangle, KindEllipse))
	assert.True(t, Supports(RelContains, KindRect, KindEllipse))
	assert.True(t, Supports(RelContains, KindEllipse, KindTriangle))
	assert.False(t, Supports(RelClosest, KindEllipse, KindPoint))
	assert.True(t, Supports(RelClosest, KindPolygon, KindCircle))
	assert.Equal(t, "Relation(7)", Relation(7).String())
}
