package geom2d

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up and down the recursive decomposition of composite
// shapes would add a ton of complexity to every base case. Instead, base cases
// that have no algorithm panic with an unsupportedPanic, and the public entry
// points recover to convert it to an error.

// ErrUnsupported means no algorithm is defined for the pair of shape kinds.
// It is distinct from a false or empty answer: the result is not computable.
var ErrUnsupported = errors.New("not implemented for this pair of shapes")

// Relation names a pairwise predicate in the unsupported catalogue.
type Relation int

const (
	RelContains Relation = iota
	RelIntersects
	RelClosest
)

func (r Relation) String() string {
	switch r {
	case RelContains:
		return "contains"
	case RelIntersects:
		return "intersects"
	case RelClosest:
		return "closest"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

type unsupportedPanic struct {
	err error
}

// Panic with an unsupportedPanic for the given relation and operand kinds.
func unsupported(rel Relation, a, b Kind) {
	panic(unsupportedPanic{errors.Wrapf(ErrUnsupported, "%s(%s, %s)", rel, a, b)})
}

// handleUnsupportedRecover turns a recovered unsupportedPanic back into an
// error. Any other panic is a real bug and is re-raised.
func handleUnsupportedRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(unsupportedPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}

type kindPair struct {
	a, b Kind
}

// Base-case pairs without an algorithm. Composite shapes reduce to their
// sides, so a composite pair is supported whenever its side pairs are.
var unsupportedPairs = map[Relation]map[kindPair]struct{}{
	RelContains: {
		{KindCircle, KindEllipse}:   {},
		{KindEllipse, KindCircle}:   {},
		{KindEllipse, KindEllipse}:  {},
		{KindTriangle, KindEllipse}: {},
		{KindPolygon, KindEllipse}:  {},
	},
	RelIntersects: {
		{KindCircle, KindEllipse}:  {},
		{KindEllipse, KindCircle}:  {},
		{KindEllipse, KindEllipse}: {},
	},
}

// Supports reports whether rel has an algorithm for shapes of kinds a and b.
// When it returns false, Contains and Closest fail with ErrUnsupported and
// Intersects answers nil without meaning "no intersection".
func Supports(rel Relation, a, b Kind) bool {
	if rel == RelClosest {
		return a != KindEllipse && b != KindEllipse
	}
	_, missing := unsupportedPairs[rel][kindPair{a, b}]
	return !missing
}
