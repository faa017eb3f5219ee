// Package geom2d is a small 2D geometry kernel for games and interactive
// graphics. It models eight shape kinds (Point, Segment, Rect, Circle,
// Triangle, Polygon, Ray and Ellipse) and answers pairwise questions about
// them: containment, boundary intersection points and closest points. It also
// computes bounding boxes and circles, and traces a ray as it reflects off a
// set of shapes.
//
// Coordinates are float32 in y-down screen space. Composite shapes (Rect,
// Triangle and Polygon) are reduced to their sides, so every pairwise
// algorithm only needs base cases over the other kinds. A few pairs have no
// algorithm; Supports lists them and the predicates report ErrUnsupported.
//
// Shapes are immutable values. Every function in the package is safe for
// concurrent use.
package geom2d
