// Package scene loads a set of named shapes from an SVG document and answers
// scene-wide questions about them.
package scene

import (
	"github.com/osuushi/geom2d"
)

// Item is a shape with the name it was loaded under.
type Item struct {
	Name  string
	Shape geom2d.Shape
}

type Scene struct {
	Items []Item
}

// Shapes returns the shapes of every item, in document order.
func (s *Scene) Shapes() []geom2d.Shape {
	shapes := make([]geom2d.Shape, len(s.Items))
	for i, item := range s.Items {
		shapes[i] = item.Shape
	}
	return shapes
}

// Names returns the name of every item, in document order.
func (s *Scene) Names() []string {
	names := make([]string, len(s.Items))
	for i, item := range s.Items {
		names[i] = item.Name
	}
	return names
}

func (s *Scene) Find(name string) (Item, bool) {
	for _, item := range s.Items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// Rays returns the rays declared in the scene.
func (s *Scene) Rays() []geom2d.Ray {
	var rays []geom2d.Ray
	for _, item := range s.Items {
		if r, ok := item.Shape.(geom2d.Ray); ok {
			rays = append(rays, r)
		}
	}
	return rays
}

// Bounds is the union of the bounding boxes of every shape. Rays contribute
// only their origin. The boolean is false for an empty scene.
func (s *Scene) Bounds() (geom2d.Rect, bool) {
	var box geom2d.Rect
	for i, item := range s.Items {
		var itemBox geom2d.Rect
		if r, ok := item.Shape.(geom2d.Ray); ok {
			itemBox = geom2d.AABB(r.Origin)
		} else {
			itemBox = geom2d.AABB(item.Shape)
		}
		if i == 0 {
			box = itemBox
		} else {
			box = box.Union(itemBox)
		}
	}
	return box, len(s.Items) > 0
}

// Overlap is a pair of items whose boundaries meet.
type Overlap struct {
	A, B   Item
	Points []geom2d.Point
}

// Overlaps returns every pair of items whose boundaries intersect, in
// document order. Pairs without an intersection algorithm are returned
// separately so callers can tell them apart from pairs that do not touch.
func (s *Scene) Overlaps() (overlaps []Overlap, unsupported [][2]Item) {
	for i, a := range s.Items {
		for _, b := range s.Items[i+1:] {
			if !geom2d.Supports(geom2d.RelIntersects, a.Shape.Kind(), b.Shape.Kind()) {
				unsupported = append(unsupported, [2]Item{a, b})
				continue
			}
			if points := geom2d.Intersects(a.Shape, b.Shape); len(points) > 0 {
				overlaps = append(overlaps, Overlap{A: a, B: b, Points: points})
			}
		}
	}
	return overlaps, unsupported
}

// ObstacleItems returns every item except the rays, which are light sources
// rather than surfaces.
func (s *Scene) ObstacleItems() []Item {
	var items []Item
	for _, item := range s.Items {
		if item.Shape.Kind() != geom2d.KindRay {
			items = append(items, item)
		}
	}
	return items
}

// Obstacles returns the shapes of ObstacleItems, in the same order.
func (s *Scene) Obstacles() []geom2d.Shape {
	items := s.ObstacleItems()
	shapes := make([]geom2d.Shape, len(items))
	for i, item := range items {
		shapes[i] = item.Shape
	}
	return shapes
}
