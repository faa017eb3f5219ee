package scene

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// This is not a full (or even correct) SVG reader. It takes the basic shape
// elements at face value and ignores transforms, styles and units other than
// px.
//
//   - line becomes a Segment, or a Ray from (x1, y1) through (x2, y2) when it
//     has the class "ray".
//   - rect, circle and ellipse map onto the shapes of the same name.
//   - polygon becomes a Triangle or Polygon. Vertices listed in the reverse
//     order are flipped, so any simple polygon loads.
//   - polyline becomes one Segment per leg, named "<name>/<leg>".
//
// Groups are flattened. Items are named by their id, or get a readable name
// when they have none.

// ErrInvalidElement wraps every failure to convert a shape element.
var ErrInvalidElement = errors.New("invalid shape element")

var errUnknownElement = errors.New("not a shape element")

// Loader turns SVG documents into scenes.
type Loader struct {
	Log logrus.FieldLogger
	// Strict makes the loader fail on a shape element it cannot convert,
	// instead of logging and skipping it.
	Strict bool
}

func NewLoader(log logrus.FieldLogger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{Log: log}
}

// Load reads a scene with a non-strict loader that logs to the standard
// logger.
func Load(r io.Reader) (*Scene, error) {
	return NewLoader(nil).Load(r)
}

func (l *Loader) LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	scene, err := l.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return scene, nil
}

func (l *Loader) Load(r io.Reader) (*Scene, error) {
	// Attribute validation is done here, per element, so one bad element
	// doesn't sink the whole document.
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	scene := &Scene{}
	if err := l.walk(root, scene, new(int)); err != nil {
		return nil, err
	}
	l.Log.WithField("items", len(scene.Items)).Debug("loaded scene")
	return scene, nil
}

func (l *Loader) walk(el *svgparser.Element, scene *Scene, ordinal *int) error {
	for _, child := range el.Children {
		switch child.Name {
		case "svg", "g", "a":
			if err := l.walk(child, scene, ordinal); err != nil {
				return err
			}
			continue
		}

		log := l.Log.WithFields(logrus.Fields{
			"element": child.Name,
			"id":      child.Attributes["id"],
		})
		shapes, err := shapesOf(child)
		if errors.Is(err, errUnknownElement) {
			log.Debug("skipping element")
			continue
		}
		if err != nil {
			if l.Strict {
				return errors.Wrapf(err, "%s element %q", child.Name, child.Attributes["id"])
			}
			log.WithError(err).Warn("skipping invalid element")
			continue
		}

		name := child.Attributes["id"]
		if name == "" {
			name = dbg.Name(fmt.Sprintf("%s#%d", child.Name, *ordinal))
		}
		*ordinal++

		if len(shapes) == 1 && child.Name != "polyline" {
			scene.Items = append(scene.Items, Item{Name: name, Shape: shapes[0]})
			continue
		}
		for i, s := range shapes {
			scene.Items = append(scene.Items, Item{Name: fmt.Sprintf("%s/%d", name, i), Shape: s})
		}
	}
	return nil
}

func shapesOf(el *svgparser.Element) ([]geom2d.Shape, error) {
	a := attributes{el: el}
	switch el.Name {
	case "line":
		start := geom2d.Pt(a.number("x1", 0), a.number("y1", 0))
		end := geom2d.Pt(a.number("x2", 0), a.number("y2", 0))
		if a.err != nil {
			return nil, a.err
		}
		if !hasClass(el, "ray") {
			return []geom2d.Shape{geom2d.Segment{Start: start, End: end}}, nil
		}
		if start.Coincident(end) {
			return nil, errors.Wrap(ErrInvalidElement, "ray has no direction")
		}
		return []geom2d.Shape{geom2d.NewRay(start, end.Sub(start))}, nil

	case "rect":
		x, y := a.number("x", 0), a.number("y", 0)
		width, height := a.required("width"), a.required("height")
		if a.err != nil {
			return nil, a.err
		}
		if width < 0 || height < 0 {
			return nil, errors.Wrapf(ErrInvalidElement, "negative size %gx%g", width, height)
		}
		return []geom2d.Shape{geom2d.NewRect(x, y, width, height)}, nil

	case "circle":
		cx, cy, r := a.number("cx", 0), a.number("cy", 0), a.required("r")
		if a.err != nil {
			return nil, a.err
		}
		if r < 0 {
			return nil, errors.Wrapf(ErrInvalidElement, "negative radius %g", r)
		}
		return []geom2d.Shape{geom2d.NewCircle(cx, cy, r)}, nil

	case "ellipse":
		cx, cy := a.number("cx", 0), a.number("cy", 0)
		rx, ry := a.required("rx"), a.required("ry")
		if a.err != nil {
			return nil, a.err
		}
		if rx < 0 || ry < 0 {
			return nil, errors.Wrapf(ErrInvalidElement, "negative radii %g, %g", rx, ry)
		}
		return []geom2d.Shape{geom2d.NewEllipse(cx, cy, rx, ry)}, nil

	case "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		s, err := polygonShape(points)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidElement, "%v", err)
		}
		return []geom2d.Shape{s}, nil

	case "polyline":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if len(points) < 2 {
			return nil, errors.Wrapf(ErrInvalidElement, "polyline needs 2 points, got %d", len(points))
		}
		var legs []geom2d.Shape
		for i := range points[1:] {
			legs = append(legs, geom2d.Segment{Start: points[i], End: points[i+1]})
		}
		return legs, nil
	}
	return nil, errUnknownElement
}

// Ensure the vertices wind the way geom2d expects, then pick the tightest
// shape for them.
func polygonShape(points []geom2d.Point) (geom2d.Shape, error) {
	if geom2d.SignedArea(points) < 0 {
		reversed := make([]geom2d.Point, len(points))
		for i, p := range points {
			reversed[len(points)-1-i] = p
		}
		points = reversed
	}
	if len(points) == 3 {
		return geom2d.NewTriangle(points[0], points[1], points[2])
	}
	return geom2d.NewPolygon(points...)
}

func hasClass(el *svgparser.Element, class string) bool {
	for _, c := range strings.Fields(el.Attributes["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// attributes reads numeric attributes, keeping the first error so a shape
// can read all of its attributes before checking.
type attributes struct {
	el  *svgparser.Element
	err error
}

func (a *attributes) number(name string, fallback float32) float32 {
	raw, ok := a.el.Attributes[name]
	if !ok {
		return fallback
	}
	value, err := parseNumber(raw)
	if err != nil && a.err == nil {
		a.err = errors.Wrapf(ErrInvalidElement, "attribute %s: %v", name, err)
	}
	return value
}

func (a *attributes) required(name string) float32 {
	if _, ok := a.el.Attributes[name]; !ok && a.err == nil {
		a.err = errors.Wrapf(ErrInvalidElement, "missing attribute %s", name)
	}
	return a.number(name, 0)
}

func parseNumber(raw string) (float32, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "px")
	value, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", raw)
	}
	return float32(value), nil
}

// Points lists are coordinate pairs separated by commas and/or whitespace.
func parsePoints(raw string) ([]geom2d.Point, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidElement, "odd number of coordinates in %q", raw)
	}
	points := make([]geom2d.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidElement, "point %d: %v", i/2, err)
		}
		y, err := parseNumber(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidElement, "point %d: %v", i/2, err)
		}
		points = append(points, geom2d.Pt(x, y))
	}
	return points, nil
}
