package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
)

// Padding around the scene, in pixels
const drawPadding = 40

// Frame is what Render draws: a set of shapes, optionally labelled, and the
// path of a traced ray.
type Frame struct {
	Shapes []geom2d.Shape
	// Labels, when present, line up with Shapes.
	Labels  []string
	Ray     *geom2d.Ray
	Bounces []geom2d.Bounce
}

// Render draws the frame to a PNG at path. Scale is pixels per scene unit.
func Render(path string, frame Frame, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("render scale must be positive, got %g", scale)
	}
	box, ok := frame.bounds()
	if !ok {
		return errors.New("nothing to render")
	}
	minX, minY := float64(box.Position.X), float64(box.Position.Y)

	width := int(scale*float64(box.Size.X)) + drawPadding*2
	height := int(scale*float64(box.Size.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Scene coordinates are already y-down, so there is no flip here
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Rays are drawn out to the far corner of the canvas
	reach := math.Hypot(float64(width), float64(height)) / scale

	c.SetLineWidth(2)
	for i, s := range frame.Shapes {
		drawShape(c, s, reach)
		if i < len(frame.Labels) {
			center := geom2d.Center(s)
			drawLabel(c, frame.Labels[i], float64(center.X), float64(center.Y))
		}
	}

	if frame.Ray != nil {
		drawPath(c, *frame.Ray, frame.Bounces, reach)
	}

	return errors.Wrapf(c.SavePNG(path), "save %s", path)
}

// Preview prints a rendered PNG to the terminal (iTerm only).
func Preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Union of the finite bounding boxes, the ray origin and the bounce points.
func (f Frame) bounds() (geom2d.Rect, bool) {
	var box geom2d.Rect
	found := false
	add := func(r geom2d.Rect) {
		if !found {
			box, found = r, true
			return
		}
		box = box.Union(r)
	}
	for _, s := range f.Shapes {
		if s.Kind() == geom2d.KindRay {
			add(geom2d.AABB(s.(geom2d.Ray).Origin))
			continue
		}
		add(geom2d.AABB(s))
	}
	if f.Ray != nil {
		add(geom2d.AABB(f.Ray.Origin))
	}
	for _, b := range f.Bounces {
		add(geom2d.AABB(b.Point))
	}
	return box, found
}

func drawShape(c *gg.Context, s geom2d.Shape, reach float64) {
	c.SetRGB(0, 1, 1)
	switch s := s.(type) {
	case geom2d.Point:
		c.DrawPoint(float64(s.X), float64(s.Y), 3)
		c.Fill()
		return
	case geom2d.Segment:
		c.DrawLine(float64(s.Start.X), float64(s.Start.Y), float64(s.End.X), float64(s.End.Y))
		c.Stroke()
		return
	case geom2d.Ray:
		end := s.PointAt(float32(reach))
		c.DrawLine(float64(s.Origin.X), float64(s.Origin.Y), float64(end.X), float64(end.Y))
		c.Stroke()
		return
	case geom2d.Rect:
		c.DrawRectangle(float64(s.Position.X), float64(s.Position.Y), float64(s.Size.X), float64(s.Size.Y))
	case geom2d.Circle:
		c.DrawCircle(float64(s.Origin.X), float64(s.Origin.Y), float64(s.Radius))
	case geom2d.Ellipse:
		c.DrawEllipse(float64(s.Origin.X), float64(s.Origin.Y), float64(s.A), float64(s.B))
	case geom2d.Triangle, geom2d.Polygon:
		vertices := s.Points()
		c.MoveTo(float64(vertices[0].X), float64(vertices[0].Y))
		for _, v := range vertices[1:] {
			c.LineTo(float64(v.X), float64(v.Y))
		}
		c.ClosePath()
	}
	// Closed shapes get a translucent fill
	c.SetRGBA(0, 0.5, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

// The ray path runs from the origin through every bounce. The last leg leaves
// the canvas.
func drawPath(c *gg.Context, r geom2d.Ray, bounces []geom2d.Bounce, reach float64) {
	c.SetRGB(1, 1, 0)
	from := r.Origin
	direction := r.Direction
	for _, b := range bounces {
		c.DrawLine(float64(from.X), float64(from.Y), float64(b.Point.X), float64(b.Point.Y))
		c.Stroke()
		c.DrawPoint(float64(b.Point.X), float64(b.Point.Y), 4)
		c.Fill()
		from, direction = b.Point, b.Direction
	}
	end := geom2d.NewRay(from, direction).PointAt(float32(reach))
	c.SetRGBA(1, 1, 0, 0.5)
	c.DrawLine(float64(from.X), float64(from.Y), float64(end.X), float64(end.Y))
	c.Stroke()
}

func drawLabel(c *gg.Context, label string, x, y float64) {
	// Text is drawn in device space so it doesn't scale with the scene
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, x, y, 0.5, 0.5)
	c.Pop()
}
