package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/config"
	"github.com/osuushi/geom2d/dbg"
	"github.com/osuushi/geom2d/scene"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// pointValue is a kingpin flag value written as "x,y".
type pointValue struct {
	point geom2d.Point
	set   bool
}

func (p *pointValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return errors.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return errors.Wrapf(err, "x of %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return errors.Wrapf(err, "y of %q", s)
	}
	p.point, p.set = geom2d.Pt(float32(x), float32(y)), true
	return nil
}

func (p *pointValue) String() string {
	return fmt.Sprintf("%g,%g", p.point.X, p.point.Y)
}

func printBounds(w io.Writer, au aurora.Aurora, sc *scene.Scene) {
	for _, item := range sc.Items {
		box := geom2d.AABB(item.Shape)
		circle := geom2d.BoundingCircle(item.Shape)
		fmt.Fprintf(w, "%s %s box=%v+%gx%g circle=%v r=%g\n",
			au.Bold(item.Name), au.Cyan(item.Shape.Kind()),
			box.Position, box.Size.X, box.Size.Y, circle.Origin, circle.Radius)
	}
	if box, ok := sc.Bounds(); ok {
		fmt.Fprintf(w, "%s box=%v+%gx%g\n", au.Bold("scene"), box.Position, box.Size.X, box.Size.Y)
	}
}

type traceOptions struct {
	origin, direction pointValue
	// Negative means the configured limit
	maxBounces int
	png        string
	preview    bool
}

func runTrace(w io.Writer, au aurora.Aurora, log logrus.FieldLogger, sc *scene.Scene, cfg config.Config, opts traceOptions) error {
	ray, err := startingRay(sc, opts)
	if err != nil {
		return err
	}
	maxBounces := opts.maxBounces
	if maxBounces < 0 {
		maxBounces = cfg.Tracer.MaxBounces
	}

	obstacles := sc.ObstacleItems()
	shapes := make([]geom2d.Shape, len(obstacles))
	for i, item := range obstacles {
		shapes[i] = item.Shape
	}
	bounces := cfg.Tracer.NewTracer().Trace(ray, shapes, maxBounces)
	log.WithFields(logrus.Fields{
		"origin":    ray.Origin,
		"direction": ray.Direction,
		"bounces":   len(bounces),
	}).Debug("traced ray")

	fmt.Fprintf(w, "ray from %v along (%g, %g)\n", ray.Origin, ray.Direction.X, ray.Direction.Y)
	for i, b := range bounces {
		fmt.Fprintf(w, "%3d %v hit %s, leaving along (%g, %g)\n",
			i+1, b.Point, au.Green(obstacles[b.Index].Name), b.Direction.X, b.Direction.Y)
	}
	if len(bounces) == maxBounces {
		fmt.Fprintln(w, au.Yellow(fmt.Sprintf("stopped after %d bounces", maxBounces)))
	} else {
		fmt.Fprintln(w, au.Red("escaped"))
	}

	output := opts.png
	preview := opts.preview || cfg.Render.Preview
	if output == "" && preview {
		output = cfg.Render.Output
	}
	if output == "" {
		return nil
	}
	frame := dbg.Frame{Shapes: sc.Shapes(), Labels: sc.Names(), Ray: &ray, Bounces: bounces}
	if err := dbg.Render(output, frame, cfg.Render.Scale); err != nil {
		return err
	}
	log.WithField("file", output).Info("rendered trace")
	if preview {
		dbg.Preview(output)
	}
	return nil
}

// The ray comes from the flags when given, otherwise from the scene.
func startingRay(sc *scene.Scene, opts traceOptions) (geom2d.Ray, error) {
	if opts.origin.set != opts.direction.set {
		return geom2d.Ray{}, errors.New("--origin and --dir go together")
	}
	if opts.origin.set {
		if opts.direction.point.Vec().LengthSquared() == 0 {
			return geom2d.Ray{}, errors.New("--dir must not be zero")
		}
		return geom2d.NewRay(opts.origin.point, opts.direction.point.Vec()), nil
	}
	rays := sc.Rays()
	if len(rays) == 0 {
		return geom2d.Ray{}, errors.New(`no ray: pass --origin and --dir, or add a line with class "ray" to the scene`)
	}
	return rays[0], nil
}

func printOverlaps(w io.Writer, au aurora.Aurora, sc *scene.Scene) {
	overlaps, unsupported := sc.Overlaps()
	for _, o := range overlaps {
		fmt.Fprintf(w, "%s × %s: %v\n", au.Green(o.A.Name), au.Green(o.B.Name), o.Points)
	}
	for _, pair := range unsupported {
		fmt.Fprintf(w, "%s × %s: %s\n", au.Yellow(pair[0].Name), au.Yellow(pair[1].Name),
			au.Yellow(fmt.Sprintf("no algorithm for %s and %s", pair[0].Shape.Kind(), pair[1].Shape.Kind())))
	}
	if len(overlaps) == 0 {
		fmt.Fprintln(w, "no overlaps")
	}
}
