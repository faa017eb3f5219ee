package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geom2d/config"
	"github.com/osuushi/geom2d/scene"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the geometry kernel on scenes drawn in any SVG editor. Lines,
// rectangles, circles, ellipses, polygons and polylines become shapes; a line
// with class "ray" becomes a ray the trace command can start from.

var (
	app        = kingpin.New("geomtrace", "Inspect SVG scenes and trace rays through them.")
	configPath = app.Flag("config", "YAML config file.").Short('c').String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	strict     = app.Flag("strict", "Fail on shape elements that cannot be loaded.").Bool()

	boundsCmd   = app.Command("bounds", "Print the bounding box and circle of every shape.")
	boundsScene = boundsCmd.Arg("scene", "SVG scene.").Required().ExistingFile()

	traceCmd     = app.Command("trace", "Trace a ray through a scene.")
	traceScene   = traceCmd.Arg("scene", "SVG scene.").Required().ExistingFile()
	traceOrigin  pointValue
	traceDir     pointValue
	traceBounces = traceCmd.Flag("max-bounces", "Bounce limit. Defaults to tracer.max_bounces.").Default("-1").Int()
	tracePNG     = traceCmd.Flag("png", "Render the trace to this PNG file.").String()
	tracePreview = traceCmd.Flag("preview", "Show the render in the terminal (iTerm only).").Bool()

	overlapsCmd   = app.Command("overlaps", "Print every pair of shapes whose outlines meet.")
	overlapsScene = overlapsCmd.Arg("scene", "SVG scene.").Required().ExistingFile()
)

func init() {
	traceCmd.Flag("origin", "Ray origin as x,y. Defaults to the first ray in the scene.").SetValue(&traceOrigin)
	traceCmd.Flag("dir", "Ray direction as dx,dy.").SetValue(&traceDir)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "config")
	logger, err := newLogger(cfg.Logging)
	app.FatalIfError(err, "logging")

	loader := scene.NewLoader(logger)
	loader.Strict = *strict
	au := aurora.NewAurora(!*noColor)

	switch command {
	case boundsCmd.FullCommand():
		var sc *scene.Scene
		sc, err = loader.LoadFile(*boundsScene)
		if err == nil {
			printBounds(os.Stdout, au, sc)
		}

	case traceCmd.FullCommand():
		var sc *scene.Scene
		sc, err = loader.LoadFile(*traceScene)
		if err == nil {
			err = runTrace(os.Stdout, au, logger, sc, cfg, traceOptions{
				origin:     traceOrigin,
				direction:  traceDir,
				maxBounces: *traceBounces,
				png:        *tracePNG,
				preview:    *tracePreview,
			})
		}

	case overlapsCmd.FullCommand():
		var sc *scene.Scene
		sc, err = loader.LoadFile(*overlapsScene)
		if err == nil {
			printOverlaps(os.Stdout, au, sc)
		}
	}
	app.FatalIfError(err, command)
}
