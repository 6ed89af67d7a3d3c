package cmd

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/geometry"
	"github.com/whitted-dev/go-raytracer/pkg/lights"
	"github.com/whitted-dev/go-raytracer/pkg/loaders"
	"github.com/whitted-dev/go-raytracer/pkg/renderer"
	"github.com/whitted-dev/go-raytracer/pkg/scene"
	"github.com/whitted-dev/go-raytracer/pkg/scenes"
)

// subdivideThreshold is the group size at which imported models are split
// into bounded subgroups.
const subdivideThreshold = 64

// RenderScene renders a built-in scene or an imported OBJ model and writes
// the image to the output file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	opts := renderer.DefaultOptions()
	if workers := ctx.Int("workers"); workers > 0 {
		opts.Workers = workers
	}
	opts.Samples = ctx.Int("aa")

	var (
		world  *scene.World
		camera *renderer.Camera
	)
	if objFile := ctx.String("obj"); objFile != "" {
		var err error
		world, camera, err = modelScene(objFile, width, height)
		if err != nil {
			return err
		}
	} else {
		sc, err := scenes.Lookup(ctx.String("scene"))
		if err != nil {
			return err
		}
		logger.Infof("building scene %q", sc.Name)
		world, camera = sc.Build(width, height)
	}

	image, stats := renderer.Render(camera, world, opts)
	displayRenderStats(stats)

	out := ctx.String("out")
	if err := image.Save(out); err != nil {
		return err
	}
	logger.Infof("wrote %s", out)
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Size", "Workers", "Samples", "Rays", "Render time", "Pixels/sec"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%d", stats.RayCount()),
		fmt.Sprintf("%s", stats.Duration.Round(time.Millisecond)),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
	})
	table.Render()
	logger.Infof("render statistics\n%s", buf.String())
}

// modelScene places an imported OBJ model above a reflective floor.
func modelScene(path string, width, height int) (*scene.World, *renderer.Camera, error) {
	logger.Infof("importing model %s", path)
	parser, err := loaders.ParseObjFile(path)
	if err != nil {
		return nil, nil, err
	}
	if parser.Ignored > 0 {
		logger.Warningf("ignored %d unrecognized lines", parser.Ignored)
	}

	model := parser.ToGroup()
	model.Divide(subdivideThreshold)

	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	floor := geometry.NewPlane()
	floor.Material().Reflective = 0.1
	w.AddObject(floor, model)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 3, -8),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return w, camera, nil
}
