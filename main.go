package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/whitted-dev/go-raytracer/cmd"
	"github.com/whitted-dev/go-raytracer/log"
)

var logger = log.New("raytracer")

func main() {
	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render scenes with recursive ray tracing"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `Render one of the built-in scenes, or a Wavefront OBJ model when
--obj is given. The output format is picked from the file extension:
ppm, png, tiff or bmp.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "showcase",
					Usage: "name of the built-in scene to render",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "render this OBJ model instead of a built-in scene",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "canvas width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "canvas height in pixels",
				},
				cli.IntFlag{
					Name:  "aa",
					Value: 1,
					Usage: "antialiasing samples per pixel (1, 2, 4, 8 or 16)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render goroutines (defaults to the CPU count)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output image path",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
