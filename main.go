package main

import (
	"os"

	"github.com/ebenpack/rtiaw/cmd"
	"github.com/ebenpack/rtiaw/pkg/log"
	"github.com/ebenpack/rtiaw/pkg/renderer"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	defaults := renderer.DefaultConfig()

	// The default version flag is "version, v", which clashes with -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rtiaw"
	app.Usage = "render sphere scenes with a CPU path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Render one of the built-in scenes and write it as a PPM (P3) or PNG image,
chosen by the output file extension. Configuration errors are reported before
rendering starts and no output file is created.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect-ratio",
					Value: 3.0 / 2.0,
					Usage: "width / height, used when --height is 0",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "image height in pixels (0 = derive from width and aspect ratio)",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxBounces,
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "worker goroutines (0 = one per logical core)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "seed for scene placement and sampling",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "built-in scene to render (see the scenes command)",
				},
				cli.BoolFlag{
					Name:  "no-bvh",
					Usage: "test every shape linearly instead of building a BVH",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "image filename for the rendered frame (.ppm or .png)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("rtiaw").Errorf("%v", err)
		os.Exit(1)
	}
}
