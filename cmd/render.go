package cmd

import (
	"errors"
	"fmt"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/log"
	"github.com/ebenpack/rtiaw/pkg/output"
	"github.com/ebenpack/rtiaw/pkg/renderer"
	"github.com/ebenpack/rtiaw/pkg/scene"
	"github.com/urfave/cli"
)

// ErrInvalidAspectRatio is returned when the height must be derived from a non-positive aspect ratio
var ErrInvalidAspectRatio = errors.New("aspect ratio must be positive")

// RenderOptions collects everything the render command needs
type RenderOptions struct {
	Config      renderer.Config
	AspectRatio float64 // Used to derive the height when Config.Height is 0
	Scene       string
	Out         string
	NoBVH       bool
}

// RenderOptionsFromContext reads the render command flags
func RenderOptionsFromContext(ctx *cli.Context) RenderOptions {
	return RenderOptions{
		Config: renderer.Config{
			Width:           ctx.Int("width"),
			Height:          ctx.Int("height"),
			SamplesPerPixel: ctx.Int("samples"),
			MaxBounces:      ctx.Int("depth"),
			NumWorkers:      ctx.Int("workers"),
			Seed:            ctx.Int64("seed"),
		},
		AspectRatio: ctx.Float64("aspect-ratio"),
		Scene:       ctx.String("scene"),
		Out:         ctx.String("out"),
		NoBVH:       ctx.Bool("no-bvh"),
	}
}

// resolveConfig derives the height and validates the configuration
func (opts RenderOptions) resolveConfig() (renderer.Config, error) {
	config := opts.Config
	if config.Height == 0 {
		if opts.AspectRatio <= 0 {
			return config, fmt.Errorf("%w: got %g", ErrInvalidAspectRatio, opts.AspectRatio)
		}
		config.Height = int(float64(config.Width) / opts.AspectRatio)
	}
	return config, config.Validate()
}

// RenderFrame renders a single frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	stats, err := Render(RenderOptionsFromContext(ctx))
	if err != nil {
		return err
	}

	host, err := renderer.GetHostInfo()
	if err != nil {
		logger.Debugf("host info incomplete: %v", err)
	}
	logger.Noticef("frame statistics\n%s", stats.Table(host))
	return nil
}

// Render builds the scene, renders it and saves the image. Every
// configuration problem is reported before rendering starts and before the
// output file is touched.
func Render(opts RenderOptions) (renderer.RenderStats, error) {
	config, err := opts.resolveConfig()
	if err != nil {
		return renderer.RenderStats{}, err
	}
	if _, err := output.WriterFor(opts.Out); err != nil {
		return renderer.RenderStats{}, err
	}

	s, camera, err := createScene(opts.Scene, float64(config.Width)/float64(config.Height), config.Seed, opts.NoBVH)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	logger.Infof("scene %q: %d shapes", opts.Scene, s.Len())
	if bvhStats, ok := s.BVHStats(); ok {
		logger.Debugf("bvh: %d nodes, %d leaves, depth %d", bvhStats.Nodes, bvhStats.Leaves, bvhStats.MaxDepth)
	}

	rt := renderer.NewRaytracer(s, camera, config)
	rt.SetLogger(log.New("renderer"))

	frame, stats, err := rt.Render()
	if err != nil {
		return stats, err
	}

	if err := output.Save(opts.Out, frame); err != nil {
		return stats, err
	}
	logger.Noticef("wrote %dx%d frame to %s", frame.Width(), frame.Height(), opts.Out)

	return stats, nil
}

// createScene builds a built-in scene and its camera for the given aspect ratio
func createScene(name string, aspectRatio float64, seed int64, noBVH bool) (*scene.Scene, *geometry.Camera, error) {
	preset, err := scene.LookupPreset(name)
	if err != nil {
		return nil, nil, err
	}

	opts := []scene.Option{scene.WithLogger(log.New("scene"))}
	if noBVH {
		opts = append(opts, scene.WithoutBVH())
	}

	s, err := preset.Build(core.NewSeededSampler(seed), opts...)
	if err != nil {
		return nil, nil, err
	}

	return s, geometry.NewCamera(preset.Camera(aspectRatio)), nil
}
