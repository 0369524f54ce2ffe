package renderer

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/integrator"
)

const (
	// maxChannel keeps a resolved channel strictly below 1 so it never maps past 255
	maxChannel = 0.9999999
	// queueDepthPerWorker bounds the job and result queues independently of frame size
	queueDepthPerWorker = 64
)

// Camera turns normalized screen coordinates into primary rays.
// s runs left to right and t bottom to top, both over [0, 1].
type Camera interface {
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      integrator.Scene
	camera     Camera
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer that path traces against the default sky
func NewRaytracer(scene integrator.Scene, camera Camera, config Config) *Raytracer {
	return &Raytracer{
		scene:      scene,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultBackground()),
		logger:     core.NopLogger{},
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// SetLogger sets the logger for progress and worker failures
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render is shorthand for NewRaytracer(scene, camera, config).Render()
func Render(scene integrator.Scene, camera Camera, config Config) (*Frame, RenderStats, error) {
	return NewRaytracer(scene, camera, config).Render()
}

// Render fans one job per pixel out to the worker pool and gathers the
// results into a frame. Configuration problems are reported before any work
// starts. The returned stats are filled in even when collection fails.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if isNil(rt.scene) {
		return nil, RenderStats{}, ErrNilScene
	}
	if isNil(rt.camera) {
		return nil, RenderStats{}, ErrNilCamera
	}

	width, height := rt.config.Width, rt.config.Height
	total := width * height
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalPixels:     total,
		TotalSamples:    total * rt.config.SamplesPerPixel,
	}

	workers := rt.config.workerCount()
	pool := NewWorkerPool(queueSize(workers, total), workers, rt.renderPixel, rt.pixelSeed, rt.logger)
	stats.Workers = pool.GetNumWorkers()

	rt.logger.Infof("rendering %dx%d at %d spp with %d workers",
		width, height, rt.config.SamplesPerPixel, stats.Workers)
	start := time.Now()

	pool.Start()
	go func() {
		for y := height - 1; y >= 0; y-- {
			for x := 0; x < width; x++ {
				pool.SubmitJob(PixelJob{X: x, Y: y})
			}
		}
		pool.Stop()
	}()

	frame := NewFrame(width, height)
	failed, err := collectResults(pool, frame, total)
	pool.Wait()

	stats.FailedPixels = failed
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, stats, err
	}

	stats.AverageLuminance = frame.AverageLuminance()

	if failed > 0 {
		rt.logger.Warningf("%d of %d pixels failed and were marked", failed, total)
	}
	rt.logger.Noticef("rendered %dx%d in %s (%.0f samples/sec, average luminance %.3f)",
		width, height, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond(), stats.AverageLuminance)

	return frame, stats, nil
}

// collectResults places exactly total results into the frame, flipping the
// bottom-up job rows into top-down frame rows
func collectResults(pool *WorkerPool, frame *Frame, total int) (int, error) {
	height := frame.Height()
	failed := 0

	for received := 0; received < total; received++ {
		result, ok := pool.GetResult()
		if !ok {
			return failed, fmt.Errorf("%w: got %d of %d pixels", ErrIncompleteRender, received, total)
		}
		frame.Set(result.X, height-1-result.Y, result.Color)
		if result.Failed {
			failed++
		}
	}

	return failed, nil
}

// renderPixel averages jittered samples for one pixel and resolves the result
func (rt *Raytracer) renderPixel(job PixelJob, sampler core.Sampler) core.Vec3 {
	widthDivisor := jitterDivisor(rt.config.Width)
	heightDivisor := jitterDivisor(rt.config.Height)

	sum := core.Vec3{}
	for i := 0; i < rt.config.SamplesPerPixel; i++ {
		jitter := sampler.Get2D()
		s := (float64(job.X) + jitter.X) / widthDivisor
		t := (float64(job.Y) + jitter.Y) / heightDivisor

		ray := rt.camera.GetRay(s, t, sampler)
		sum = sum.Add(rt.integrator.RayColor(ray, rt.scene, sampler, rt.config.MaxBounces))
	}

	return resolvePixel(sum, rt.config.SamplesPerPixel)
}

// pixelSeed derives an independent seed per pixel, so the image does not
// depend on which worker handled which pixel
func (rt *Raytracer) pixelSeed(job PixelJob) int64 {
	index := uint64(job.Y*rt.config.Width+job.X) + 1
	return int64(uint64(rt.config.Seed) ^ index*0x9E3779B97F4A7C15)
}

// jitterDivisor normalizes pixel coordinates by size-1, or 1 for a single pixel
func jitterDivisor(size int) float64 {
	if size <= 1 {
		return 1
	}
	return float64(size - 1)
}

// resolvePixel averages, gamma corrects and clamps a pixel's sample sum.
// NaN channels resolve to 0.
func resolvePixel(sum core.Vec3, samples int) core.Vec3 {
	average := sum.Multiply(1.0 / float64(samples))
	if average.HasNaN() {
		average = core.NewVec3(zeroNaN(average.X), zeroNaN(average.Y), zeroNaN(average.Z))
	}
	return average.Clamp(0, math.Inf(1)).Sqrt().Clamp(0, maxChannel)
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// queueSize is the capacity of the pool's job and result queues
func queueSize(workers, pixels int) int {
	return max(1, min(pixels, workers*queueDepthPerWorker))
}

// isNil also catches interfaces holding a nil pointer, such as a nil *scene.Scene
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
