package renderer

import (
	"sync"

	"github.com/ebenpack/rtiaw/pkg/core"
)

// FailedPixelColor marks pixels whose computation panicked
var FailedPixelColor = core.NewVec3(1, 0, 1)

// PixelJob asks for one pixel. Y counts rows from the bottom, matching the
// camera's t axis.
type PixelJob struct {
	X, Y int
}

// PixelResult carries a resolved pixel back to the collector
type PixelResult struct {
	X, Y   int
	Color  core.Vec3
	Failed bool // The job panicked and Color is FailedPixelColor
}

// PixelFunc resolves one pixel using the given sampler
type PixelFunc func(job PixelJob, sampler core.Sampler) core.Vec3

// SeedFunc returns the seed a worker uses for a job
type SeedFunc func(job PixelJob) int64

// WorkerPool manages parallel pixel rendering
type WorkerPool struct {
	jobQueue    chan PixelJob
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// Worker owns a sampler and handles individual pixel jobs
type Worker struct {
	ID          int
	sampler     *core.RandomSampler
	render      PixelFunc
	seed        SeedFunc
	jobQueue    chan PixelJob
	resultQueue chan PixelResult
	logger      core.Logger
}

// NewWorkerPool creates a pool whose job and result queues each hold
// queueSize entries. Submitting more jobs than that blocks until results are
// being consumed.
func NewWorkerPool(queueSize, numWorkers int, render PixelFunc, seed SeedFunc, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	wp := &WorkerPool{
		jobQueue:    make(chan PixelJob, queueSize),
		resultQueue: make(chan PixelResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			sampler:     core.NewSeededSampler(int64(i)),
			render:      render,
			seed:        seed,
			jobQueue:    wp.jobQueue,
			resultQueue: wp.resultQueue,
			logger:      logger,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the job queue, waits for the workers to drain it and closes
// the result queue. It is safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.jobQueue)
		wp.wg.Wait()
		close(wp.resultQueue)
	})
}

// Wait blocks until every worker has exited
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// SubmitJob submits a pixel job to the worker pool
func (wp *WorkerPool) SubmitJob(job PixelJob) {
	wp.jobQueue <- job
}

// GetResult retrieves a completed pixel; false means the pool has stopped
// and every result has been consumed
func (wp *WorkerPool) GetResult() (PixelResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	w.logger.Debugf("worker %d started", w.ID)
	processed := 0
	for job := range w.jobQueue {
		w.resultQueue <- w.process(job)
		processed++
	}
	w.logger.Debugf("worker %d stopped after %d pixels", w.ID, processed)
}

// process renders one pixel, turning a panic into a marked failure
func (w *Worker) process(job PixelJob) (result PixelResult) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warningf("worker %d: pixel (%d, %d) failed: %v", w.ID, job.X, job.Y, r)
			result = PixelResult{X: job.X, Y: job.Y, Color: FailedPixelColor, Failed: true}
		}
	}()

	if w.seed != nil {
		w.sampler.Reseed(w.seed(job))
	}
	return PixelResult{X: job.X, Y: job.Y, Color: w.render(job, w.sampler)}
}
