package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// RowTask is a single image row to render
type RowTask struct {
	Row  int
	Seed int64 // Seed for the row's private random stream
}

// RowResult carries the linear radiance of one finished row
type RowResult struct {
	Row      int
	Radiance []core.Vec3
	Stats    RenderStats
}

// WorkerPool renders rows in parallel. Each row is rendered by exactly one
// worker with its own sampler, so the scene is the only shared state.
type WorkerPool struct {
	camera      *Camera
	world       geometry.Shape
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines rendering world through camera
func NewWorkerPool(camera *Camera, world geometry.Shape, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{
		camera:      camera,
		world:       world,
		taskQueue:   make(chan RowTask, numWorkers),
		resultQueue: make(chan RowResult, camera.height),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// SubmitTask queues a row; it blocks while every worker is busy and the queue is full
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// SubmitTaskContext queues a row unless ctx is cancelled first
func (wp *WorkerPool) SubmitTaskContext(ctx context.Context, task RowTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.taskQueue <- task:
		return nil
	}
}

// Stop closes the task queue, waits for in-flight rows and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of finished rows; it is closed by Stop
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		var stats RenderStats
		sampler := core.NewSeededSampler(task.Seed)
		t := newTracer(wp.world, wp.camera.config.MinHitDistance, sampler, &stats)

		radiance := make([]core.Vec3, wp.camera.width)
		t.renderRow(wp.camera, task.Row, radiance)

		wp.resultQueue <- RowResult{
			Row:      task.Row,
			Radiance: radiance,
			Stats:    stats,
		}
	}
}

// rowSeed derives the seed of a row from the render seed
func rowSeed(seed int64, row int) int64 {
	return seed*1_000_003 + int64(row)
}
