// Package lod classifies batches of objects into size classes once per frame,
// fanning the sizer calls out over a reusable worker pool.
package lod

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-lod/common"
	"github.com/Carmen-Shannon/oxy-lod/engine/bounds"
	"github.com/Carmen-Shannon/oxy-lod/engine/sizer"
	"github.com/Carmen-Shannon/oxy-lod/engine/transform"
	"github.com/Carmen-Shannon/oxy-lod/engine/viewport"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is what the evaluator needs from a camera: the matrices the sizer
// reads plus the frustum for visibility. camera.Camera satisfies it.
type Camera interface {
	sizer.Camera

	// Frustum returns the world-space view frustum.
	Frustum() common.Frustum
}

// Object is one entry of a batch: a local-space box placed by a transform.
type Object struct {
	ID        uint64
	Bounds    bounds.Box
	Transform transform.Transform
}

// NewObject builds an Object whose bounds enclose points.
//
// Parameters:
//   - id: caller-chosen identifier, echoed in the Result
//   - points: local-space points
//   - tf: local-to-world transform, nil for identity
//
// Returns:
//   - Object: the batch entry
func NewObject(id uint64, points []mgl32.Vec3, tf transform.Transform) Object {
	return Object{ID: id, Bounds: bounds.FromPoints(points), Transform: tf}
}

// Result is the classification of a single Object.
type Result struct {
	ID uint64

	// Size is the size class. Objects outside the frustum are Small.
	Size sizer.SizeClass

	// SubPixel is true when the object spans less than a pixel in some direction.
	SubPixel bool

	// Visible is false when the object's world bounds lie entirely outside the frustum.
	Visible bool

	// Rect is the clipped pixel rectangle, empty for culled objects.
	Rect sizer.ScreenRect
}

// Report is the outcome of one Evaluate call.
type Report struct {
	// Results holds one entry per input object, in input order.
	Results []Result

	// Counts is indexed by SizeClass and includes culled objects as Small.
	Counts [len(sizer.SizeClasses)]int

	// Culled is the number of objects outside the frustum.
	Culled int

	// Elapsed is the wall time of the evaluation.
	Elapsed time.Duration
}

// Count returns how many objects fell into class.
func (r Report) Count(class sizer.SizeClass) int {
	if class < 0 || int(class) >= len(r.Counts) {
		return 0
	}
	return r.Counts[class]
}

// Evaluator classifies batches of objects against one camera and viewport.
type Evaluator interface {
	// Evaluate classifies every object. Blocks until the batch is done.
	// A closed evaluator logs and returns an empty Report.
	//
	// Parameters:
	//   - objects: the batch
	//
	// Returns:
	//   - Report: per-object results in input order and per-class counts
	Evaluate(objects []Object) Report

	// Sizer returns the sizer used for each object.
	//
	// Returns:
	//   - sizer.Sizer: the underlying sizer
	Sizer() sizer.Sizer

	// Close stops the worker pool. Later Evaluate calls return an empty Report.
	Close()
}

type evaluator struct {
	cam    Camera
	sz     sizer.Sizer
	closed bool
	mu     sync.Mutex

	pool       worker.DynamicWorkerPool
	workers    int
	queueSize  int
	culling    bool
	verbose    bool
	sizerOpts  []sizer.SizerBuilderOption
	frameCount uint64
}

var _ Evaluator = &evaluator{}

// NewEvaluator creates an Evaluator and starts its worker pool.
//
// Parameters:
//   - cam: the camera to evaluate against
//   - vp: the live viewport
//   - options: functional options to configure the evaluator
//
// Returns:
//   - Evaluator: the new evaluator
//   - error: any error from creating the underlying sizer
func NewEvaluator(cam Camera, vp viewport.Viewport, options ...EvaluatorBuilderOption) (Evaluator, error) {
	e := &evaluator{
		cam:       cam,
		culling:   true,
		queueSize: 256,
	}
	for _, option := range options {
		option(e)
	}

	if cam == nil {
		return nil, sizer.ErrNilCamera
	}
	sz, err := sizer.New(cam, vp, e.sizerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create lod evaluator: %w", err)
	}
	e.sz = sz

	e.workers = common.Coalesce(max(e.workers, 0), max(runtime.NumCPU()-1, 1))
	e.pool = worker.NewDynamicWorkerPool(e.workers, e.queueSize, 1*time.Second)
	return e, nil
}

func (e *evaluator) Sizer() sizer.Sizer {
	return e.sz
}

func (e *evaluator) Evaluate(objects []Object) Report {
	start := time.Now()
	report := Report{Results: make([]Result, len(objects))}
	if len(objects) == 0 {
		return report
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		log.Printf("[LOD] Evaluate called on a closed Evaluator, skipping %d objects", len(objects))
		return Report{}
	}

	var frustum *common.Frustum
	if e.culling {
		f := e.cam.Frustum()
		frustum = &f
	}

	// One task per chunk keeps the queue short for large batches.
	// The WaitGroup is the per-frame barrier; pool.Wait() would block until idle-exit.
	chunk := (len(objects) + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	taskID := 0
	for lo := 0; lo < len(objects); lo += chunk {
		hi := min(lo+chunk, len(objects))
		wg.Add(1)
		e.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					report.Results[i] = e.evaluate(objects[i], frustum)
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	for _, r := range report.Results {
		report.Counts[r.Size]++
		if !r.Visible {
			report.Culled++
		}
	}
	report.Elapsed = time.Since(start)

	e.frameCount++
	if e.verbose {
		log.Printf("[LOD] frame %d: %d objects | large: %d | medium: %d | small: %d | culled: %d | %s",
			e.frameCount, len(objects),
			report.Counts[sizer.Large], report.Counts[sizer.Medium], report.Counts[sizer.Small],
			report.Culled, report.Elapsed)
	}
	return report
}

func (e *evaluator) evaluate(obj Object, frustum *common.Frustum) Result {
	res := Result{ID: obj.ID, Size: sizer.Small, Visible: true}
	if obj.Bounds.Empty() {
		res.SubPixel = true
		return res
	}

	if frustum != nil {
		corners := e.sz.WorldCorners(obj.Bounds, obj.Transform)
		world := bounds.FromPoints(corners[:])
		if !frustum.IntersectsAABB(world.Min, world.Max) {
			res.Visible = false
			res.SubPixel = true
			return res
		}
	}

	res.Rect = e.sz.PixelRect(obj.Bounds, obj.Transform)
	res.Size = e.sz.Config().Thresholds.Classify(res.Rect.MinDimension())
	res.SubPixel = res.Rect.MinDimension() < sizer.PixelThreshold
	return res
}

func (e *evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.pool.Stop()
	log.Printf("[LOD] Evaluator closed after %d frames", e.frameCount)
}
