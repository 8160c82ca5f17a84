package lod

import (
	"bytes"
	"log"
	"testing"

	"github.com/Carmen-Shannon/oxy-lod/engine/bounds"
	"github.com/Carmen-Shannon/oxy-lod/engine/camera"
	"github.com/Carmen-Shannon/oxy-lod/engine/mesh"
	"github.com/Carmen-Shannon/oxy-lod/engine/sizer"
	"github.com/Carmen-Shannon/oxy-lod/engine/transform"
	"github.com/Carmen-Shannon/oxy-lod/engine/viewport"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() camera.Camera {
	return camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(60)),
		camera.WithAspect(1920.0/1080.0),
		camera.WithNear(0.1),
		camera.WithFar(1000),
	)
}

func newTestEvaluator(t *testing.T, options ...EvaluatorBuilderOption) Evaluator {
	t.Helper()
	e, err := NewEvaluator(newTestCamera(), viewport.NewResizable(1920, 1080), options...)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func cubeAt(id uint64, z float32) Object {
	return NewObject(id, mesh.UnitCube(), transform.NewTRS(transform.WithPosition(0, 0, z)))
}

func TestNewEvaluatorErrors(t *testing.T) {
	_, err := NewEvaluator(nil, viewport.Fixed{W: 10, H: 10})
	assert.ErrorIs(t, err, sizer.ErrNilCamera)

	_, err = NewEvaluator(newTestCamera(), viewport.Fixed{})
	assert.ErrorIs(t, err, sizer.ErrInvalidViewport)

	_, err = NewEvaluator(newTestCamera(), viewport.Fixed{W: 10, H: 10},
		WithSizerOptions(sizer.WithThresholds(1, 2)))
	assert.ErrorIs(t, err, sizer.ErrInvalidThresholds)
}

func TestEvaluateClassifiesInOrder(t *testing.T) {
	e := newTestEvaluator(t, WithWorkers(3))

	objects := []Object{
		cubeAt(10, -5),   // ~208 px
		cubeAt(11, -100), // ~9.4 px
		cubeAt(12, -500), // ~1.9 px
		cubeAt(13, 5),    // behind the camera
		cubeAt(14, -990), // under a pixel
	}
	report := e.Evaluate(objects)

	require.Len(t, report.Results, len(objects))
	for i, r := range report.Results {
		assert.Equal(t, objects[i].ID, r.ID)
	}

	assert.Equal(t, sizer.Large, report.Results[0].Size)
	assert.Equal(t, sizer.Medium, report.Results[1].Size)
	assert.Equal(t, sizer.Small, report.Results[2].Size)
	assert.False(t, report.Results[2].SubPixel)

	assert.False(t, report.Results[3].Visible)
	assert.Equal(t, sizer.Small, report.Results[3].Size)
	assert.True(t, report.Results[3].Rect.Empty())

	assert.True(t, report.Results[4].Visible)
	assert.True(t, report.Results[4].SubPixel)

	assert.Equal(t, 1, report.Count(sizer.Large))
	assert.Equal(t, 1, report.Count(sizer.Medium))
	assert.Equal(t, 3, report.Count(sizer.Small))
	assert.Equal(t, 1, report.Culled)
	assert.Equal(t, 0, report.Count(sizer.SizeClass(7)))
}

func TestEvaluateMatchesSizer(t *testing.T) {
	e := newTestEvaluator(t, WithWorkers(4), WithCulling(false))

	var objects []Object
	for i := range 200 {
		z := -2 - float32(i)*3
		objects = append(objects, Object{
			ID:        uint64(i),
			Bounds:    bounds.New(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}),
			Transform: transform.NewTRS(transform.WithPosition(float32(i%7)-3, 0, z)),
		})
	}

	report := e.Evaluate(objects)
	for i, r := range report.Results {
		assert.True(t, r.Visible)
		assert.Equal(t, e.Sizer().ScreenSize(objects[i].Bounds, objects[i].Transform), r.Size, "object %d", i)
		assert.Equal(t, e.Sizer().SmallerThanPixel(objects[i].Bounds, objects[i].Transform), r.SubPixel, "object %d", i)
	}
	assert.Equal(t, len(objects), report.Count(sizer.Small)+report.Count(sizer.Medium)+report.Count(sizer.Large))
}

func TestEvaluateRepeatedFrames(t *testing.T) {
	e := newTestEvaluator(t, WithWorkers(2), WithQueueSize(4))
	objects := []Object{cubeAt(1, -5), cubeAt(2, -50), cubeAt(3, -500)}

	first := e.Evaluate(objects)
	for range 10 {
		next := e.Evaluate(objects)
		assert.Equal(t, first.Results, next.Results)
	}
}

func TestEvaluateEmptyBatch(t *testing.T) {
	e := newTestEvaluator(t)
	report := e.Evaluate(nil)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.Culled)
}

func TestEvaluateEmptyBounds(t *testing.T) {
	e := newTestEvaluator(t)
	report := e.Evaluate([]Object{{ID: 9}})
	require.Len(t, report.Results, 1)
	assert.Equal(t, sizer.Small, report.Results[0].Size)
	assert.True(t, report.Results[0].SubPixel)
}

func TestEvaluateStrictThresholds(t *testing.T) {
	def := newTestEvaluator(t)
	strict := newTestEvaluator(t, WithSizerOptions(sizer.WithConfig(sizer.Config{Thresholds: sizer.StrictThresholds})))

	// ~15 px
	objects := []Object{cubeAt(1, -62.85)}
	assert.Equal(t, sizer.Large, def.Evaluate(objects).Results[0].Size)
	assert.Equal(t, sizer.Medium, strict.Evaluate(objects).Results[0].Size)
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	e := newTestEvaluator(t, WithVerbose(true))
	e.Evaluate([]Object{cubeAt(1, -5), cubeAt(2, 5)})

	assert.Contains(t, buf.String(), "[LOD] frame 1: 2 objects | large: 1 | medium: 0 | small: 1 | culled: 1")
}

func TestCloseIsIdempotent(t *testing.T) {
	e, err := NewEvaluator(newTestCamera(), viewport.Fixed{W: 100, H: 100})
	require.NoError(t, err)
	e.Close()
	e.Close()
}

func TestEvaluateAfterClose(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	e, err := NewEvaluator(newTestCamera(), viewport.Fixed{W: 100, H: 100})
	require.NoError(t, err)
	e.Close()

	var report Report
	assert.NotPanics(t, func() { report = e.Evaluate([]Object{cubeAt(1, -5), cubeAt(2, -50)}) })
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.Count(sizer.Large))
	assert.Contains(t, buf.String(), "[LOD] Evaluate called on a closed Evaluator, skipping 2 objects")
}
