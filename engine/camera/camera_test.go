package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, c.Target())
	assert.InDelta(t, 0.1, c.Near(), 1e-7)
	assert.InDelta(t, 100, c.Far(), 1e-7)
	assert.InDelta(t, 1, c.Aspect(), 1e-7)
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 0), WithTarget(0, 0, -1))
	assert.True(t, c.ViewMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestProjectionMatchesGLOnXY(t *testing.T) {
	fov := mgl32.DegToRad(60)
	c := NewCamera(WithFov(fov), WithAspect(16.0/9.0), WithNear(0.1), WithFar(1000))

	gl := mgl32.Perspective(fov, 16.0/9.0, 0.1, 1000)
	p := c.ProjectionMatrix()
	assert.InDelta(t, gl.At(0, 0), p.At(0, 0), 1e-5)
	assert.InDelta(t, gl.At(1, 1), p.At(1, 1), 1e-5)
	assert.Equal(t, float32(-1), p.At(3, 2))
}

func TestDepthRangeIsZeroToOne(t *testing.T) {
	c := NewCamera(WithNear(1), WithFar(10))
	vp := c.ViewProjectionMatrix()

	near := vp.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := vp.Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	assert.InDelta(t, 0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)
}

func TestSettersRecomputeMatrices(t *testing.T) {
	c := NewCamera()
	before := c.ViewProjectionMatrix()

	c.SetPosition(0, 0, 5)
	c.SetTarget(0, 0, 0)
	assert.NotEqual(t, before, c.ViewProjectionMatrix())
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Position())

	c.SetAspect(2)
	assert.InDelta(t, c.ProjectionMatrix().At(1, 1)/2, c.ProjectionMatrix().At(0, 0), 1e-6)
}

func TestEyeAtTargetStaysFinite(t *testing.T) {
	c := NewCamera(WithPosition(1, 1, 1), WithTarget(1, 1, 1))
	for _, v := range c.ViewMatrix() {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestFrustumContainsPointInFront(t *testing.T) {
	c := NewCamera(WithFov(mgl32.DegToRad(60)), WithFar(1000))
	f := c.Frustum()

	assert.True(t, f.IntersectsAABB(mgl32.Vec3{-0.5, -0.5, -5.5}, mgl32.Vec3{0.5, 0.5, -4.5}))
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{-0.5, -0.5, 4.5}, mgl32.Vec3{0.5, 0.5, 5.5}))
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{-0.5, -0.5, -2000}, mgl32.Vec3{0.5, 0.5, -1500}))
}
