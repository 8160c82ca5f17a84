package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -100, 1})

	assert.InDelta(t, 0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)
}

func TestPerspectiveMatchesGLOnXY(t *testing.T) {
	fov, aspect := mgl32.DegToRad(75), float32(1.5)
	ours := Perspective(fov, aspect, 0.5, 50)
	gl := mgl32.Perspective(fov, aspect, 0.5, 50)

	for _, i := range []int{0, 5, 11} {
		assert.InDelta(t, gl[i], ours[i], 1e-5, "element %d", i)
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := mgl32.Vec3{3, 2, 5}
	center := mgl32.Vec3{0, 0.5, -1}
	up := mgl32.Vec3{0, 1, 0}

	assert.True(t, LookAt(eye, center, up).ApproxEqualThreshold(mgl32.LookAtV(eye, center, up), 1e-5))
}

func TestLookAtEyeAtCenterIsFinite(t *testing.T) {
	view := LookAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0})
	for i, v := range view {
		assert.True(t, IsFinite(v), "element %d is %v", i, v)
	}
}

func TestBuildModelMatrixOrder(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 3}
	rot := mgl32.Vec3{0.1, 0.2, 0.3}
	scale := mgl32.Vec3{2, 3, 4}

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DY(0.2)).
		Mul4(mgl32.HomogRotate3DX(0.1)).
		Mul4(mgl32.HomogRotate3DZ(0.3)).
		Mul4(mgl32.Scale3D(2, 3, 4))
	assert.Equal(t, want, BuildModelMatrix(pos, rot, scale))

	p := BuildModelMatrix(pos, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, p)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-3.5))
	assert.False(t, IsFinite(float32(math.NaN())))
	assert.False(t, IsFinite(float32(math.Inf(-1))))

	assert.True(t, IsFinite2(mgl32.Vec2{1, 2}))
	assert.False(t, IsFinite2(mgl32.Vec2{1, float32(math.Inf(1))}))
}
