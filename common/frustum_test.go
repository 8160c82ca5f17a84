package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrustum() Frustum {
	view := LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	proj := Perspective(mgl32.DegToRad(90), 1, 1, 100)
	return ExtractFrustumFromMatrix(proj.Mul4(view))
}

func TestExtractFrustumPlanesAreNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		assert.InDelta(t, 1, p.Normal.Len(), 1e-5, "plane %d", i)
	}

	near := f.Planes[FrustumNear]
	require.InDelta(t, -1, near.Normal.Z(), 1e-5)
	assert.InDelta(t, -1, near.Distance, 1e-4)

	far := f.Planes[FrustumFar]
	require.InDelta(t, 1, far.Normal.Z(), 1e-5)
	assert.InDelta(t, 100, far.Distance, 1e-2)
}

func TestIntersectsAABB(t *testing.T) {
	f := testFrustum()
	unit := func(c mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
		h := mgl32.Vec3{0.5, 0.5, 0.5}
		return c.Sub(h), c.Add(h)
	}

	tests := []struct {
		name   string
		center mgl32.Vec3
		want   bool
	}{
		{"in front", mgl32.Vec3{0, 0, -10}, true},
		{"behind", mgl32.Vec3{0, 0, 10}, false},
		{"beyond far", mgl32.Vec3{0, 0, -200}, false},
		{"straddles near", mgl32.Vec3{0, 0, -1}, true},
		{"far left", mgl32.Vec3{-50, 0, -10}, false},
		{"above", mgl32.Vec3{0, 50, -10}, false},
		{"touches right edge", mgl32.Vec3{10.4, 0, -10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minP, maxP := unit(tt.center)
			assert.Equal(t, tt.want, f.IntersectsAABB(minP, maxP))
		})
	}
}
