package sizer

import (
	"github.com/Carmen-Shannon/oxy-lod/engine/bounds"
	"github.com/Carmen-Shannon/oxy-lod/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// worldCorners maps the box corners into world space, keeping the box's corner order.
// The basis columns and translation are read once and applied as
// c0*x + c1*y + c2*z + t, which equals model * (c, 1) for an affine model matrix
// and keeps any scale or shear.
func worldCorners(box bounds.Box, model mgl32.Mat4) [bounds.CornerCount]mgl32.Vec3 {
	c0 := model.Col(0).Vec3()
	c1 := model.Col(1).Vec3()
	c2 := model.Col(2).Vec3()
	t := model.Col(3).Vec3()

	corners := box.Corners()
	for i, c := range corners {
		corners[i] = c0.Mul(c[0]).Add(c1.Mul(c[1])).Add(c2.Mul(c[2])).Add(t)
	}
	return corners
}

// modelMatrix returns the transform's matrix, treating nil as the identity.
func modelMatrix(tf transform.Transform) mgl32.Mat4 {
	if tf == nil {
		return mgl32.Ident4()
	}
	return tf.Matrix()
}

// ndc performs the perspective divide of world point p through viewProj.
// A zero w yields the origin instead of a division by zero.
func ndc(viewProj mgl32.Mat4, p mgl32.Vec3) mgl32.Vec2 {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip[3] == 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{clip[0] / clip[3], clip[1] / clip[3]}
}

// screen maps world point p to pixel coordinates with row 0 at the top.
// There is no w guard: a point on the eye plane yields ±Inf or NaN, which
// callers must filter.
func screen(viewProj mgl32.Mat4, p mgl32.Vec3, width, height float32) mgl32.Vec2 {
	clip := viewProj.Mul4x1(p.Vec4(1))
	nx := clip[0] / clip[3]
	ny := clip[1] / clip[3]
	return mgl32.Vec2{
		(nx*0.5 + 0.5) * width,
		(1 - (ny*0.5 + 0.5)) * height,
	}
}
