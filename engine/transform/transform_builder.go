package transform

import "github.com/go-gl/mathgl/mgl32"

// TRSBuilderOption is a functional option for configuring a TRS transform during construction.
type TRSBuilderOption func(*trs)

// WithPosition sets the initial translation.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - TRSBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) TRSBuilderOption {
	return func(t *trs) {
		t.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles around each axis
//
// Returns:
//   - TRSBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) TRSBuilderOption {
	return func(t *trs) {
		t.rotation = mgl32.Vec3{rx, ry, rz}
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - sx, sy, sz: scale factors along each axis
//
// Returns:
//   - TRSBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) TRSBuilderOption {
	return func(t *trs) {
		t.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithUniformScale sets the same scale factor on all three axes.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - TRSBuilderOption: functional option to set the scale
func WithUniformScale(s float32) TRSBuilderOption {
	return WithScale(s, s, s)
}
