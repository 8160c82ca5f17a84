// Package transform provides local-to-world transforms for sized objects.
package transform

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-lod/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform exposes a local-to-world affine matrix.
// Consumers treat it as read-only for the duration of a call.
type Transform interface {
	// Matrix returns the current column-major local-to-world matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the transform matrix
	Matrix() mgl32.Mat4
}

// Matrix is a fixed Transform backed by a precomposed matrix.
type Matrix mgl32.Mat4

var _ Transform = Matrix{}

// Identity returns a Transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix(mgl32.Ident4())
}

// Matrix returns m as an mgl32.Mat4.
func (m Matrix) Matrix() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// TRS is a mutable Transform composed from position, Euler rotation and scale.
type TRS interface {
	Transform

	// Position returns the translation in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the Euler rotation angles in radians.
	//
	// Returns:
	//   - mgl32.Vec3: rotation around x, y and z
	Rotation() mgl32.Vec3

	// Scale returns the scale factors along each axis.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// SetPosition sets the translation and recomputes the matrix.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation and recomputes the matrix.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// SetScale sets the scale and recomputes the matrix.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)
}

type trs struct {
	mu *sync.RWMutex

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	matrix   mgl32.Mat4
}

var _ TRS = &trs{}

// NewTRS creates a TRS transform at the origin with unit scale and no rotation.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - TRS: the newly created transform
func NewTRS(options ...TRSBuilderOption) TRS {
	t := &trs{
		mu:    &sync.RWMutex{},
		scale: mgl32.Vec3{1, 1, 1},
	}
	for _, option := range options {
		option(t)
	}
	t.rebuild()
	return t
}

func (t *trs) Matrix() mgl32.Mat4 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.matrix
}

func (t *trs) Position() mgl32.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.position
}

func (t *trs) Rotation() mgl32.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rotation
}

func (t *trs) Scale() mgl32.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scale
}

func (t *trs) SetPosition(x, y, z float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = mgl32.Vec3{x, y, z}
	t.rebuild()
}

func (t *trs) SetRotation(rx, ry, rz float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rotation = mgl32.Vec3{rx, ry, rz}
	t.rebuild()
}

func (t *trs) SetScale(sx, sy, sz float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale = mgl32.Vec3{sx, sy, sz}
	t.rebuild()
}

// rebuild recomputes the cached matrix. Caller must hold the write lock.
func (t *trs) rebuild() {
	t.matrix = common.BuildModelMatrix(t.position, t.rotation, t.scale)
}
