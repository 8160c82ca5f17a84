// Package bounds provides the axis-aligned bounding box used as the input volume
// for screen-space sizing.
package bounds

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CornerCount is the number of corners of an axis-aligned box.
const CornerCount = 8

// Box is an axis-aligned bounding box in some local coordinate frame.
// The zero value is an empty box: it encloses no points and has no corners
// worth projecting.
type Box struct {
	// Min is the minimum corner. Only meaningful when the box is not empty.
	Min mgl32.Vec3

	// Max is the maximum corner. Only meaningful when the box is not empty.
	Max mgl32.Vec3

	valid bool
}

// New creates a box from two opposite corners. The corners may be given in any
// order; each axis is sorted independently.
//
// Parameters:
//   - a: one corner of the box
//   - b: the opposite corner of the box
//
// Returns:
//   - Box: the non-empty box spanning a and b
func New(a, b mgl32.Vec3) Box {
	var box Box
	box.Extend(a)
	box.Extend(b)
	return box
}

// FromPoints creates the tightest box enclosing all points.
// An empty or nil slice yields an empty box.
//
// Parameters:
//   - points: the point set to enclose
//
// Returns:
//   - Box: the enclosing box, empty when points is empty
func FromPoints(points []mgl32.Vec3) Box {
	var box Box
	for _, p := range points {
		box.Extend(p)
	}
	return box
}

// Empty reports whether the box encloses no points.
func (b Box) Empty() bool {
	return !b.valid
}

// Extend grows the box to include p.
//
// Parameters:
//   - p: the point to include
func (b *Box) Extend(p mgl32.Vec3) {
	if !b.valid {
		b.Min, b.Max = p, p
		b.valid = true
		return
	}
	for axis := range 3 {
		b.Min[axis] = min(b.Min[axis], p[axis])
		b.Max[axis] = max(b.Max[axis], p[axis])
	}
}

// Center returns the midpoint of the box, or the origin for an empty box.
func (b Box) Center() mgl32.Vec3 {
	if !b.valid {
		return mgl32.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis, or zero for an empty box.
func (b Box) Size() mgl32.Vec3 {
	if !b.valid {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of the box. Bit 0 of the index selects the
// max x, bit 1 the max y and bit 2 the max z, so index 0 is Min and index 7 is
// Max. Callers that visualise corners rely on this order.
//
// Returns:
//   - [CornerCount]mgl32.Vec3: the box corners, all zero for an empty box
func (b Box) Corners() [CornerCount]mgl32.Vec3 {
	var corners [CornerCount]mgl32.Vec3
	if !b.valid {
		return corners
	}
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		corners[i] = c
	}
	return corners
}
