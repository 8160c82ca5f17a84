package sizer

import (
	"github.com/Carmen-Shannon/oxy-lod/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ScreenRect is a 2D axis-aligned rectangle in pixel or NDC space.
// The zero value is empty: no point has been folded into it.
type ScreenRect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2

	valid bool
}

// Empty reports whether no point contributed to the rectangle.
func (r ScreenRect) Empty() bool {
	return !r.valid
}

// Width returns max.x - min.x, never negative.
func (r ScreenRect) Width() float32 {
	return max(0, r.Max[0]-r.Min[0])
}

// Height returns max.y - min.y, never negative.
func (r ScreenRect) Height() float32 {
	return max(0, r.Max[1]-r.Min[1])
}

// Area returns Width * Height.
func (r ScreenRect) Area() float32 {
	return r.Width() * r.Height()
}

// MinDimension returns the smaller of Width and Height.
func (r ScreenRect) MinDimension() float32 {
	return min(r.Width(), r.Height())
}

// MaxDimension returns the larger of Width and Height.
func (r ScreenRect) MaxDimension() float32 {
	return max(r.Width(), r.Height())
}

// Center returns the midpoint of the rectangle.
func (r ScreenRect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// extend folds p into the rectangle.
func (r *ScreenRect) extend(p mgl32.Vec2) {
	if !r.valid {
		r.Min, r.Max = p, p
		r.valid = true
		return
	}
	r.Min[0] = min(r.Min[0], p[0])
	r.Min[1] = min(r.Min[1], p[1])
	r.Max[0] = max(r.Max[0], p[0])
	r.Max[1] = max(r.Max[1], p[1])
}

// clamped returns the rectangle with both corners clamped into [lo, hi].
// An empty rectangle stays empty.
func (r ScreenRect) clamped(lo, hi mgl32.Vec2) ScreenRect {
	if !r.valid {
		return r
	}
	r.Min = clampPoint(r.Min, lo, hi)
	r.Max = clampPoint(r.Max, lo, hi)
	return r
}

func clampPoint(p, lo, hi mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		common.Clamp(p[0], lo[0], hi[0]),
		common.Clamp(p[1], lo[1], hi[1]),
	}
}
