// Package viewport describes the pixel dimensions screen-space sizing is measured against.
package viewport

import (
	"sync/atomic"
)

// Viewport reports the current pixel dimensions of a render target.
// Implementations are read on every sizing call, so a resize between calls is
// observed by the next call. window.Window satisfies this interface.
type Viewport interface {
	// Width returns the current width in pixels.
	Width() int

	// Height returns the current height in pixels.
	Height() int
}

// Resizable is a Viewport whose dimensions can be changed at any time from any goroutine.
type Resizable struct {
	width  atomic.Int64
	height atomic.Int64
}

var _ Viewport = &Resizable{}

// NewResizable creates a Resizable viewport with the given dimensions.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - *Resizable: the new viewport
func NewResizable(width, height int) *Resizable {
	v := &Resizable{}
	v.Resize(width, height)
	return v
}

func (v *Resizable) Width() int {
	return int(v.width.Load())
}

func (v *Resizable) Height() int {
	return int(v.height.Load())
}

// Resize updates both dimensions. Matches the window resize callback signature
// so it can be passed to Window.SetResizeCallback directly.
//
// Parameters:
//   - width: new width in pixels
//   - height: new height in pixels
func (v *Resizable) Resize(width, height int) {
	v.width.Store(int64(width))
	v.height.Store(int64(height))
}

// Fixed is an immutable Viewport.
type Fixed struct {
	W, H int
}

var _ Viewport = Fixed{}

func (f Fixed) Width() int {
	return f.W
}

func (f Fixed) Height() int {
	return f.H
}

// Valid reports whether v has strictly positive dimensions.
//
// Parameters:
//   - v: the viewport to check
//
// Returns:
//   - bool: true when both width and height are > 0
func Valid(v Viewport) bool {
	return v != nil && v.Width() > 0 && v.Height() > 0
}

// Aspect returns width / height, or 0 when the viewport is not Valid.
//
// Parameters:
//   - v: the viewport
//
// Returns:
//   - float32: the aspect ratio
func Aspect(v Viewport) float32 {
	if !Valid(v) {
		return 0
	}
	return float32(v.Width()) / float32(v.Height())
}
