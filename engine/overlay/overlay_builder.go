package overlay

import "github.com/cogentcore/webgpu/wgpu"

// OverlayBuilderOption is a functional option for configuring an Overlay during construction.
type OverlayBuilderOption func(*overlay)

// WithMaxQuads sets how many quads a single Draw can hold. Non-positive values are ignored.
//
// Parameters:
//   - n: the quad capacity
//
// Returns:
//   - OverlayBuilderOption: functional option to set the capacity
func WithMaxQuads(n int) OverlayBuilderOption {
	return func(o *overlay) {
		if n > 0 {
			o.maxQuads = n
		}
	}
}

// WithClearColor sets the background color drawn behind the quads.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - OverlayBuilderOption: functional option to set the clear color
func WithClearColor(c wgpu.Color) OverlayBuilderOption {
	return func(o *overlay) {
		o.clearColor = c
	}
}

// WithForceFallbackAdapter requests a software adapter.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - OverlayBuilderOption: functional option to force the fallback adapter
func WithForceFallbackAdapter(force bool) OverlayBuilderOption {
	return func(o *overlay) {
		o.forceFallbackAdapter = force
	}
}
