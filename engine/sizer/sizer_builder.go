package sizer

import (
	"github.com/Carmen-Shannon/oxy-lod/engine/profiler"
)

// SizerBuilderOption is a functional option for configuring a Sizer during construction.
type SizerBuilderOption func(*sizer)

// WithThresholds sets the pixel boundaries between size classes.
// New rejects negative or out-of-order values.
//
// Parameters:
//   - large: min-dimension above which an object is Large
//   - medium: min-dimension above which an object is Medium
//
// Returns:
//   - SizerBuilderOption: functional option to set the thresholds
func WithThresholds(large, medium float32) SizerBuilderOption {
	return func(s *sizer) {
		s.cfg.Thresholds = Thresholds{Large: large, Medium: medium}
	}
}

// WithClampOrder selects when pixel-space corners are clamped to the viewport.
//
// Parameters:
//   - order: ClampAfterReduce (default) or ClampPerCorner
//
// Returns:
//   - SizerBuilderOption: functional option to set the clamp order
func WithClampOrder(order ClampOrder) SizerBuilderOption {
	return func(s *sizer) {
		s.cfg.ClampOrder = order
	}
}

// WithConfig replaces the whole policy at once.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - SizerBuilderOption: functional option to set the configuration
func WithConfig(cfg Config) SizerBuilderOption {
	return func(s *sizer) {
		s.cfg = cfg
	}
}

// WithTracer attaches an observer that is notified around each sizing
// operation. A nil tracer is ignored.
//
// Parameters:
//   - tracer: the observer, e.g. a *profiler.Profiler
//
// Returns:
//   - SizerBuilderOption: functional option to set the tracer
func WithTracer(tracer profiler.Tracer) SizerBuilderOption {
	return func(s *sizer) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}
