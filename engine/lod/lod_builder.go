package lod

import "github.com/Carmen-Shannon/oxy-lod/engine/sizer"

// EvaluatorBuilderOption is a functional option for configuring an Evaluator during construction.
type EvaluatorBuilderOption func(*evaluator)

// WithWorkers sets the worker pool size. Zero or negative selects NumCPU-1.
//
// Parameters:
//   - n: the number of workers
//
// Returns:
//   - EvaluatorBuilderOption: functional option to set the worker count
func WithWorkers(n int) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.workers = n
	}
}

// WithQueueSize sets the pool's task queue capacity.
//
// Parameters:
//   - n: the queue capacity
//
// Returns:
//   - EvaluatorBuilderOption: functional option to set the queue size
func WithQueueSize(n int) EvaluatorBuilderOption {
	return func(e *evaluator) {
		if n > 0 {
			e.queueSize = n
		}
	}
}

// WithCulling toggles frustum visibility tests. Enabled by default.
//
// Parameters:
//   - enabled: whether objects outside the frustum skip projection
//
// Returns:
//   - EvaluatorBuilderOption: functional option to toggle culling
func WithCulling(enabled bool) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.culling = enabled
	}
}

// WithVerbose logs per-frame class counts.
//
// Parameters:
//   - verbose: whether to log each Evaluate call
//
// Returns:
//   - EvaluatorBuilderOption: functional option to toggle logging
func WithVerbose(verbose bool) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.verbose = verbose
	}
}

// WithSizerOptions forwards options to the underlying sizer.
//
// Parameters:
//   - options: sizer options such as sizer.WithThresholds
//
// Returns:
//   - EvaluatorBuilderOption: functional option to configure the sizer
func WithSizerOptions(options ...sizer.SizerBuilderOption) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.sizerOpts = append(e.sizerOpts, options...)
	}
}
