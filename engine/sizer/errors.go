package sizer

import "errors"

var (
	// ErrNilCamera is returned by New when no camera is supplied.
	ErrNilCamera = errors.New("sizer: camera is nil")

	// ErrInvalidViewport is returned when the viewport has a non-positive width or height.
	ErrInvalidViewport = errors.New("sizer: viewport dimensions must be positive")

	// ErrInvalidThresholds is returned when size thresholds are negative or out of order.
	ErrInvalidThresholds = errors.New("sizer: invalid size thresholds")

	// ErrEmptyObject is returned by ScreenSpaceQuad when the object has no points.
	ErrEmptyObject = errors.New("sizer: object has no points")

	// ErrNoFiniteCorners is returned by ScreenSpaceQuad when every projected
	// corner was non-finite, so no rectangle could be formed.
	ErrNoFiniteCorners = errors.New("sizer: no corner projected to a finite position")
)
