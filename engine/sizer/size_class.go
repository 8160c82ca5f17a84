package sizer

import "fmt"

// SizeClass is the discrete on-screen size bucket of an object.
// Classes are ordered: Small < Medium < Large.
type SizeClass int

const (
	// Small objects span at most Thresholds.Medium pixels in their smaller screen dimension.
	Small SizeClass = iota
	// Medium objects span more than Thresholds.Medium and at most Thresholds.Large pixels.
	Medium
	// Large objects span more than Thresholds.Large pixels.
	Large
)

// SizeClasses lists every class from smallest to largest.
var SizeClasses = [...]SizeClass{Small, Medium, Large}

func (c SizeClass) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("SizeClass(%d)", int(c))
	}
}

// Thresholds are the pixel boundaries between size classes, compared against
// the smaller dimension of an object's screen rectangle. Both comparisons are strict.
type Thresholds struct {
	// Large is the min-dimension above which an object is Large.
	Large float32
	// Medium is the min-dimension above which an object is Medium.
	Medium float32
}

var (
	// DefaultThresholds classify above 10 px as Large and above 5 px as Medium.
	DefaultThresholds = Thresholds{Large: 10, Medium: 5}

	// StrictThresholds classify above 20 px as Large and above 10 px as Medium.
	StrictThresholds = Thresholds{Large: 20, Medium: 10}
)

// Validate checks that both thresholds are non-negative and Large >= Medium.
// NaN thresholds are invalid.
//
// Returns:
//   - error: ErrInvalidThresholds wrapped with the offending values, or nil
func (t Thresholds) Validate() error {
	if !(t.Medium >= 0 && t.Large >= t.Medium) {
		return fmt.Errorf("%w: large=%v medium=%v", ErrInvalidThresholds, t.Large, t.Medium)
	}
	return nil
}

// Classify buckets a min-dimension in pixels.
//
// Parameters:
//   - minDimension: the smaller side of the screen rectangle in pixels
//
// Returns:
//   - SizeClass: Large, Medium or Small
func (t Thresholds) Classify(minDimension float32) SizeClass {
	switch {
	case minDimension > t.Large:
		return Large
	case minDimension > t.Medium:
		return Medium
	default:
		return Small
	}
}
