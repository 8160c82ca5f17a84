// Package sizer measures how large an axis-aligned box appears on screen for a
// given camera and viewport, buckets that size into a SizeClass, and builds a
// screen-aligned proxy quad in aspect-corrected NDC.
//
// A Sizer keeps no per-call state. It reads the camera and viewport on every
// call, so camera moves and viewport resizes between calls are observed by the
// next call. Methods may run concurrently as long as the camera and viewport are
// not mutated concurrently in a way their own implementations do not guard.
package sizer

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-lod/common"
	"github.com/Carmen-Shannon/oxy-lod/engine/bounds"
	"github.com/Carmen-Shannon/oxy-lod/engine/mesh"
	"github.com/Carmen-Shannon/oxy-lod/engine/profiler"
	"github.com/Carmen-Shannon/oxy-lod/engine/transform"
	"github.com/Carmen-Shannon/oxy-lod/engine/viewport"
	"github.com/go-gl/mathgl/mgl32"
)

// PixelThreshold is the min-dimension below which an object is smaller than a pixel.
const PixelThreshold = 1.0

// quadIndices triangulates the BL, BR, TR, TL quad as BL-BR-TR and TR-TL-BL.
var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// Camera is the subset of camera.Camera the sizer reads.
type Camera interface {
	// ViewMatrix returns the world-to-view matrix.
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip matrix.
	ProjectionMatrix() mgl32.Mat4
}

// ClampOrder selects when projected corners are clipped to the viewport.
type ClampOrder int

const (
	// ClampAfterReduce drops non-finite corners, reduces the rest to a
	// rectangle and clamps the rectangle once.
	ClampAfterReduce ClampOrder = iota

	// ClampPerCorner drops non-finite corners and clamps each remaining corner
	// to the viewport before reduction. Gives the same rectangle as
	// ClampAfterReduce.
	ClampPerCorner
)

func (o ClampOrder) String() string {
	switch o {
	case ClampAfterReduce:
		return "after-reduce"
	case ClampPerCorner:
		return "per-corner"
	default:
		return fmt.Sprintf("ClampOrder(%d)", int(o))
	}
}

// Config is the tunable policy of a Sizer.
type Config struct {
	// Thresholds buckets pixel min-dimensions into size classes.
	Thresholds Thresholds

	// ClampOrder selects when pixel-space corners are clamped to the viewport.
	ClampOrder ClampOrder
}

// DefaultConfig returns DefaultThresholds with ClampAfterReduce.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds,
		ClampOrder: ClampAfterReduce,
	}
}

type sizer struct {
	cam    Camera
	vp     viewport.Viewport
	cfg    Config
	tracer profiler.Tracer
}

// Sizer computes screen-space size classes and proxy quads.
// A nil transform argument is treated as the identity.
type Sizer interface {
	// Config returns the sizer's policy.
	//
	// Returns:
	//   - Config: thresholds and clamp order
	Config() Config

	// WorldCorners maps the eight box corners to world space in the box's corner order.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - [bounds.CornerCount]mgl32.Vec3: the world-space corners
	WorldCorners(box bounds.Box, tf transform.Transform) [bounds.CornerCount]mgl32.Vec3

	// ProjectToNDC projects a world point to normalized device coordinates.
	// Returns the origin when the point lies on the camera's eye plane (clip w == 0).
	// The result may exceed [-1, 1] for off-screen points.
	//
	// Parameters:
	//   - p: the world-space point
	//
	// Returns:
	//   - mgl32.Vec2: the NDC x and y
	ProjectToNDC(p mgl32.Vec3) mgl32.Vec2

	// ProjectToScreen projects a world point to pixel coordinates, with (0, 0)
	// at the top-left of the viewport. Not guarded against clip w == 0, so the
	// result may be NaN or infinite.
	//
	// Parameters:
	//   - p: the world-space point
	//
	// Returns:
	//   - mgl32.Vec2: the pixel x and y
	ProjectToScreen(p mgl32.Vec3) mgl32.Vec2

	// PixelRect reduces the projected box corners to a pixel-space rectangle
	// clipped to the viewport. Empty for an empty box, an invalid viewport or
	// when no corner projects usefully.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - ScreenRect: the clipped pixel rectangle
	PixelRect(box bounds.Box, tf transform.Transform) ScreenRect

	// ScreenSize classifies the box by the smaller side of its PixelRect.
	// An empty box classifies as Small.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - SizeClass: the size bucket
	ScreenSize(box bounds.Box, tf transform.Transform) SizeClass

	// ScreenSizeOfPoints builds the box from points and classifies it.
	//
	// Parameters:
	//   - points: the local-space points
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - SizeClass: the size bucket, Small for no points
	ScreenSizeOfPoints(points []mgl32.Vec3, tf transform.Transform) SizeClass

	// SmallerThanPixel reports whether the smaller side of the PixelRect is
	// under one pixel. True for an empty box.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - bool: true when the object covers less than a pixel in some direction
	SmallerThanPixel(box bounds.Box, tf transform.Transform) bool

	// SmallerThanPixelPoints builds the box from points and applies SmallerThanPixel.
	//
	// Parameters:
	//   - points: the local-space points
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - bool: true when the object covers less than a pixel in some direction
	SmallerThanPixelPoints(points []mgl32.Vec3, tf transform.Transform) bool

	// ScreenPixelArea returns the area of the PixelRect in square pixels.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - float32: the covered area in pixels
	ScreenPixelArea(box bounds.Box, tf transform.Transform) float32

	// ScreenPixelAreaPercentage returns ScreenPixelArea as a percentage of the
	// viewport area. Zero when the viewport has no area.
	//
	// Parameters:
	//   - box: the local-space box
	//   - tf: the local-to-world transform
	//
	// Returns:
	//   - float32: the covered percentage in [0, 100]
	ScreenPixelAreaPercentage(box bounds.Box, tf transform.Transform) float32

	// ScreenSpaceQuad builds a screen-aligned quad covering the object's
	// projected bounds in aspect-corrected NDC (x in [-aspect, aspect],
	// y in [-1, 1], z = 0). Vertices are BL, BR, TR, TL with indices
	// {0, 1, 2, 2, 3, 0} and an identity transform.
	//
	// Parameters:
	//   - obj: the object exposing points and a transform, nil is ErrEmptyObject
	//
	// Returns:
	//   - mesh.IndexedVertexPositions: the quad, or the empty mesh on error
	//   - error: ErrEmptyObject, ErrInvalidViewport or ErrNoFiniteCorners
	ScreenSpaceQuad(obj mesh.PointSource) (mesh.IndexedVertexPositions, error)
}

var _ Sizer = &sizer{}

// New creates a Sizer bound to a camera and a live viewport.
// The camera and viewport are referenced, not copied.
//
// Parameters:
//   - cam: the camera supplying view and projection matrices
//   - vp: the viewport supplying pixel dimensions
//   - options: functional options to configure the sizer
//
// Returns:
//   - Sizer: the new sizer
//   - error: ErrNilCamera, ErrInvalidViewport or ErrInvalidThresholds
func New(cam Camera, vp viewport.Viewport, options ...SizerBuilderOption) (Sizer, error) {
	if cam == nil {
		return nil, ErrNilCamera
	}
	if !viewport.Valid(vp) {
		return nil, ErrInvalidViewport
	}

	s := &sizer{
		cam:    cam,
		vp:     vp,
		cfg:    DefaultConfig(),
		tracer: profiler.NopTracer{},
	}
	for _, option := range options {
		option(s)
	}

	if err := s.cfg.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create sizer: %w", err)
	}
	return s, nil
}

func (s *sizer) Config() Config {
	return s.cfg
}

func (s *sizer) WorldCorners(box bounds.Box, tf transform.Transform) [bounds.CornerCount]mgl32.Vec3 {
	return worldCorners(box, modelMatrix(tf))
}

func (s *sizer) ProjectToNDC(p mgl32.Vec3) mgl32.Vec2 {
	return ndc(s.viewProjection(), p)
}

func (s *sizer) ProjectToScreen(p mgl32.Vec3) mgl32.Vec2 {
	return screen(s.viewProjection(), p, float32(s.vp.Width()), float32(s.vp.Height()))
}

func (s *sizer) PixelRect(box bounds.Box, tf transform.Transform) ScreenRect {
	defer s.tracer.Section("compute_pixel_bounding_box")()
	return s.pixelRect(box, tf)
}

func (s *sizer) ScreenSize(box bounds.Box, tf transform.Transform) SizeClass {
	defer s.tracer.Section("get_screen_size")()
	return s.cfg.Thresholds.Classify(s.pixelRect(box, tf).MinDimension())
}

func (s *sizer) ScreenSizeOfPoints(points []mgl32.Vec3, tf transform.Transform) SizeClass {
	return s.ScreenSize(s.boxOf(points), tf)
}

func (s *sizer) SmallerThanPixel(box bounds.Box, tf transform.Transform) bool {
	defer s.tracer.Section("smaller_than_pixel")()
	return s.pixelRect(box, tf).MinDimension() < PixelThreshold
}

func (s *sizer) SmallerThanPixelPoints(points []mgl32.Vec3, tf transform.Transform) bool {
	return s.SmallerThanPixel(s.boxOf(points), tf)
}

func (s *sizer) ScreenPixelArea(box bounds.Box, tf transform.Transform) float32 {
	defer s.tracer.Section("compute_screen_pixel_area")()
	return s.pixelRect(box, tf).Area()
}

func (s *sizer) ScreenPixelAreaPercentage(box bounds.Box, tf transform.Transform) float32 {
	screenArea := float32(s.vp.Width()) * float32(s.vp.Height())
	if screenArea <= 0 {
		return 0
	}
	return s.ScreenPixelArea(box, tf) / screenArea * 100
}

func (s *sizer) ScreenSpaceQuad(obj mesh.PointSource) (mesh.IndexedVertexPositions, error) {
	defer s.tracer.Section("make_screen_space_ivp")()

	if obj == nil {
		return mesh.IndexedVertexPositions{}, ErrEmptyObject
	}
	points := obj.Points()
	if len(points) == 0 {
		return mesh.IndexedVertexPositions{}, ErrEmptyObject
	}

	width, height := s.vp.Width(), s.vp.Height()
	if width <= 0 || height <= 0 {
		return mesh.IndexedVertexPositions{}, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	aspect := float32(width) / float32(height)

	viewProj := s.viewProjection()
	corners := worldCorners(s.boxOf(points), modelMatrix(obj.Transform()))

	var rect ScreenRect
	for _, c := range corners {
		p := ndc(viewProj, c)
		p[0] *= aspect
		if !common.IsFinite2(p) {
			continue
		}
		rect.extend(p)
	}
	if rect.Empty() {
		return mesh.IndexedVertexPositions{}, ErrNoFiniteCorners
	}
	rect = rect.clamped(mgl32.Vec2{-aspect, -1}, mgl32.Vec2{aspect, 1})

	minX, minY := rect.Min[0], rect.Min[1]
	maxX, maxY := rect.Max[0], rect.Max[1]
	return mesh.IndexedVertexPositions{
		Positions: []mgl32.Vec3{
			{minX, minY, 0}, // bottom-left
			{maxX, minY, 0}, // bottom-right
			{maxX, maxY, 0}, // top-right
			{minX, maxY, 0}, // top-left
		},
		Indices:   slices.Clone(quadIndices[:]),
		Transform: transform.Identity(),
	}, nil
}

// pixelRect projects the world corners of box to pixels and reduces them
// according to the configured ClampOrder.
func (s *sizer) pixelRect(box bounds.Box, tf transform.Transform) ScreenRect {
	if box.Empty() {
		return ScreenRect{}
	}
	width, height := s.vp.Width(), s.vp.Height()
	if width <= 0 || height <= 0 {
		return ScreenRect{}
	}
	w, h := float32(width), float32(height)
	lo, hi := mgl32.Vec2{0, 0}, mgl32.Vec2{w, h}

	viewProj := s.viewProjection()
	corners := worldCorners(box, modelMatrix(tf))

	var rect ScreenRect
	for _, c := range corners {
		p := screen(viewProj, c, w, h)
		// a corner on the eye plane projects to a discontinuous value
		if !common.IsFinite2(p) {
			continue
		}
		if s.cfg.ClampOrder == ClampPerCorner {
			p = clampPoint(p, lo, hi)
		}
		rect.extend(p)
	}
	return rect.clamped(lo, hi)
}

func (s *sizer) viewProjection() mgl32.Mat4 {
	return s.cam.ProjectionMatrix().Mul4(s.cam.ViewMatrix())
}

func (s *sizer) boxOf(points []mgl32.Vec3) bounds.Box {
	defer s.tracer.Section("create_aabb")()
	return bounds.FromPoints(points)
}
