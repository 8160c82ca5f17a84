// Package mesh holds the minimal renderable geometry types exchanged with the
// sizer: the point-set capability interface it reads from and the indexed
// vertex positions it writes screen-space proxies into.
package mesh

import (
	"github.com/Carmen-Shannon/oxy-lod/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// PointSource is anything that exposes a local-space point set and the
// transform that places it in the world.
type PointSource interface {
	// Points returns the local-space points of the object.
	//
	// Returns:
	//   - []mgl32.Vec3: the object's points; may be empty
	Points() []mgl32.Vec3

	// Transform returns the object's local-to-world transform.
	//
	// Returns:
	//   - transform.Transform: the transform
	Transform() transform.Transform
}

// IndexedVertexPositions is an indexed triangle list with a transform.
// The zero value is the empty mesh.
type IndexedVertexPositions struct {
	// Positions are the vertex positions.
	Positions []mgl32.Vec3

	// Indices are triangle-list indices into Positions.
	Indices []uint32

	// Transform places the positions in their target space. Nil means identity.
	Transform transform.Transform
}

// Empty reports whether the mesh has no vertices.
func (ivp *IndexedVertexPositions) Empty() bool {
	return len(ivp.Positions) == 0
}

// TriangleCount returns the number of whole triangles described by Indices.
func (ivp *IndexedVertexPositions) TriangleCount() int {
	return len(ivp.Indices) / 3
}

// Source exposes the mesh as a PointSource so it can itself be sized.
// A nil Transform is reported as the identity.
//
// Returns:
//   - PointSource: a view over the mesh's positions and transform
func (ivp *IndexedVertexPositions) Source() PointSource {
	return ivpSource{ivp: ivp}
}

type ivpSource struct {
	ivp *IndexedVertexPositions
}

func (s ivpSource) Points() []mgl32.Vec3 {
	return s.ivp.Positions
}

func (s ivpSource) Transform() transform.Transform {
	if s.ivp.Transform == nil {
		return transform.Identity()
	}
	return s.ivp.Transform
}

// Merge concatenates meshes into one, rebasing each mesh's indices past the
// vertices before it. Transforms are not applied; the result has a nil Transform.
//
// Parameters:
//   - meshes: the meshes to merge, typically screen-space quads
//
// Returns:
//   - IndexedVertexPositions: the merged mesh
func Merge(meshes ...IndexedVertexPositions) IndexedVertexPositions {
	var vertexCount, indexCount int
	for _, m := range meshes {
		vertexCount += len(m.Positions)
		indexCount += len(m.Indices)
	}

	out := IndexedVertexPositions{
		Positions: make([]mgl32.Vec3, 0, vertexCount),
		Indices:   make([]uint32, 0, indexCount),
	}
	for _, m := range meshes {
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

// Object is a plain PointSource pairing a point set with a transform.
type Object struct {
	points []mgl32.Vec3
	tf     transform.Transform
}

var _ PointSource = &Object{}

// NewObject creates an Object. A nil transform is treated as the identity.
//
// Parameters:
//   - points: the local-space points; the slice is referenced, not copied
//   - tf: the local-to-world transform
//
// Returns:
//   - *Object: the new object
func NewObject(points []mgl32.Vec3, tf transform.Transform) *Object {
	if tf == nil {
		tf = transform.Identity()
	}
	return &Object{points: points, tf: tf}
}

func (o *Object) Points() []mgl32.Vec3 {
	return o.points
}

func (o *Object) Transform() transform.Transform {
	return o.tf
}

// UnitCube returns the eight corners of an axis-aligned cube of edge length 1
// centred on the origin.
func UnitCube() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{-0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
}
