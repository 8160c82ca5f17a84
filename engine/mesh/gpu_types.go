package mesh

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// ScreenQuadShaderSource is the WGSL program that draws a screen-space proxy quad.
// Its VertexInput matches GPUPositionVertex and its uniform matches GPUScreenQuadUniform.
//
//go:embed assets/screen_quad.wgsl
var ScreenQuadShaderSource string

// GPUPositionVertex is the GPU-aligned representation of a position-only vertex.
// Size: 12 bytes (vec3<f32>, tightly packed in a vertex buffer).
type GPUPositionVertex struct {
	Position [3]float32 // offset 0: position (12 bytes)
}

// Size returns the size of the GPUPositionVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (12)
func (g *GPUPositionVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// GPUScreenQuadUniform is the uniform consumed by ScreenQuadShaderSource.
// Size: 16 bytes (one f32 padded to a 16-byte uniform slot).
type GPUScreenQuadUniform struct {
	Aspect float32    // offset 0: viewport width / height
	_pad   [3]float32 // offset 4: padding to 16 bytes
}

// Size returns the size of the GPUScreenQuadUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUScreenQuadUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUScreenQuadUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Aspect))
	return buf
}

// PositionVertexLayout returns the vertex buffer layout for GPUPositionVertex
// at shader location 0.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for a tightly packed vec3<f32> stream
func PositionVertexLayout() wgpu.VertexBufferLayout {
	var v GPUPositionVertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(v.Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
		},
	}
}

// IndexFormat is the index buffer format produced by MarshalIndices.
const IndexFormat = wgpu.IndexFormatUint32

// Topology is the primitive topology of IndexedVertexPositions.
const Topology = wgpu.PrimitiveTopologyTriangleList

// MarshalPositions serializes the mesh positions as tightly packed little-endian
// vec3<f32> values. The mesh Transform is not applied.
//
// Returns:
//   - []byte: the vertex buffer contents, nil for an empty mesh
func (ivp *IndexedVertexPositions) MarshalPositions() []byte {
	if len(ivp.Positions) == 0 {
		return nil
	}
	var v GPUPositionVertex
	stride := v.Size()
	buf := make([]byte, stride*len(ivp.Positions))
	for i, p := range ivp.Positions {
		off := i * stride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(p[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(p[1]))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(p[2]))
	}
	return buf
}

// MarshalIndices serializes the mesh indices in IndexFormat.
//
// Returns:
//   - []byte: the index buffer contents, nil when there are no indices
func (ivp *IndexedVertexPositions) MarshalIndices() []byte {
	if len(ivp.Indices) == 0 {
		return nil
	}
	buf := make([]byte, 4*len(ivp.Indices))
	for i, idx := range ivp.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
