package model

import (
	"github.com/Carmen-Shannon/shaderpad/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly.
// Size: 20 bytes (std430 aligned, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in clip space (12 bytes)
	TexCoord [2]float32 // offset 12: UV texture coordinate (8 bytes)
}

// VertexBufferLayout returns the wgpu vertex buffer layout describing GPUVertex
// for pipeline creation: position at shader location 0, UV at location 1.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout for GPUVertex
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 20,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         12,
				ShaderLocation: 1,
			},
		},
	}
}

// MarshalVertices serializes a slice of vertices into a byte buffer for vertex
// buffer upload. GPUVertex is a packed POD struct, so the bytes are a direct
// view into the input slice; do not modify the vertices while the buffer is
// in use.
//
// Parameters:
//   - vertices: the vertex data to serialize
//
// Returns:
//   - []byte: the serialized vertex data
func MarshalVertices(vertices []GPUVertex) []byte {
	return common.SliceToBytes(vertices)
}

// MarshalIndices serializes a slice of 16-bit indices into a byte buffer for
// index buffer upload. The bytes are a direct view into the input slice.
//
// Parameters:
//   - indices: the index data to serialize
//
// Returns:
//   - []byte: the serialized index data
func MarshalIndices(indices []uint16) []byte {
	return common.SliceToBytes(indices)
}
