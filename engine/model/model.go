package model

import (
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	meshProvider          bind_group_provider.BindGroupProvider
	vertexData, indexData []byte
	indexCount            int
}

// Model defines the interface for a renderable mesh.
// A Model is a GPU-ready container holding staged vertex and index data and
// the BindGroupProvider that receives the uploaded buffers.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetVertexData sets the raw vertex data for this model's mesh.
	//
	// Parameters:
	//   - data: the vertex data to set
	SetVertexData(data []byte)

	// SetIndexData sets the raw index data for this model's mesh.
	//
	// Parameters:
	//   - data: the index data to set
	SetIndexData(data []byte)

	// SetIndexCount sets the number of indices in the model's mesh.
	//
	// Parameters:
	//   - count: the index count to set
	SetIndexCount(count int)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewQuad creates a Model holding a fullscreen quad: four corner vertices
// spanning clip space, drawn as two counter-clockwise triangles with 16-bit
// indices.
//
// Returns:
//   - Model: the fullscreen quad model
func NewQuad() Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-1.0, -1.0, 0.0}, TexCoord: [2]float32{0.0, 0.0}},
		{Position: [3]float32{1.0, -1.0, 0.0}, TexCoord: [2]float32{1.0, 0.0}},
		{Position: [3]float32{1.0, 1.0, 0.0}, TexCoord: [2]float32{1.0, 1.0}},
		{Position: [3]float32{-1.0, 1.0, 0.0}, TexCoord: [2]float32{0.0, 1.0}},
	}
	indices := []uint16{2, 3, 0, 1, 2, 0}

	provider := bind_group_provider.NewBindGroupProvider("quad-mesh",
		bind_group_provider.WithIndexFormat(wgpu.IndexFormatUint16),
		bind_group_provider.WithIndexCount(len(indices)),
	)

	return NewModel(
		WithName("quad"),
		WithMeshProvider(provider),
		WithVertexData(MarshalVertices(vertices)),
		WithIndexData(MarshalIndices(indices)),
		WithIndexCount(len(indices)),
	)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) SetVertexData(data []byte) {
	m.vertexData = data
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) SetIndexData(data []byte) {
	m.indexData = data
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) SetIndexCount(count int) {
	m.indexCount = count
}
