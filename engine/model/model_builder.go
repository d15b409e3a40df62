package model

import "github.com/Carmen-Shannon/shaderpad/engine/renderer/bind_group_provider"

// ModelBuilderOption is a functional option used to configure a Model during construction.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that sets the name for the model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMeshProvider sets the BindGroupProvider that receives the uploaded mesh buffers.
//
// Parameters:
//   - provider: the mesh provider
//
// Returns:
//   - ModelBuilderOption: a function that sets the mesh provider for the model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

// WithVertexData sets the staged vertex data for the model's mesh.
//
// Parameters:
//   - data: the serialized vertex data
//
// Returns:
//   - ModelBuilderOption: a function that sets the vertex data for the model
func WithVertexData(data []byte) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = data
	}
}

// WithIndexData sets the staged index data for the model's mesh.
//
// Parameters:
//   - data: the serialized index data
//
// Returns:
//   - ModelBuilderOption: a function that sets the index data for the model
func WithIndexData(data []byte) ModelBuilderOption {
	return func(m *model) {
		m.indexData = data
	}
}

// WithIndexCount sets the number of indices in the model's mesh.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - ModelBuilderOption: a function that sets the index count for the model
func WithIndexCount(count int) ModelBuilderOption {
	return func(m *model) {
		m.indexCount = count
	}
}
