package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption defines a function type for configuring a pipeline during creation.
type PipelineBuilderOption func(*pipeline)

// WithBlendEnabled toggles blending for the pipeline.
//
// Parameters:
//   - enabled: true to enable blending, false to disable
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend setting to the pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithBlendState sets a custom blend state for the pipeline.
//
// Parameters:
//   - state: the blend state to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend state to the pipeline
func WithBlendState(state *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		if state != nil {
			p.blendState = state
		}
	}
}

// WithCullMode sets the cull mode for the pipeline.
//
// Parameters:
//   - mode: the cull mode to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the cull mode to the pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology for the pipeline.
//
// Parameters:
//   - topology: the primitive topology to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the topology to the pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order for the pipeline.
//
// Parameters:
//   - face: the front face winding order to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the winding order to the pipeline
func WithFrontFace(face wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = face
	}
}

// WithVertexLayouts sets the vertex buffer layouts for the pipeline.
//
// Parameters:
//   - layouts: the vertex buffer layouts to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the vertex layouts to the pipeline
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLayouts = layouts
	}
}

// WithWriteMask sets the color write mask for the pipeline.
//
// Parameters:
//   - mask: the color write mask to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the write mask to the pipeline
func WithWriteMask(mask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = mask
	}
}
