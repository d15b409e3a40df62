package uniform

import "github.com/cogentcore/webgpu/wgpu"

// BindingBuilderOption is a functional option used to configure a Binding during construction.
type BindingBuilderOption func(*binding)

// WithVisibility sets the shader stage mask the binding is visible to.
//
// Parameters:
//   - stages: the shader stage mask
//
// Returns:
//   - BindingBuilderOption: a function that sets the visibility for the binding
func WithVisibility(stages wgpu.ShaderStage) BindingBuilderOption {
	return func(b *binding) {
		b.visibility = stages
	}
}
