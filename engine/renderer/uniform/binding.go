package uniform

import (
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// binding is the unexported implementation of Binding.
type binding struct {
	// group is the bind group slot this binding occupies in the pipeline layout.
	group uint32

	// value is the CPU-side uniform value serialized into the GPU buffer.
	value Value

	// visibility is the shader stage mask the binding is visible to.
	visibility wgpu.ShaderStage

	// provider holds the GPU resources backing this binding.
	provider bind_group_provider.BindGroupProvider
}

// Binding pairs a CPU-side uniform Value with the GPU bind group resources
// backing it. Each binding owns a single uniform buffer at binding index 0
// of its group.
type Binding interface {
	// Group returns the bind group slot this binding occupies.
	//
	// Returns:
	//   - uint32: the bind group slot
	Group() uint32

	// Value returns the CPU-side uniform value for this binding.
	//
	// Returns:
	//   - Value: the uniform value
	Value() Value

	// Provider returns the bind group provider holding the GPU resources for this binding.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider for this binding
	Provider() bind_group_provider.BindGroupProvider

	// StageWrite serializes the current uniform value into a buffer write
	// targeting this binding's GPU buffer. The write is applied by the
	// Renderer on the next WriteBuffers call.
	//
	// Returns:
	//   - bind_group_provider.BufferWrite: the pending buffer write
	StageWrite() bind_group_provider.BufferWrite
}

var _ Binding = &binding{}

// NewBinding creates a uniform Binding for the given value at the given
// bind group slot. The layout declares one uniform buffer at binding index 0,
// visible to the vertex and fragment stages unless overridden.
//
// Parameters:
//   - label: a debug label for the underlying provider
//   - group: the bind group slot this binding occupies
//   - value: the CPU-side uniform value
//   - opts: a variadic list of BindingBuilderOption functions to configure the binding
//
// Returns:
//   - Binding: a new Binding instance
func NewBinding(label string, group uint32, value Value, opts ...BindingBuilderOption) Binding {
	b := &binding{
		group:      group,
		value:      value,
		visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.provider = bind_group_provider.NewBindGroupProvider(label,
		bind_group_provider.WithLayoutEntries(wgpu.BindGroupLayoutEntry{
			Binding:    0,
			Visibility: b.visibility,
			Buffer: wgpu.BufferBindingLayout{
				Type:             wgpu.BufferBindingTypeUniform,
				HasDynamicOffset: false,
				MinBindingSize:   uint64(value.Size()),
			},
		}),
	)
	return b
}

func (b *binding) Group() uint32 {
	return b.group
}

func (b *binding) Value() Value {
	return b.value
}

func (b *binding) Provider() bind_group_provider.BindGroupProvider {
	return b.provider
}

func (b *binding) StageWrite() bind_group_provider.BufferWrite {
	return bind_group_provider.BufferWrite{
		Provider: b.provider,
		Binding:  0,
		Offset:   0,
		Data:     b.value.Marshal(),
	}
}
