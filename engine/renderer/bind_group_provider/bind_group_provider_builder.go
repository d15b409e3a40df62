package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithLayoutEntries sets the binding layout entries for this provider.
//
// Parameters:
//   - entries: the layout entries describing each binding on this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the layout entries for this provider
func WithLayoutEntries(entries ...wgpu.BindGroupLayoutEntry) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.layoutEntries = entries
	}
}

// WithIndexFormat sets the index element format for this provider's index buffer.
//
// Parameters:
//   - format: the index element format to use
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index format for this provider
func WithIndexFormat(format wgpu.IndexFormat) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexFormat = format
	}
}

// WithIndexCount sets the number of indices for draw calls issued against this provider.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index count for this provider
func WithIndexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexCount = count
	}
}
