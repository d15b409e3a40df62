package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option used to configure a Renderer during construction.
type RendererBuilderOption func(*renderer)

// WithForceFallbackAdapter forces the backend to use a software fallback adapter
// instead of a hardware GPU. Useful for headless environments and debugging.
//
// Returns:
//   - RendererBuilderOption: a function that enables the fallback adapter for the renderer
func WithForceFallbackAdapter() RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = true
	}
}

// WithPresentMode sets the initial surface present mode for the renderer.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that sets the present mode for the renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithClearColor sets the initial render pass clear color for the renderer.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that sets the clear color for the renderer
func WithClearColor(c wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingClearColor = &c
	}
}
