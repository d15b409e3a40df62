package viewer

import "github.com/cogentcore/webgpu/wgpu"

// ViewerBuilderOption is a functional option used to configure a Viewer during construction.
type ViewerBuilderOption func(*viewer)

// WithShaderPath sets the path of the user WGSL shader file loaded at startup
// and on reload.
//
// Parameters:
//   - path: the shader file path
//
// Returns:
//   - ViewerBuilderOption: a function that sets the shader path for the viewer
func WithShaderPath(path string) ViewerBuilderOption {
	return func(v *viewer) {
		if path != "" {
			v.shaderPath = path
		}
	}
}

// WithTexture sets an optional image file to upload as a texture bound at
// group 2 (texture at binding 0, sampler at binding 1) for shaders that
// sample it.
//
// Parameters:
//   - path: the image file path (PNG or JPEG)
//
// Returns:
//   - ViewerBuilderOption: a function that sets the texture path for the viewer
func WithTexture(path string) ViewerBuilderOption {
	return func(v *viewer) {
		v.texturePath = path
	}
}

// WithBackground sets the initial background clear color.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - ViewerBuilderOption: a function that sets the background for the viewer
func WithBackground(c wgpu.Color) ViewerBuilderOption {
	return func(v *viewer) {
		v.background = c
	}
}

// WithFileWatching enables watching the shader file for changes; a write to
// the file triggers the same reload path as pressing Enter.
//
// Returns:
//   - ViewerBuilderOption: a function that enables file watching for the viewer
func WithFileWatching() ViewerBuilderOption {
	return func(v *viewer) {
		v.watchEnabled = true
	}
}
