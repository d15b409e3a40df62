package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Frame acquisition errors returned by BeginFrame. Callers classify these with
// errors.Is to decide whether to reconfigure the surface, skip the frame, or
// shut down.
var (
	// ErrSurfaceLost indicates the surface was lost and must be reconfigured
	// before the next frame.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the window
	// (typically mid-resize) and must be reconfigured before the next frame.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceTimeout indicates the next surface texture was not available
	// in time. The frame should be skipped; no reconfiguration is needed.
	ErrSurfaceTimeout = errors.New("surface acquisition timed out")

	// ErrSurfaceOutOfMemory indicates the GPU is out of memory. This is not
	// recoverable; the render loop should stop.
	ErrSurfaceOutOfMemory = errors.New("surface out of memory")
)

// classifySurfaceError maps a raw surface acquisition error onto one of the
// sentinel surface errors so callers can branch with errors.Is. Errors that
// match no known class are returned unchanged.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "memory"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutOfMemory, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrSurfaceTimeout, err)
	default:
		return err
	}
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
