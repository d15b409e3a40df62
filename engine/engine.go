package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/shaderpad/engine/profiler"
	"github.com/Carmen-Shannon/shaderpad/engine/viewer"
	"github.com/Carmen-Shannon/shaderpad/engine/window"
)

// engine implements the Engine interface.
// Drives the viewer's update and render from the window's message loop, so all
// GPU and input work happens on the one OS thread the window is locked to.
type engine struct {
	window window.Window
	viewer viewer.Viewer

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame  time.Time
}

// Engine is the main entry point for the application.
// It wires window input events to the viewer and runs the frame loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Viewer returns the viewer driven by this engine.
	//
	// Returns:
	//   - viewer.Viewer: the viewer instance
	Viewer() viewer.Viewer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the frame loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run wires input callbacks and runs the frame loop on the calling thread.
	// Blocks until the window closes or the viewer reports a fatal error.
	Run()

	// Quit closes the window, ending the frame loop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window and a viewer are required; Run panics without them.
//
// Parameters:
//   - options: functional options for engine configuration (window, viewer, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Viewer() viewer.Viewer {
	return e.viewer
}

func (e *engine) Run() {
	if e.window == nil || e.viewer == nil {
		panic("engine: Run requires both a window and a viewer")
	}

	e.window.SetResizeCallback(func(width, height int) {
		e.viewer.HandleResize(width, height)
	})
	e.window.SetScaleChangeCallback(func(xscale, yscale float32) {
		e.viewer.HandleScaleChange(xscale, yscale)
	})
	e.window.SetCursorMoveCallback(func(x, y float64) {
		e.viewer.HandleCursorMove(x, y)
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		e.viewer.HandleKeyDown(int(keyCode))
	})
	e.window.SetUpdateCallback(e.frame)

	// Seed the current scale so cursor normalization is correct before the
	// first scale-change event fires.
	e.viewer.HandleScaleChange(e.window.ContentScale())

	e.lastFrame = time.Now()
	e.window.ProcessMessages()
}

// frame runs one update/render cycle. Registered as the window's update
// callback so it fires once per message loop iteration.
func (e *engine) frame() {
	e.viewer.Update()
	if err := e.viewer.Render(); err != nil {
		log.Printf("engine: stopping, render failed: %v", err)
		e.Quit()
		return
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.frameLimit > 0 {
		elapsed := time.Since(e.lastFrame)
		if remaining := e.frameLimit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
	e.lastFrame = time.Now()
}

func (e *engine) Quit() {
	if e.window != nil {
		_ = e.window.Close()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the frame loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
