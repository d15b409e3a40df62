package viewer

import (
	_ "embed"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/shaderpad/common"
	"github.com/Carmen-Shannon/shaderpad/engine/model"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/shader"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/uniform"
	"github.com/cogentcore/webgpu/wgpu"
)

// builtinShaderSource is the fallback WGSL program compiled into the binary.
// It is always registered alongside the user's shader so pipeline cycling has
// a known-good target even when the user's source file is broken.
//
//go:embed assets/builtin.wgsl
var builtinShaderSource string

// Pipeline cache keys for the two registered pipelines.
const (
	PipelineKeyUser    = "user"
	PipelineKeyBuiltin = "builtin"
)

// reloadResult carries the outcome of an off-thread shader reload back to the
// event loop, which applies it between frames.
type reloadResult struct {
	program shader.Program
	err     error
}

// viewer is the implementation of the Viewer interface.
type viewer struct {
	rend  renderer.Renderer
	start time.Time

	shaderPath  string
	texturePath string

	background wgpu.Color

	timeValue   *uniform.TimeUniform
	mouseValue  *uniform.MouseUniform
	timeBinding uniform.Binding
	mouseBind   uniform.Binding

	// textureProvider holds the optional texture and sampler at group 2,
	// nil when no texture path was configured.
	textureProvider bind_group_provider.BindGroupProvider

	quad model.Model

	width, height int

	// scaleX and scaleY are the window content scale factors. Cursor positions
	// arrive in screen coordinates while width/height are framebuffer pixels;
	// the scale bridges the two on high-DPI displays.
	scaleX, scaleY float64

	pipelineKeys []string
	activeIndex  int

	// Shader reloads run on the worker pool so file IO and validation never
	// stall the frame loop. Results land in pendingReload and are applied by
	// Update between frames. reloadInFlight collapses repeated requests while
	// one is outstanding.
	reloadPool     worker.DynamicWorkerPool
	reloadTaskID   int
	reloadInFlight atomic.Bool
	pendingReload  atomic.Pointer[reloadResult]

	watchEnabled bool
	watchStop    chan struct{}
}

// Viewer owns the CPU-side state of the shader viewer: the fullscreen quad,
// the time and mouse uniforms, the background color, and the shader reload
// state machine. All methods are driven from the window's event loop thread;
// only the reload pool runs elsewhere.
type Viewer interface {
	// Init uploads the quad mesh, initializes the uniform (and optional texture)
	// bind groups, and registers the user and builtin pipelines. Must be called
	// once before the first Update/Render.
	//
	// Parameters:
	//   - r: the renderer to create GPU resources with
	//
	// Returns:
	//   - error: an error if any GPU resource or the initial shader fails
	Init(r renderer.Renderer) error

	// HandleKeyDown processes a key press: Enter or R requests a shader reload,
	// Space cycles the active pipeline, and number keys select a pipeline directly.
	//
	// Parameters:
	//   - key: the key code of the pressed key
	HandleKeyDown(key int)

	// HandleCursorMove processes a cursor position in screen coordinates,
	// updating the mouse uniform and the background color. The position is
	// converted to framebuffer pixels via the current content scale before
	// normalizing against the surface size.
	//
	// Parameters:
	//   - x: cursor x in screen coordinates from the left edge
	//   - y: cursor y in screen coordinates from the top edge
	HandleCursorMove(x, y float64)

	// HandleScaleChange records new window content scale factors, used to map
	// cursor screen coordinates onto framebuffer pixels. Non-positive factors
	// are ignored.
	//
	// Parameters:
	//   - xscale: the new x scale factor
	//   - yscale: the new y scale factor
	HandleScaleChange(xscale, yscale float32)

	// HandleResize reconfigures the surface for a new framebuffer size.
	// Zero-dimension sizes (minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	HandleResize(width, height int)

	// RequestReload schedules an off-thread reload of the user shader from disk.
	// Requests made while a reload is outstanding are dropped.
	RequestReload()

	// Update advances the time uniform, applies any completed shader reload,
	// and flushes staged uniform writes to the GPU. Called once per frame
	// before Render.
	Update()

	// Render runs one frame: acquire the surface, draw the quad with the active
	// pipeline, submit, and present. Recoverable surface errors are handled
	// internally; a non-nil return means the render loop must stop.
	//
	// Returns:
	//   - error: a fatal error (GPU out of memory), or nil
	Render() error

	// ActivePipelineKey returns the cache key of the pipeline currently drawn.
	//
	// Returns:
	//   - string: the active pipeline key
	ActivePipelineKey() string

	// Background returns the current background clear color.
	//
	// Returns:
	//   - wgpu.Color: the background color
	Background() wgpu.Color

	// Close releases the viewer's GPU resources and stops the file watcher.
	Close()
}

var _ Viewer = &viewer{}

// NewViewer creates a new Viewer with the provided options. The shader path
// defaults to "shaders/shader.wgsl" and the background to the dim blue used
// before the first cursor move.
//
// Parameters:
//   - options: a variadic list of ViewerBuilderOption functions to configure the viewer
//
// Returns:
//   - Viewer: a new Viewer instance
func NewViewer(options ...ViewerBuilderOption) Viewer {
	v := &viewer{
		start:      time.Now(),
		shaderPath: "shaders/shader.wgsl",
		background: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
		timeValue:  &uniform.TimeUniform{},
		mouseValue: &uniform.MouseUniform{},
		quad:       model.NewQuad(),
		scaleX:     1.0,
		scaleY:     1.0,
		// A couple of reload workers is plenty; reloads are rare and tiny.
		reloadPool:   worker.NewDynamicWorkerPool(2, 16, 1*time.Second),
		pipelineKeys: []string{PipelineKeyUser, PipelineKeyBuiltin},
	}
	for _, opt := range options {
		opt(v)
	}

	v.timeBinding = uniform.NewBinding("time-uniform", 0, v.timeValue)
	v.mouseBind = uniform.NewBinding("mouse-uniform", 1, v.mouseValue)

	if v.texturePath != "" {
		v.textureProvider = bind_group_provider.NewBindGroupProvider("viewer-texture",
			bind_group_provider.WithLayoutEntries(
				wgpu.BindGroupLayoutEntry{
					Binding:    0,
					Visibility: wgpu.ShaderStageFragment,
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeFloat,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
				wgpu.BindGroupLayoutEntry{
					Binding:    1,
					Visibility: wgpu.ShaderStageFragment,
					Sampler: wgpu.SamplerBindingLayout{
						Type: wgpu.SamplerBindingTypeFiltering,
					},
				},
			),
		)
	}

	return v
}

func (v *viewer) Init(r renderer.Renderer) error {
	v.rend = r
	v.width, v.height = r.SurfaceSize()
	r.SetClearColor(v.background)

	mesh := v.quad.MeshProvider()
	if err := r.InitMeshBuffers(mesh, v.quad.VertexData(), v.quad.IndexData(), v.quad.IndexCount()); err != nil {
		return err
	}

	if err := r.InitBindGroup(v.timeBinding.Provider()); err != nil {
		return err
	}
	if err := r.InitBindGroup(v.mouseBind.Provider()); err != nil {
		return err
	}

	if v.textureProvider != nil {
		staging, err := common.LoadTexture(v.texturePath)
		if err != nil {
			return err
		}
		if err := r.InitTextureView(v.textureProvider, 0, staging); err != nil {
			return err
		}
		if err := r.InitSampler(v.textureProvider, 1, common.SamplerStagingData{}); err != nil {
			return err
		}
		if err := r.InitBindGroup(v.textureProvider); err != nil {
			return err
		}
	}

	userProgram, err := shader.LoadProgram(PipelineKeyUser, v.shaderPath)
	if err != nil {
		return err
	}
	builtinProgram, err := shader.NewProgram(PipelineKeyBuiltin, builtinShaderSource)
	if err != nil {
		return err
	}

	groups := v.bindGroups()
	if err := r.RegisterPipelines(groups,
		v.newPipeline(PipelineKeyUser, userProgram),
		v.newPipeline(PipelineKeyBuiltin, builtinProgram),
	); err != nil {
		return err
	}

	if v.watchEnabled {
		if err := v.startWatcher(); err != nil {
			// Watching is an optional convenience; reloads still work via keys.
			log.Printf("viewer: shader file watching disabled: %v", err)
		}
	}

	return nil
}

// newPipeline builds a render Pipeline for the given program with the quad's
// vertex layout and the default fullscreen fixed-function state.
func (v *viewer) newPipeline(key string, prog shader.Program) pipeline.Pipeline {
	return pipeline.NewPipeline(key, prog,
		pipeline.WithVertexLayouts(model.VertexBufferLayout()),
	)
}

// bindGroups returns the providers bound to the render pass in group order:
// time at group 0, mouse at group 1, and the optional texture at group 2.
func (v *viewer) bindGroups() []bind_group_provider.BindGroupProvider {
	groups := []bind_group_provider.BindGroupProvider{
		v.timeBinding.Provider(),
		v.mouseBind.Provider(),
	}
	if v.textureProvider != nil {
		groups = append(groups, v.textureProvider)
	}
	return groups
}

func (v *viewer) HandleKeyDown(key int) {
	switch {
	case key == common.KeyEnter || key == common.KeyR:
		v.RequestReload()
	case key == common.KeySpace:
		v.activeIndex = (v.activeIndex + 1) % len(v.pipelineKeys)
		log.Printf("viewer: active pipeline %q", v.ActivePipelineKey())
	case key >= common.Key1 && key <= common.Key9:
		idx := key - common.Key1
		if idx < len(v.pipelineKeys) {
			v.activeIndex = idx
			log.Printf("viewer: active pipeline %q", v.ActivePipelineKey())
		}
	}
}

func (v *viewer) HandleCursorMove(x, y float64) {
	if v.width == 0 || v.height == 0 {
		return
	}
	// Screen coordinates scale up to framebuffer pixels before normalizing, so
	// the uniform spans [0,1] across the window on high-DPI displays too.
	nx := float32(x * v.scaleX / float64(v.width))
	ny := float32(y * v.scaleY / float64(v.height))

	v.mouseValue.SetNormalized(nx, ny)

	// The background follows the cursor: red tracks x, green tracks y.
	v.background.R = float64(nx)
	v.background.G = float64(ny)
	v.rend.SetClearColor(v.background)
}

func (v *viewer) HandleScaleChange(xscale, yscale float32) {
	if xscale <= 0 || yscale <= 0 {
		return
	}
	v.scaleX = float64(xscale)
	v.scaleY = float64(yscale)
}

func (v *viewer) HandleResize(width, height int) {
	// Minimized windows report zero dimensions; configuring a zero-sized
	// surface is invalid, so keep the previous configuration.
	if width == 0 || height == 0 {
		return
	}
	v.width, v.height = width, height
	v.rend.Resize(width, height)
}

func (v *viewer) RequestReload() {
	if !v.reloadInFlight.CompareAndSwap(false, true) {
		return
	}

	path := v.shaderPath
	id := v.reloadTaskID
	v.reloadTaskID++
	v.reloadPool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			program, err := shader.LoadProgram(PipelineKeyUser, path)
			v.pendingReload.Store(&reloadResult{program: program, err: err})
			return nil, nil
		},
	})
}

func (v *viewer) Update() {
	v.timeValue.Update(v.start)

	if result := v.pendingReload.Swap(nil); result != nil {
		v.applyReload(result)
	}

	v.rend.WriteBuffers([]bind_group_provider.BufferWrite{
		v.timeBinding.StageWrite(),
		v.mouseBind.StageWrite(),
	})
}

// applyReload swaps the user pipeline for a freshly validated program. A failed
// read, validation, or pipeline build leaves the previous pipeline in place.
func (v *viewer) applyReload(result *reloadResult) {
	defer v.reloadInFlight.Store(false)

	if result.err != nil {
		log.Printf("viewer: shader reload rejected: %v", result.err)
		return
	}

	p := v.newPipeline(PipelineKeyUser, result.program)
	if err := v.rend.ReplacePipeline(v.bindGroups(), p); err != nil {
		log.Printf("viewer: shader reload rejected: %v", err)
		return
	}
	log.Printf("viewer: shader reloaded from %s", v.shaderPath)
}

func (v *viewer) Render() error {
	err := v.rend.BeginFrame()
	switch {
	case err == nil:
		// proceed
	case errors.Is(err, renderer.ErrSurfaceLost) || errors.Is(err, renderer.ErrSurfaceOutdated):
		// Reconfigure at the last known size and skip this frame; the next
		// frame acquires a fresh surface texture.
		w, h := v.rend.SurfaceSize()
		v.rend.Resize(w, h)
		return nil
	case errors.Is(err, renderer.ErrSurfaceTimeout):
		return nil
	case errors.Is(err, renderer.ErrSurfaceOutOfMemory):
		return err
	default:
		log.Printf("viewer: frame skipped: %v", err)
		return nil
	}

	if drawErr := v.rend.DrawCall(v.ActivePipelineKey(), v.quad.MeshProvider(), v.bindGroups()); drawErr != nil {
		log.Printf("viewer: draw failed: %v", drawErr)
	}
	v.rend.EndFrame()
	v.rend.Present()
	return nil
}

func (v *viewer) ActivePipelineKey() string {
	return v.pipelineKeys[v.activeIndex]
}

func (v *viewer) Background() wgpu.Color {
	return v.background
}

func (v *viewer) Close() {
	v.stopWatcher()

	v.timeBinding.Provider().Release()
	v.mouseBind.Provider().Release()
	if v.textureProvider != nil {
		v.textureProvider.Release()
	}
	v.quad.MeshProvider().Release()
}
