package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/shaderpad/common"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records renderer calls so viewer behavior can be asserted
// without a GPU device.
type fakeRenderer struct {
	surfaceWidth  int
	surfaceHeight int

	clearColors []wgpu.Color
	resizes     [][2]int

	pipelineCache  map[string]pipeline.Pipeline
	replaceErr     error
	replacedKeys   []string
	meshInitCount  int
	meshVertexData []byte
	meshIndexData  []byte
	meshIndexCount int
	bindGroupInits []bind_group_provider.BindGroupProvider

	writes [][]bind_group_provider.BufferWrite

	beginErrs []error
	drawKeys  []string
	endFrames int
	presents  int
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		surfaceWidth:  800,
		surfaceHeight: 600,
		pipelineCache: make(map[string]pipeline.Pipeline),
	}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline {
	return f.pipelineCache[key]
}

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline {
	return f.pipelineCache
}

func (f *fakeRenderer) RegisterPipelines(_ []bind_group_provider.BindGroupProvider, pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		if _, exists := f.pipelineCache[p.PipelineKey()]; exists {
			continue
		}
		f.pipelineCache[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) ReplacePipeline(_ []bind_group_provider.BindGroupProvider, p pipeline.Pipeline) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replacedKeys = append(f.replacedKeys, p.PipelineKey())
	f.pipelineCache[p.PipelineKey()] = p
	return nil
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
	f.surfaceWidth, f.surfaceHeight = width, height
}

func (f *fakeRenderer) SurfaceSize() (int, int) {
	return f.surfaceWidth, f.surfaceHeight
}

func (f *fakeRenderer) SetClearColor(c wgpu.Color) {
	f.clearColors = append(f.clearColors, c)
}

func (f *fakeRenderer) SetPresentMode(_ renderer.PresentMode) {}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.meshInitCount++
	f.meshVertexData = vertexData
	f.meshIndexData = indexData
	f.meshIndexCount = indexCount
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider) error {
	f.bindGroupInits = append(f.bindGroupInits, provider)
	return nil
}

func (f *fakeRenderer) InitTextureView(_ bind_group_provider.BindGroupProvider, _ int, _ common.TextureStagingData) error {
	return nil
}

func (f *fakeRenderer) InitSampler(_ bind_group_provider.BindGroupProvider, _ int, _ common.SamplerStagingData) error {
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes)
}

func (f *fakeRenderer) BeginFrame() error {
	if len(f.beginErrs) == 0 {
		return nil
	}
	err := f.beginErrs[0]
	f.beginErrs = f.beginErrs[1:]
	return err
}

func (f *fakeRenderer) DrawCall(pipelineKey string, _ bind_group_provider.BindGroupProvider, _ []bind_group_provider.BindGroupProvider) error {
	f.drawKeys = append(f.drawKeys, pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.endFrames++
}

func (f *fakeRenderer) Present() {
	f.presents++
}

const testShaderSource = `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) tex_coords: vec2<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) tex_coords: vec2<f32>,
};

@group(0) @binding(0)
var<uniform> u_time: u32;

@group(1) @binding(0)
var<uniform> u_mouse: vec2<f32>;

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(in.position, 1.0);
    out.tex_coords = in.tex_coords;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let t = f32(u_time) * 0.001;
    return vec4<f32>(in.tex_coords, t - floor(t), 1.0);
}
`

// writeTestShader writes a valid shader file to a temp dir and returns its path.
func writeTestShader(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shader.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(testShaderSource), 0o644))
	return path
}

// initializedViewer builds a viewer against the fake renderer with a valid
// on-disk shader and runs Init.
func initializedViewer(t *testing.T, opts ...ViewerBuilderOption) (*viewer, *fakeRenderer) {
	t.Helper()
	f := newFakeRenderer()
	opts = append([]ViewerBuilderOption{WithShaderPath(writeTestShader(t))}, opts...)
	v := NewViewer(opts...).(*viewer)
	require.NoError(t, v.Init(f))
	return v, f
}

func TestInitRegistersPipelinesAndUploadsQuad(t *testing.T) {
	v, f := initializedViewer(t)

	assert.Equal(t, 1, f.meshInitCount)
	assert.Len(t, f.meshVertexData, 80)
	assert.Len(t, f.meshIndexData, 12)
	assert.Equal(t, 6, f.meshIndexCount)

	// Time and mouse uniform bind groups.
	assert.Len(t, f.bindGroupInits, 2)

	require.Contains(t, f.pipelineCache, PipelineKeyUser)
	require.Contains(t, f.pipelineCache, PipelineKeyBuiltin)
	assert.Equal(t, PipelineKeyUser, v.ActivePipelineKey())

	// Initial clear color is the default background.
	require.NotEmpty(t, f.clearColors)
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}, f.clearColors[0])
}

func TestInitFailsOnMissingShaderFile(t *testing.T) {
	v := NewViewer(WithShaderPath(filepath.Join(t.TempDir(), "nope.wgsl")))
	assert.Error(t, v.Init(newFakeRenderer()))
}

func TestHandleCursorMoveUpdatesMouseAndBackground(t *testing.T) {
	v, f := initializedViewer(t)

	// Surface is 800x600; cursor at (400, 150) normalizes to (0.5, 0.25).
	v.HandleCursorMove(400, 150)

	assert.InDelta(t, 0.5, v.mouseValue.Position[0], 1e-6)
	// y is flipped so the origin sits at the bottom-left.
	assert.InDelta(t, 0.75, v.mouseValue.Position[1], 1e-6)

	bg := v.Background()
	assert.InDelta(t, 0.5, bg.R, 1e-6)
	assert.InDelta(t, 0.25, bg.G, 1e-6)
	assert.InDelta(t, 0.3, bg.B, 1e-6)
	assert.InDelta(t, 1.0, bg.A, 1e-6)
	assert.Equal(t, bg, f.clearColors[len(f.clearColors)-1])
}

func TestHandleCursorMoveUsesContentScale(t *testing.T) {
	v, _ := initializedViewer(t)

	// Framebuffer is 800x600 but a 2x content scale means the cursor reports
	// screen coordinates spanning only 400x300. The right edge must still
	// normalize to 1.
	v.HandleScaleChange(2.0, 2.0)

	v.HandleCursorMove(400, 300)
	assert.InDelta(t, 1.0, v.mouseValue.Position[0], 1e-6)
	assert.InDelta(t, 0.0, v.mouseValue.Position[1], 1e-6)

	v.HandleCursorMove(200, 75)
	assert.InDelta(t, 0.5, v.mouseValue.Position[0], 1e-6)
	assert.InDelta(t, 0.75, v.mouseValue.Position[1], 1e-6)

	bg := v.Background()
	assert.InDelta(t, 0.5, bg.R, 1e-6)
	assert.InDelta(t, 0.25, bg.G, 1e-6)
}

func TestHandleScaleChangeIgnoresNonPositive(t *testing.T) {
	v, _ := initializedViewer(t)
	v.HandleScaleChange(2.0, 2.0)

	v.HandleScaleChange(0, 2.0)
	v.HandleScaleChange(-1.0, -1.0)

	assert.Equal(t, 2.0, v.scaleX)
	assert.Equal(t, 2.0, v.scaleY)
}

func TestHandleResize(t *testing.T) {
	v, f := initializedViewer(t)

	v.HandleResize(1024, 768)
	require.Len(t, f.resizes, 1)
	assert.Equal(t, [2]int{1024, 768}, f.resizes[0])
	assert.Equal(t, 1024, v.width)
	assert.Equal(t, 768, v.height)

	// Minimized windows report zero dimensions and must not reconfigure.
	v.HandleResize(0, 0)
	assert.Len(t, f.resizes, 1)
	assert.Equal(t, 1024, v.width)
}

func TestHandleKeyDownCyclesPipelines(t *testing.T) {
	v, _ := initializedViewer(t)

	assert.Equal(t, PipelineKeyUser, v.ActivePipelineKey())

	v.HandleKeyDown(common.KeySpace)
	assert.Equal(t, PipelineKeyBuiltin, v.ActivePipelineKey())

	v.HandleKeyDown(common.KeySpace)
	assert.Equal(t, PipelineKeyUser, v.ActivePipelineKey())

	v.HandleKeyDown(common.Key2)
	assert.Equal(t, PipelineKeyBuiltin, v.ActivePipelineKey())

	v.HandleKeyDown(common.Key1)
	assert.Equal(t, PipelineKeyUser, v.ActivePipelineKey())

	// Selecting past the registered pipelines is ignored.
	v.HandleKeyDown(common.Key9)
	assert.Equal(t, PipelineKeyUser, v.ActivePipelineKey())
}

func TestRequestReloadCollapsesDuplicates(t *testing.T) {
	v := NewViewer(WithShaderPath(writeTestShader(t))).(*viewer)

	v.reloadInFlight.Store(true)
	v.RequestReload()
	assert.Equal(t, 0, v.reloadTaskID)
}

func TestApplyReloadRejectsFailedLoad(t *testing.T) {
	v, f := initializedViewer(t)
	v.reloadInFlight.Store(true)

	v.applyReload(&reloadResult{err: errors.New("validation failed")})

	assert.Empty(t, f.replacedKeys)
	assert.False(t, v.reloadInFlight.Load())
}

func TestApplyReloadRejectsFailedPipelineBuild(t *testing.T) {
	v, f := initializedViewer(t)
	v.reloadInFlight.Store(true)
	f.replaceErr = errors.New("pipeline creation failed")

	prog, err := shader.NewProgram(PipelineKeyUser, testShaderSource)
	require.NoError(t, err)
	v.applyReload(&reloadResult{program: prog})

	assert.Empty(t, f.replacedKeys)
	assert.False(t, v.reloadInFlight.Load())
}

func TestApplyReloadSwapsUserPipeline(t *testing.T) {
	v, f := initializedViewer(t)
	v.reloadInFlight.Store(true)

	prog, err := shader.NewProgram(PipelineKeyUser, testShaderSource)
	require.NoError(t, err)
	v.applyReload(&reloadResult{program: prog})

	require.Len(t, f.replacedKeys, 1)
	assert.Equal(t, PipelineKeyUser, f.replacedKeys[0])
	assert.Equal(t, prog, f.pipelineCache[PipelineKeyUser].Program())
	assert.False(t, v.reloadInFlight.Load())
}

func TestUpdateAppliesPendingReload(t *testing.T) {
	v, f := initializedViewer(t)
	v.reloadInFlight.Store(true)

	prog, err := shader.NewProgram(PipelineKeyUser, testShaderSource)
	require.NoError(t, err)
	v.pendingReload.Store(&reloadResult{program: prog})

	v.Update()

	assert.Len(t, f.replacedKeys, 1)
	assert.Nil(t, v.pendingReload.Load())

	// Each update stages the time and mouse uniform writes.
	require.NotEmpty(t, f.writes)
	assert.Len(t, f.writes[len(f.writes)-1], 2)
}

func TestRenderDrawsActivePipeline(t *testing.T) {
	v, f := initializedViewer(t)

	require.NoError(t, v.Render())
	require.Len(t, f.drawKeys, 1)
	assert.Equal(t, PipelineKeyUser, f.drawKeys[0])
	assert.Equal(t, 1, f.endFrames)
	assert.Equal(t, 1, f.presents)
}

func TestRenderReconfiguresOnOutdatedSurface(t *testing.T) {
	v, f := initializedViewer(t)
	f.beginErrs = []error{renderer.ErrSurfaceOutdated}

	require.NoError(t, v.Render())
	assert.Len(t, f.resizes, 1)
	assert.Empty(t, f.drawKeys)
}

func TestRenderReconfiguresOnLostSurface(t *testing.T) {
	v, f := initializedViewer(t)
	f.beginErrs = []error{renderer.ErrSurfaceLost}

	require.NoError(t, v.Render())
	assert.Len(t, f.resizes, 1)
	assert.Empty(t, f.drawKeys)
}

func TestRenderSkipsFrameOnTimeout(t *testing.T) {
	v, f := initializedViewer(t)
	f.beginErrs = []error{renderer.ErrSurfaceTimeout}

	require.NoError(t, v.Render())
	assert.Empty(t, f.resizes)
	assert.Empty(t, f.drawKeys)
}

func TestRenderFailsOnOutOfMemory(t *testing.T) {
	v, f := initializedViewer(t)
	f.beginErrs = []error{renderer.ErrSurfaceOutOfMemory}

	err := v.Render()
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderer.ErrSurfaceOutOfMemory))
	assert.Empty(t, f.drawKeys)
}
