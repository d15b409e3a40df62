package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/shaderpad/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `
@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func testProgram(t *testing.T) shader.Program {
	t.Helper()
	p, err := shader.NewProgram("test", testSource)
	require.NoError(t, err)
	return p
}

func TestNewPipelineDefaults(t *testing.T) {
	prog := testProgram(t)
	p := NewPipeline("main", prog)

	assert.Equal(t, "main", p.PipelineKey())
	assert.Equal(t, prog, p.Program())
	assert.Nil(t, p.RenderPipeline())

	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())

	bs := p.BlendState()
	require.NotNil(t, bs)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, bs.Color.DstFactor)
	assert.Equal(t, wgpu.BlendOperationAdd, bs.Color.Operation)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Alpha.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, bs.Alpha.DstFactor)
	assert.Equal(t, wgpu.BlendOperationAdd, bs.Alpha.Operation)

	assert.Empty(t, p.VertexLayouts())
}

func TestNewPipelineOptions(t *testing.T) {
	layout := wgpu.VertexBufferLayout{
		ArrayStride: 20,
		StepMode:    wgpu.VertexStepModeVertex,
	}
	p := NewPipeline("custom", testProgram(t),
		WithBlendEnabled(false),
		WithCullMode(wgpu.CullModeNone),
		WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
		WithVertexLayouts(layout),
	)

	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleStrip, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
	require.Len(t, p.VertexLayouts(), 1)
	assert.Equal(t, uint64(20), p.VertexLayouts()[0].ArrayStride)
}

func TestWithBlendStateNilGuard(t *testing.T) {
	p := NewPipeline("guarded", testProgram(t), WithBlendState(nil))
	assert.NotNil(t, p.BlendState())
}

func TestSetProgramSwapsSource(t *testing.T) {
	p := NewPipeline("swap", testProgram(t))

	next, err := shader.NewProgram("swap", testSource)
	require.NoError(t, err)
	p.SetProgram(next)
	assert.Equal(t, next, p.Program())
}
