package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSource = `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) tex_coords: vec2<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) tex_coords: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(in.position, 1.0);
    out.tex_coords = in.tex_coords;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.tex_coords, 0.0, 1.0);
}
`

func TestNewProgramParsesEntryPoints(t *testing.T) {
	p, err := NewProgram("test", validSource)
	require.NoError(t, err)

	assert.Equal(t, "test", p.Key())
	assert.Equal(t, "vs_main", p.VertexEntryPoint())
	assert.Equal(t, "fs_main", p.FragmentEntryPoint())
	assert.Equal(t, validSource, p.Source())
	require.NotNil(t, p.Module())
	assert.Equal(t, "test", p.Module().Label)
	assert.Equal(t, validSource, p.Module().WGSLDescriptor.Code)
}

func TestNewProgramRejectsInvalidSource(t *testing.T) {
	_, err := NewProgram("broken", "@vertex fn vs_main( -> this is not wgsl")
	assert.Error(t, err)
}

func TestNewProgramRequiresFragmentStage(t *testing.T) {
	src := `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	_, err := NewProgram("vertex-only", src)
	assert.Error(t, err)
}

func TestLoadProgramReadsFreshFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shader.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(validSource), 0o644))

	p, err := LoadProgram("disk", path)
	require.NoError(t, err)
	assert.Equal(t, "vs_main", p.VertexEntryPoint())
}

func TestLoadProgramMissingFile(t *testing.T) {
	_, err := LoadProgram("missing", filepath.Join(t.TempDir(), "nope.wgsl"))
	assert.Error(t, err)
}

func TestValidateAcceptsValidSource(t *testing.T) {
	assert.NoError(t, Validate(validSource))
}
