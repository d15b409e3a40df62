package shader

import (
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
)

// program is the implementation of the Program interface.
// It holds the persistent shader data required for pipeline creation.
type program struct {
	key           string
	source        string
	vertexEntry   string
	fragmentEntry string
	module        *wgpu.ShaderModuleDescriptor
}

// Program defines the interface for a loaded and validated WGSL shader program.
// A program carries both the vertex and fragment stage entry points of a single
// WGSL source file, its unique key, and the wgpu module descriptor needed for
// pipeline creation.
type Program interface {
	// Key retrieves the unique identifier for this program, used for caching and lookups.
	//
	// Returns:
	//   - string: the program's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the program
	Source() string

	// VertexEntryPoint returns the name of the @vertex entry function.
	//
	// Returns:
	//   - string: the vertex entry point name (e.g. "vs_main")
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the @fragment entry function.
	//
	// Returns:
	//   - string: the fragment entry point name (e.g. "fs_main")
	FragmentEntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this program.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Program = &program{}

// NewProgram creates a Program from in-memory WGSL source. The source is
// compiled CPU-side first so that malformed shaders are rejected before any
// GPU pipeline object is touched, then both stage entry points are parsed.
//
// Parameters:
//   - key: a unique identifier for the program, used for caching and lookups
//   - source: the WGSL source text containing @vertex and @fragment entry points
//
// Returns:
//   - Program: the validated program
//   - error: an error if the source fails validation or lacks an entry point
func NewProgram(key, source string) (Program, error) {
	if err := Validate(source); err != nil {
		return nil, err
	}

	vertexEntry, fragmentEntry, err := parseEntryPoints(source)
	if err != nil {
		return nil, err
	}

	return &program{
		key:           key,
		source:        source,
		vertexEntry:   vertexEntry,
		fragmentEntry: fragmentEntry,
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: source,
			},
		},
	}, nil
}

// LoadProgram reads WGSL source from disk at the given path and creates a
// Program from it. The file is read fresh on every call, so repeated loads
// pick up on-disk edits.
//
// Parameters:
//   - key: a unique identifier for the program
//   - path: the file path to read WGSL source from
//
// Returns:
//   - Program: the validated program
//   - error: an error if the file cannot be read or the source is invalid
func LoadProgram(key, path string) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to read source file %q: %w", path, err)
	}
	return NewProgram(key, string(data))
}

// Validate compiles the WGSL source CPU-side and reports any compilation error.
// Used on the hot-reload path to reject bad shader edits without touching the
// GPU device or the live pipeline.
//
// Parameters:
//   - source: the WGSL source text to check
//
// Returns:
//   - error: an error describing the compile failure, or nil if the source is valid
func Validate(source string) error {
	if _, err := naga.Compile(source); err != nil {
		return fmt.Errorf("shader: validation failed: %w", err)
	}
	return nil
}

func (p *program) Key() string {
	return p.key
}

func (p *program) Source() string {
	return p.source
}

func (p *program) VertexEntryPoint() string {
	return p.vertexEntry
}

func (p *program) FragmentEntryPoint() string {
	return p.fragmentEntry
}

func (p *program) Module() *wgpu.ShaderModuleDescriptor {
	return p.module
}
