package shader

import (
	"fmt"
	"regexp"
)

var (
	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)
)

// parseEntryPoints extracts the vertex and fragment entry point names from
// WGSL source. A render program must declare exactly one of each stage.
//
// Parameters:
//   - source: the WGSL source text
//
// Returns:
//   - string: the vertex entry point name
//   - string: the fragment entry point name
//   - error: an error if either stage entry point is missing
func parseEntryPoints(source string) (string, string, error) {
	vs := vertexEntryRegex.FindStringSubmatch(source)
	if vs == nil {
		return "", "", fmt.Errorf("shader: no @vertex entry point found")
	}
	fs := fragmentEntryRegex.FindStringSubmatch(source)
	if fs == nil {
		return "", "", fmt.Errorf("shader: no @fragment entry point found")
	}
	return vs[1], fs[1], nil
}
