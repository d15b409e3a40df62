package uniform

import (
	"encoding/binary"
	"math"
	"time"
)

// Value is implemented by CPU-side uniform values that serialize themselves for GPU upload.
type Value interface {
	// Size returns the size of the serialized value in bytes.
	//
	// Returns:
	//   - int: the size in bytes
	Size() int

	// Marshal serializes the value into a byte buffer suitable for GPU upload.
	//
	// Returns:
	//   - []byte: the serialized value
	Marshal() []byte
}

// TimeUniform carries elapsed run time for shaders as whole milliseconds.
// Matches the WGSL declaration `var<uniform> u_time: u32;`.
// Size: 4 bytes.
type TimeUniform struct {
	// Millis is the elapsed time since application start, in milliseconds.
	Millis uint32
}

// Update sets the elapsed time relative to the given start instant.
// The value is derived from the monotonic clock, so wall-clock adjustments
// never move it backwards.
//
// Parameters:
//   - start: the instant the application started
func (t *TimeUniform) Update(start time.Time) {
	t.Millis = uint32(time.Since(start).Milliseconds())
}

// Size returns the size of the serialized TimeUniform in bytes.
//
// Returns:
//   - int: the size in bytes.
func (t *TimeUniform) Size() int {
	return 4
}

// Marshal serializes the TimeUniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 4-byte buffer ready for GPU upload.
func (t *TimeUniform) Marshal() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, t.Millis)
	return buf
}

// MouseUniform carries the cursor position for shaders as normalized coordinates.
// Matches the WGSL declaration `var<uniform> u_mouse: vec2<f32>;`.
// The stored y is flipped so the origin sits at the bottom-left, matching
// shader texture space rather than window space.
// Size: 8 bytes.
type MouseUniform struct {
	// Position is the normalized cursor position, x in [0,1] left to right,
	// y in [0,1] bottom to top.
	Position [2]float32
}

// SetNormalized stores a cursor position given in window-normalized coordinates,
// where y runs top to bottom. The y axis is flipped on the way in.
//
// Parameters:
//   - x: normalized cursor x, 0 at the left edge
//   - y: normalized cursor y, 0 at the top edge
func (m *MouseUniform) SetNormalized(x, y float32) {
	m.Position = [2]float32{x, 1.0 - y}
}

// Size returns the size of the serialized MouseUniform in bytes.
//
// Returns:
//   - int: the size in bytes.
func (m *MouseUniform) Size() int {
	return 8
}

// Marshal serializes the MouseUniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 8-byte buffer ready for GPU upload.
func (m *MouseUniform) Marshal() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(m.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(m.Position[1]))
	return buf
}
