package uniform

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUniformMarshal(t *testing.T) {
	u := &TimeUniform{Millis: 1500}

	buf := u.Marshal()
	require.Len(t, buf, u.Size())
	assert.Equal(t, uint32(1500), binary.LittleEndian.Uint32(buf))
}

func TestTimeUniformUpdateMonotonic(t *testing.T) {
	u := &TimeUniform{}
	start := time.Now().Add(-2 * time.Second)

	u.Update(start)
	first := u.Millis
	assert.GreaterOrEqual(t, first, uint32(2000))

	u.Update(start)
	assert.GreaterOrEqual(t, u.Millis, first)
}

func TestMouseUniformFlipsY(t *testing.T) {
	m := &MouseUniform{}
	m.SetNormalized(0.5, 0.75)

	assert.InDelta(t, 0.5, m.Position[0], 1e-6)
	assert.InDelta(t, 0.25, m.Position[1], 1e-6)
}

func TestMouseUniformMarshal(t *testing.T) {
	m := &MouseUniform{Position: [2]float32{0.25, 0.5}}

	buf := m.Marshal()
	require.Len(t, buf, m.Size())
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
}

func TestNewBindingDefaults(t *testing.T) {
	value := &TimeUniform{Millis: 42}
	b := NewBinding("time", 0, value)

	assert.Equal(t, uint32(0), b.Group())
	assert.Equal(t, value, b.Value())

	entries := b.Provider().LayoutEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, uint32(0), entries[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, entries[0].Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entries[0].Buffer.Type)
	assert.Equal(t, uint64(4), entries[0].Buffer.MinBindingSize)
}

func TestNewBindingVisibilityOverride(t *testing.T) {
	b := NewBinding("mouse", 1, &MouseUniform{}, WithVisibility(wgpu.ShaderStageFragment))

	entries := b.Provider().LayoutEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, wgpu.ShaderStageFragment, entries[0].Visibility)
}

func TestBindingStageWrite(t *testing.T) {
	value := &TimeUniform{Millis: 7}
	b := NewBinding("time", 0, value)

	w := b.StageWrite()
	assert.Equal(t, b.Provider(), w.Provider)
	assert.Equal(t, 0, w.Binding)
	assert.Equal(t, uint64(0), w.Offset)
	assert.Equal(t, value.Marshal(), w.Data)

	value.Millis = 9
	assert.Equal(t, uint32(9), binary.LittleEndian.Uint32(b.StageWrite().Data))
}
