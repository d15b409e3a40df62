package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, 3.5, Coalesce(3.5))
}

func TestSliceToBytes(t *testing.T) {
	data := []uint32{0x01020304}

	buf := SliceToBytes(data)
	require.Len(t, buf, 4)
	// Byte order follows the host's native layout; x86 and arm64 are little-endian.
	assert.Equal(t, byte(0x04), buf[0])
	assert.Equal(t, byte(0x01), buf[3])
}

func TestSliceToBytesEmpty(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Nil(t, SliceToBytes[uint16](nil))
}
