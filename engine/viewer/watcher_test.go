package viewer

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRequestsReloadOnWrite(t *testing.T) {
	path := writeTestShader(t)
	v := NewViewer(WithShaderPath(path), WithFileWatching()).(*viewer)

	require.NoError(t, v.startWatcher())
	defer v.stopWatcher()

	require.NoError(t, os.WriteFile(path, []byte(testShaderSource), 0o644))

	assert.Eventually(t, func() bool {
		return v.pendingReload.Load() != nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeTestShader(t)
	v := NewViewer(WithShaderPath(path), WithFileWatching()).(*viewer)

	require.NoError(t, v.startWatcher())
	defer v.stopWatcher()

	other := path + ".bak"
	require.NoError(t, os.WriteFile(other, []byte("not a shader"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Nil(t, v.pendingReload.Load())
	assert.False(t, v.reloadInFlight.Load())
}

func TestStopWatcherIsIdempotent(t *testing.T) {
	v := NewViewer(WithShaderPath(writeTestShader(t))).(*viewer)

	// No watcher started; both calls must be no-ops.
	v.stopWatcher()
	v.stopWatcher()
}
