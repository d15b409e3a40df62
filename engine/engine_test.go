package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/shaderpad/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow records registered callbacks and drives the update callback a
// fixed number of times when the message loop runs.
type fakeWindow struct {
	onUpdate      func()
	onResize      func(width, height int)
	onScaleChange func(xscale, yscale float32)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onCursorMove  func(x, y float64)

	frames int
	closed bool
}

func (f *fakeWindow) SetUpdateCallback(cb func())                      { f.onUpdate = cb }
func (f *fakeWindow) SetResizeCallback(cb func(int, int))              { f.onResize = cb }
func (f *fakeWindow) SetScaleChangeCallback(cb func(float32, float32)) { f.onScaleChange = cb }
func (f *fakeWindow) SetKeyDownCallback(cb func(uint32))               { f.onKeyDown = cb }
func (f *fakeWindow) SetKeyUpCallback(cb func(uint32))                 { f.onKeyUp = cb }
func (f *fakeWindow) SetCursorMoveCallback(cb func(float64, float64))  { f.onCursorMove = cb }
func (f *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor       { return nil }
func (f *fakeWindow) IsRunning() bool                                  { return !f.closed }
func (f *fakeWindow) ContentScale() (float32, float32)                 { return 2.0, 1.5 }
func (f *fakeWindow) Width() int                                       { return 800 }
func (f *fakeWindow) Height() int                                      { return 600 }

func (f *fakeWindow) Close() error {
	f.closed = true
	return nil
}

func (f *fakeWindow) ProcessMessages() {
	for i := 0; i < f.frames && !f.closed; i++ {
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}

// fakeViewer records the calls the engine forwards to it.
type fakeViewer struct {
	scales    [][2]float32
	resizes   [][2]int
	cursors   [][2]float64
	keys      []int
	updates   int
	renders   int
	renderErr error
}

func (f *fakeViewer) Init(_ renderer.Renderer) error { return nil }

func (f *fakeViewer) HandleKeyDown(key int) {
	f.keys = append(f.keys, key)
}

func (f *fakeViewer) HandleCursorMove(x, y float64) {
	f.cursors = append(f.cursors, [2]float64{x, y})
}

func (f *fakeViewer) HandleScaleChange(xscale, yscale float32) {
	f.scales = append(f.scales, [2]float32{xscale, yscale})
}

func (f *fakeViewer) HandleResize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeViewer) RequestReload() {}

func (f *fakeViewer) Update() {
	f.updates++
}

func (f *fakeViewer) Render() error {
	f.renders++
	return f.renderErr
}

func (f *fakeViewer) ActivePipelineKey() string { return "" }
func (f *fakeViewer) Background() wgpu.Color    { return wgpu.Color{} }
func (f *fakeViewer) Close()                    {}

func TestRunWiresCallbacksAndSeedsScale(t *testing.T) {
	fw := &fakeWindow{frames: 2}
	fv := &fakeViewer{}

	e := NewEngine(WithWindow(fw), WithViewer(fv))
	e.Run()

	// The window's content scale is forwarded before the loop starts so cursor
	// normalization is correct from the first frame.
	require.NotEmpty(t, fv.scales)
	assert.Equal(t, [2]float32{2.0, 1.5}, fv.scales[0])

	assert.Equal(t, 2, fv.updates)
	assert.Equal(t, 2, fv.renders)

	// Input callbacks forward to the viewer.
	require.NotNil(t, fw.onResize)
	fw.onResize(1024, 768)
	assert.Equal(t, [][2]int{{1024, 768}}, fv.resizes)

	require.NotNil(t, fw.onScaleChange)
	fw.onScaleChange(3.0, 3.0)
	assert.Equal(t, [2]float32{3.0, 3.0}, fv.scales[len(fv.scales)-1])

	require.NotNil(t, fw.onCursorMove)
	fw.onCursorMove(10, 20)
	assert.Equal(t, [][2]float64{{10, 20}}, fv.cursors)

	require.NotNil(t, fw.onKeyDown)
	fw.onKeyDown(32)
	assert.Equal(t, []int{32}, fv.keys)
}

func TestRunStopsOnRenderError(t *testing.T) {
	fw := &fakeWindow{frames: 5}
	fv := &fakeViewer{renderErr: errors.New("out of memory")}

	e := NewEngine(WithWindow(fw), WithViewer(fv))
	e.Run()

	assert.True(t, fw.closed)
	assert.Equal(t, 1, fv.renders)
}

func TestRunPanicsWithoutWindowOrViewer(t *testing.T) {
	assert.Panics(t, func() {
		NewEngine(WithViewer(&fakeViewer{})).Run()
	})
	assert.Panics(t, func() {
		NewEngine(WithWindow(&fakeWindow{})).Run()
	})
}
