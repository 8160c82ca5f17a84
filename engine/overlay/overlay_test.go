package overlay

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestOverlayDefaults(t *testing.T) {
	o := newOverlayConfig()
	assert.Equal(t, 1024, o.maxQuads)
	assert.Equal(t, float32(1), o.aspect)
	assert.False(t, o.forceFallbackAdapter)
}

func TestOverlayOptions(t *testing.T) {
	bg := wgpu.Color{R: 1, A: 1}
	o := newOverlayConfig(WithMaxQuads(8), WithClearColor(bg), WithForceFallbackAdapter(true))
	assert.Equal(t, 8, o.maxQuads)
	assert.Equal(t, bg, o.clearColor)
	assert.True(t, o.forceFallbackAdapter)

	o = newOverlayConfig(WithMaxQuads(0))
	assert.Equal(t, 1024, o.maxQuads)
}

func TestBufferCapacities(t *testing.T) {
	o := newOverlayConfig(WithMaxQuads(10))
	// 4 vertices of 12 bytes and 6 uint32 indices per quad
	assert.Equal(t, uint64(480), o.vertexCapacity())
	assert.Equal(t, uint64(240), o.indexCapacity())
}

func TestDrawBeforeResize(t *testing.T) {
	o := newOverlayConfig()
	assert.ErrorIs(t, o.Draw(nil), ErrNoSurface)
	o.Release()
}

func TestReleasePartialOverlay(t *testing.T) {
	// nothing past the config was created, as after a failed adapter request
	o := newOverlayConfig()
	assert.NotPanics(t, o.Release)
	assert.NotPanics(t, o.Release)
	assert.Nil(t, o.instance)
	assert.Nil(t, o.surface)
	assert.False(t, o.configured)
}
