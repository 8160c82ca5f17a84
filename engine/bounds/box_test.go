package bounds

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPoints(t *testing.T) {
	box := FromPoints([]mgl32.Vec3{
		{1, 2, 3},
		{4, 5, 6},
		{-1, 0, 2},
	})

	require.False(t, box.Empty())
	assert.Equal(t, mgl32.Vec3{-1, 0, 2}, box.Min)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, box.Max)
	assert.Equal(t, mgl32.Vec3{5, 5, 4}, box.Size())
	assert.Equal(t, mgl32.Vec3{1.5, 2.5, 4}, box.Center())
}

func TestFromPointsEmpty(t *testing.T) {
	for name, pts := range map[string][]mgl32.Vec3{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			box := FromPoints(pts)
			assert.True(t, box.Empty())
			assert.Equal(t, mgl32.Vec3{}, box.Size())
			assert.Equal(t, [CornerCount]mgl32.Vec3{}, box.Corners())
		})
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var box Box
	assert.True(t, box.Empty())
}

func TestSinglePointBox(t *testing.T) {
	box := FromPoints([]mgl32.Vec3{{2, 2, 2}})
	require.False(t, box.Empty())
	for _, c := range box.Corners() {
		assert.Equal(t, mgl32.Vec3{2, 2, 2}, c)
	}
}

func TestNewSortsAxes(t *testing.T) {
	box := New(mgl32.Vec3{1, -1, 5}, mgl32.Vec3{-1, 1, 3})
	assert.Equal(t, mgl32.Vec3{-1, -1, 3}, box.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 5}, box.Max)
}

func TestCornersOrder(t *testing.T) {
	box := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 3})
	corners := box.Corners()

	expected := [CornerCount]mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 2, 0},
		{1, 2, 0},
		{0, 0, 3},
		{1, 0, 3},
		{0, 2, 3},
		{1, 2, 3},
	}
	assert.Equal(t, expected, corners)
	assert.Equal(t, box.Min, corners[0])
	assert.Equal(t, box.Max, corners[7])
}
