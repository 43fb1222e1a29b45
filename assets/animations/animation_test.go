package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopedClipWraps(t *testing.T) {
	a := NewAnimation("running", 0, 2, 1, 0, true)
	var frames []int
	for i := 0; i < 4; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, frames)
	assert.Equal(t, 1, a.Cycles)
	assert.False(t, a.Finished)
}

func TestOneShotClipHoldsLastFrame(t *testing.T) {
	a := NewAnimation("slash.0", 0, 2, 1, 0, false)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.True(t, a.Finished)
	assert.Equal(t, 2, a.Frame())
	assert.Equal(t, 1.0, a.Progress())

	a.Restart()
	assert.False(t, a.Finished)
	assert.Equal(t, 0, a.Frame())
}
