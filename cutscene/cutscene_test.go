package cutscene

import (
	"testing"
	"time"

	cfg "github.com/automoto/bladewood/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSequence(t *testing.T) *Sequence {
	t.Helper()
	l, _ := test.NewNullLogger()
	return New(logrus.NewEntry(l))
}

// clipTicks is how many frame intervals it takes to play every clip
func clipTicks() int {
	n := 0
	for _, c := range cfg.Cutscene.Clips {
		n += c.LastFrame + 1
	}
	return n
}

func playClips(s *Sequence) {
	s.Update(time.Duration(clipTicks()) * cfg.Cutscene.FrameInterval)
}

func TestClipsAdvanceFrameByFrame(t *testing.T) {
	s := newSequence(t)

	name, frame, ok := s.Clip()
	require.True(t, ok)
	assert.Equal(t, cfg.Cutscene.Clips[0].Name, name)
	assert.Equal(t, 0, frame)

	s.Update(cfg.Cutscene.FrameInterval)
	_, frame, _ = s.Clip()
	assert.Equal(t, 1, frame)

	// The last frame stays up for one interval before the next clip
	s.Update(time.Duration(cfg.Cutscene.Clips[0].LastFrame) * cfg.Cutscene.FrameInterval)
	name, frame, _ = s.Clip()
	assert.Equal(t, cfg.Cutscene.Clips[1].Name, name)
	assert.Equal(t, 0, frame)
}

func TestDialogueFollowsTheClips(t *testing.T) {
	s := newSequence(t)

	s.Update(time.Duration(clipTicks()-1) * cfg.Cutscene.FrameInterval)
	require.False(t, s.InDialogue())
	last := cfg.Cutscene.Clips[len(cfg.Cutscene.Clips)-1]
	name, frame, _ := s.Clip()
	assert.Equal(t, last.Name, name)
	assert.Equal(t, last.LastFrame, frame)

	s.Update(cfg.Cutscene.FrameInterval)
	assert.True(t, s.InDialogue())
	_, _, ok := s.Clip()
	assert.False(t, ok)
	assert.Equal(t, cfg.Cutscene.DialogueLines[0], s.Line())

	// Backdrop loops
	for i := 1; i <= cfg.Cutscene.BackdropFrames; i++ {
		s.Update(cfg.Cutscene.BackdropFrame)
		assert.Equal(t, i%cfg.Cutscene.BackdropFrames, s.Backdrop())
	}
}

func TestNextIsIgnoredDuringTheClips(t *testing.T) {
	s := newSequence(t)
	s.Next()
	assert.Equal(t, 0, s.Page())
	assert.False(t, s.Waiting())
}

func TestLastPageStartsTheGame(t *testing.T) {
	s := newSequence(t)
	playClips(s)

	for i := 0; i < cfg.Cutscene.DialoguePages; i++ {
		s.Next()
		assert.False(t, s.Ready())
	}
	assert.Equal(t, cfg.Cutscene.DialoguePages, s.Page())
	assert.Equal(t, cfg.Cutscene.DialogueLines[cfg.Cutscene.DialoguePages], s.Line())
	assert.False(t, s.Waiting())

	s.Next()
	assert.True(t, s.Waiting(), "still loading")
	assert.False(t, s.Ready())

	s.SetLoaded()
	assert.True(t, s.Ready())
	assert.False(t, s.Ready(), "hands over once")

	s.Next()
	assert.False(t, s.Ready())
}

func TestLoadingFirstWaitsForThePlayer(t *testing.T) {
	s := newSequence(t)
	s.SetLoaded()
	playClips(s)
	assert.False(t, s.Ready())

	s.Skip()
	assert.True(t, s.Ready())
}

func TestSkipStopsTheAnimations(t *testing.T) {
	s := newSequence(t)
	s.Update(3 * cfg.Cutscene.FrameInterval)

	s.Skip()
	_, _, ok := s.Clip()
	assert.False(t, ok)
	assert.True(t, s.Waiting())

	// Clock is cleared, nothing advances afterwards
	s.Update(time.Duration(clipTicks()) * cfg.Cutscene.FrameInterval)
	assert.False(t, s.InDialogue())
	assert.Equal(t, 0, s.Backdrop())
}

func TestFadeIn(t *testing.T) {
	s := newSequence(t)
	assert.Zero(t, s.Alpha())

	half := time.Duration(float64(cfg.Cutscene.FadeDuration) / 2 * float64(time.Second))
	s.Update(half)
	assert.InDelta(t, 0.5, s.Alpha(), 0.05)

	s.Update(half * 2)
	assert.Equal(t, float32(1), s.Alpha())
}
