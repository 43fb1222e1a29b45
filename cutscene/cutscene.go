// Package cutscene sequences the intro: sprite clips, then the paged dialogue
// over a looping backdrop. The game is loaded in the background meanwhile and
// the sequence only hands over once both the player and the loader are done.
package cutscene

import (
	"time"

	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/schedule"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Sequence struct {
	clock *schedule.Scheduler
	log   *logrus.Entry

	clip     int
	frame    int
	backdrop int
	page     int

	dialogue bool // clips are over
	skipped  bool
	finished bool
	canPlay  bool
	loaded   bool

	clipTimer     schedule.EventID
	backdropTimer schedule.EventID

	fade  *gween.Tween
	alpha float32
}

// New returns a sequence at the first frame of the first clip. Nothing runs
// until Update is called.
func New(log *logrus.Entry) *Sequence {
	s := &Sequence{
		clock: schedule.New(),
		log:   log,
		fade:  gween.New(0, 1, cfg.Cutscene.FadeDuration, ease.Linear),
	}
	if len(cfg.Cutscene.Clips) == 0 {
		s.startDialogue()
		return s
	}
	s.clipTimer = s.clock.Every(cfg.Cutscene.FrameInterval, s.advanceClip)
	return s
}

// Update moves the sequence forward by dt
func (s *Sequence) Update(dt time.Duration) {
	s.clock.Advance(dt)
	if s.fade != nil {
		alpha, done := s.fade.Update(float32(dt.Seconds()))
		s.alpha = alpha
		if done {
			s.alpha = 1
			s.fade = nil
		}
	}
}

func (s *Sequence) advanceClip() {
	clips := cfg.Cutscene.Clips
	if s.frame < clips[s.clip].LastFrame {
		s.frame++
		return
	}
	if s.clip < len(clips)-1 {
		s.clip++
		s.frame = 0
		return
	}
	s.clock.Cancel(s.clipTimer)
	s.startDialogue()
}

func (s *Sequence) startDialogue() {
	s.dialogue = true
	s.backdropTimer = s.clock.Every(cfg.Cutscene.BackdropFrame, func() {
		s.backdrop = (s.backdrop + 1) % max(cfg.Cutscene.BackdropFrames, 1)
	})
	s.log.Debug("intro clips finished")
}

// Clip returns the name and frame of the clip on screen. ok is false once
// the dialogue has taken over.
func (s *Sequence) Clip() (name string, frame int, ok bool) {
	if s.dialogue || s.skipped {
		return "", 0, false
	}
	return cfg.Cutscene.Clips[s.clip].Name, s.frame, true
}

func (s *Sequence) InDialogue() bool {
	return s.dialogue && !s.skipped
}

func (s *Sequence) Backdrop() int {
	return s.backdrop
}

func (s *Sequence) Page() int {
	return s.page
}

// Line is the dialogue text of the current page
func (s *Sequence) Line() string {
	if s.page < len(cfg.Cutscene.DialogueLines) {
		return cfg.Cutscene.DialogueLines[s.page]
	}
	return ""
}

// Next turns the dialogue page. Pressing it on the last page asks to start
// the game. It does nothing before the dialogue is shown.
func (s *Sequence) Next() {
	if !s.InDialogue() || s.finished {
		return
	}
	if s.page < cfg.Cutscene.DialoguePages {
		s.page++
		return
	}
	s.finish()
	s.log.Debug("dialogue finished")
}

// Skip stops every animation and asks to start the game
func (s *Sequence) Skip() {
	if s.skipped || s.finished {
		return
	}
	s.skipped = true
	s.finish()
	s.log.Debug("intro skipped")
}

func (s *Sequence) finish() {
	s.clock.Clear()
	s.finished = true
	s.canPlay = true
}

// SetLoaded marks the background load as done
func (s *Sequence) SetLoaded() {
	s.loaded = true
}

// Waiting reports that the player is done but the game is still loading
func (s *Sequence) Waiting() bool {
	return s.canPlay && !s.loaded
}

// Ready reports true exactly once, when both the player and the loader are
// done.
func (s *Sequence) Ready() bool {
	if s.loaded && s.canPlay {
		s.canPlay = false
		return true
	}
	return false
}

// Alpha is the fade-in of the scene, 0 to 1
func (s *Sequence) Alpha() float32 {
	return s.alpha
}
