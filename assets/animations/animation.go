package animations

type Animation struct {
	Clip       string
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame
	Loop       bool    // wrap to First, otherwise hold Last once finished

	frameCounter float32
	frame        int
	Cycles       int // times the clip ran past Last
	Finished     bool
}

func (a *Animation) Update() {
	if a.Finished {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Cycles++
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
				a.Finished = true
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is how far through the clip the current frame is, 0..1
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 1
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Finished = false
}

func NewAnimation(clip string, first, last, step int, speed float32, loop bool) *Animation {
	return &Animation{
		Clip:         clip,
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Loop:         loop,
		frameCounter: speed,
		frame:        first,
	}
}
