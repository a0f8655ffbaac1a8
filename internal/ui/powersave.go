package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// idleAfter is how long after the last input or match change the loop stays
// at full rate.
const idleAfter = 2 * time.Second

// frameGovernor drops the tick rate while nothing happens on screen.
type frameGovernor struct {
	perfOn     bool
	booted     bool
	lastActive time.Time
}

func newFrameGovernor() *frameGovernor {
	return &frameGovernor{perfOn: true, lastActive: time.Now()} // full rate for the first frames
}

// touch records activity and switches to full rate right away.
func (f *frameGovernor) touch(now time.Time) {
	f.lastActive = now
	f.enterPerf()
}

// tick is called once per Update.
func (f *frameGovernor) tick(now time.Time) {
	if !f.booted {
		f.booted = true
		f.leavePerf(true)
		return
	}
	if now.Sub(f.lastActive) < idleAfter {
		f.enterPerf()
	} else {
		f.leavePerf(false)
	}
}

func (f *frameGovernor) enterPerf() {
	if f.perfOn {
		return
	}
	ebiten.SetFPSMode(ebiten.FPSModeVsyncOn)
	ebiten.SetTPS(30)
	f.perfOn = true
}

func (f *frameGovernor) leavePerf(force bool) {
	if !f.perfOn && !force {
		return
	}
	ebiten.SetFPSMode(ebiten.FPSModeVsyncOffMinimum)
	ebiten.SetTPS(10)
	f.perfOn = false
}
