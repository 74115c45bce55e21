package view

import (
	"time"

	"stonecrawl/pkg/game/gameplay"
)

// startTick schedules the next world tick.
func (v *View) startTick() {
	v.tick.Cancel()
	v.tick = v.timers.After(TickInterval, v.onTick)
}

func (v *View) onTick(time.Time) {
	v.tick = nil
	if !v.session.InQuest() {
		return
	}
	gameplay.Tick(v.session)
	v.dirty = true
	if v.session.InQuest() {
		v.startTick()
	}
}

// startFlash inverts the frame n times, each inversion lasting
// FlashInterval followed by FlashInterval upright. Flashes requested while
// one is running are added to it.
func (v *View) startFlash(n int) {
	v.flashesDue += n
	if v.flash.Pending() {
		return
	}
	v.fs.Flash = true
	v.flashesDue--
	v.dirty = true
	v.flash = v.timers.After(FlashInterval, v.onFlash)
}

func (v *View) onFlash(time.Time) {
	v.dirty = true
	if v.fs.Flash {
		v.fs.Flash = false
		if v.flashesDue > 0 {
			v.flash = v.timers.After(FlashInterval, v.onFlash)
		} else {
			v.flash = nil
		}
		return
	}
	v.fs.Flash = true
	v.flashesDue--
	v.flash = v.timers.After(FlashInterval, v.onFlash)
}

// startAttackPose steps through the attack pose, one step per
// AttackStepInterval.
func (v *View) startAttackPose() {
	v.attack.Cancel()
	v.fs.AttackStep = 1
	v.dirty = true
	v.attack = v.timers.After(AttackStepInterval, v.onAttackStep)
}

func (v *View) onAttackStep(time.Time) {
	v.dirty = true
	if v.fs.AttackStep >= AttackSteps {
		v.fs.AttackStep = 0
		v.attack = nil
		return
	}
	v.fs.AttackStep++
	v.attack = v.timers.After(AttackStepInterval, v.onAttackStep)
}

// stopAnimations cancels every running timer and clears the effects they
// were drawing.
func (v *View) stopAnimations() {
	v.timers.CancelAll()
	v.flash, v.attack, v.tick = nil, nil, nil
	v.flashesDue = 0
	v.fs.Flash = false
	v.fs.AttackStep = 0
	v.dirty = true
}
