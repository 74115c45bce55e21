// Package view ties a session to the screen. It owns the frame bitmap, the
// scene renderer and every running animation, and turns input intents and
// host clock ticks into session updates and redraws.
//
// A View is not safe for concurrent use; the host loop drives it from one
// goroutine.
package view

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/engine/timer"
	"stonecrawl/pkg/game/gameplay"
	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/renderer/scene"
	"stonecrawl/pkg/game/state"
	gameworld "stonecrawl/pkg/game/world"
	"stonecrawl/pkg/logger"
)

// Animation timing.
const (
	FlashInterval      = 20 * time.Millisecond
	AttackStepInterval = 20 * time.Millisecond
	AttackSteps        = 2
	TickInterval       = time.Second

	// hitFlashes is how many times the screen flashes when the player is hit.
	hitFlashes = 2
)

// Cue is the audible feedback for a hit. *audio.Player satisfies it.
type Cue interface {
	Pulse()
}

type nopCue struct{}

func (nopCue) Pulse() {}

// Hooks are the side actions a View delegates to its host.
type Hooks struct {
	// Screenshot saves the frame; it returns where it went.
	Screenshot func(frame *surface.Bitmap) (string, error)
	// MapDump writes a debug dump of the current dungeon.
	MapDump func(s *state.Session) (string, error)
}

// View presents one session.
type View struct {
	session  *state.Session
	renderer *scene.Renderer
	frame    *surface.Bitmap
	timers   *timer.Scheduler
	cue      Cue
	hooks    Hooks

	flash      *timer.Handle
	attack     *timer.Handle
	tick       *timer.Handle
	flashesDue int
	fs         scene.FrameState

	dirty  bool
	quit   bool
	closed bool
}

// New creates a view over s starting its clock at now and registers itself
// as the session's listener. A nil cue is silent.
func New(s *state.Session, cue Cue, hooks Hooks, now time.Time) (*View, error) {
	r, err := scene.New()
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	if cue == nil {
		cue = nopCue{}
	}
	v := &View{
		session:  s,
		renderer: r,
		frame:    scene.NewSurface(),
		timers:   timer.NewScheduler(now),
		cue:      cue,
		hooks:    hooks,
		dirty:    true,
	}
	s.Listener = v
	if s.InQuest() {
		v.startTick()
	} else {
		s.AddMessage(locale.Get("KEY_HELP"))
		s.AddMessage(locale.Get("NEW_QUEST_PROMPT"))
	}
	return v, nil
}

// Session returns the session the view presents.
func (v *View) Session() *state.Session {
	return v.session
}

// Done reports whether the player asked to quit.
func (v *View) Done() bool {
	return v.quit
}

// Advance moves the view's clock to now, running any animation frames and
// world ticks that fell due.
func (v *View) Advance(now time.Time) {
	if v.closed {
		return
	}
	v.timers.Advance(now)
}

// Handle applies one input intent.
func (v *View) Handle(intent engineinput.Intent) error {
	if v.closed {
		return nil
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return nil
	case engineinput.ActionQuit:
		v.quit = true
		return nil
	case engineinput.ActionScreenshot:
		return v.screenshot()
	case engineinput.ActionMapDump:
		return v.mapDump()
	}

	r, err := gameplay.ProcessIntent(v.session, intent)
	if err != nil {
		return err
	}
	v.dirty = true

	if r.QuestStarted {
		v.stopAnimations()
		v.startTick()
	}
	if r.Attacked {
		v.startFlash(1)
		v.startAttackPose()
	}
	return nil
}

// Frame renders the scene if anything changed and returns the bitmap. The
// bitmap is reused between calls.
func (v *View) Frame() *surface.Bitmap {
	if v.dirty {
		v.fs.Now = v.timers.Now()
		v.renderer.Render(v.frame, v.session.Quest, v.session.Player, v.fs)
		v.dirty = false
	}
	return v.frame
}

// Dirty reports whether the next Frame call redraws.
func (v *View) Dirty() bool {
	return v.dirty
}

// Messages returns the session's recent messages, oldest first.
func (v *View) Messages() []string {
	return v.session.Messages
}

// Close cancels every pending timer. The view ignores input afterwards.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.timers.CancelAll()
	v.flash, v.attack, v.tick = nil, nil, nil
	if v.session.Listener == state.Listener(v) {
		v.session.Listener = state.NopListener{}
	}
}

// Pending is the number of live timers.
func (v *View) Pending() int {
	return v.timers.Len()
}

// QuestEnded implements state.Listener.
func (v *View) QuestEnded(success bool, reward int) {
	v.stopAnimations()
	v.dirty = true
	v.session.AddMessage(locale.Get("NEW_QUEST_PROMPT"))
	logger.Log.WithFields(logrus.Fields{
		"success":   success,
		"reward":    reward,
		"completed": v.session.QuestsCompleted,
	}).Debug("view: quest ended")
}

// PlayerDied implements state.Listener.
func (v *View) PlayerDied() {
	v.stopAnimations()
	v.dirty = true
	v.session.AddMessage(locale.Get("NEW_QUEST_PROMPT"))
}

// PlayerHit implements state.Listener.
func (v *View) PlayerHit(damage int) {
	v.cue.Pulse()
	v.startFlash(hitFlashes)
	logger.Log.WithField("damage", damage).Trace("view: player hit")
}

// LootFound implements state.Listener.
func (v *View) LootFound(item gameworld.Item) {
	v.dirty = true
}
