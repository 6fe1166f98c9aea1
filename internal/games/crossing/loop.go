package crossing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// DefaultMaxFrameDelta caps the time step of a single frame, in seconds.
const DefaultMaxFrameDelta = 0.25

// FrameID identifies a requested frame so it can be cancelled.
type FrameID uint64

// FrameFunc is called by the host when a requested frame fires.
type FrameFunc func()

// FrameScheduler is the host's "call me on the next frame" primitive.
// Each request fires at most once, never before RequestFrame returns.
// A cancelled request never fires.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Loop drives a Session from host frames. It measures elapsed time, ticks
// the session, renders, and keeps requesting frames while the game runs.
type Loop struct {
	session   *Session
	renderer  Renderer
	scheduler FrameScheduler
	clock     core.Clock
	logger    *log.Logger
	maxDelta  float64

	last       time.Time
	pending    FrameID
	hasPending bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the loop's logger. The default discards everything.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMaxFrameDelta sets the largest time step a frame may apply.
func WithMaxFrameDelta(seconds float64) LoopOption {
	return func(l *Loop) {
		if seconds > 0 {
			l.maxDelta = seconds
		}
	}
}

// NewLoop creates a loop. Nothing is scheduled until Start.
func NewLoop(session *Session, renderer Renderer, scheduler FrameScheduler, clock core.Clock, opts ...LoopOption) *Loop {
	l := &Loop{
		session:   session,
		renderer:  renderer,
		scheduler: scheduler,
		clock:     clock,
		logger:    log.New(io.Discard),
		maxDelta:  DefaultMaxFrameDelta,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Pending reports whether a frame is currently requested.
func (l *Loop) Pending() bool {
	return l.hasPending
}

// Start begins a game and requests the first frame.
func (l *Loop) Start() bool {
	if !l.session.Start() {
		return false
	}
	l.logger.Info("game started", "lives", l.session.Lives(), "enemies", len(l.session.enemies))
	l.prime()
	return true
}

// Stop aborts the game, cancels the pending frame and draws the idle board.
func (l *Loop) Stop() bool {
	l.Halt()
	if !l.session.Stop() {
		return false
	}
	l.logger.Info("game stopped")
	l.Render()
	return true
}

// Reset stops and restarts a running or ended game.
func (l *Loop) Reset() bool {
	l.Halt()
	if !l.session.Reset() {
		return false
	}
	l.logger.Info("game reset", "lives", l.session.Lives())
	l.prime()
	return true
}

// Move forwards a player move to the session. The next frame shows it.
func (l *Loop) Move(d Direction) bool {
	if !l.session.Move(d) {
		return false
	}
	p := l.session.Player()
	l.logger.Debug("player moved", "dir", d, "col", p.Col, "row", p.Row)
	return true
}

// Halt cancels the pending frame, if any. Safe to call repeatedly.
func (l *Loop) Halt() {
	if !l.hasPending {
		return
	}
	l.scheduler.CancelFrame(l.pending)
	l.hasPending = false
}

// Render draws the current state, with the status banner once ended.
func (l *Loop) Render() {
	if l.renderer == nil {
		return
	}
	snap := l.session.Snapshot()
	l.renderer.DrawBoard(l.session.board.Layout(), snap)
	if snap.Phase != PhaseEnded {
		return
	}
	if msg, bg, fg, ok := statusFor(snap.Outcome); ok {
		l.renderer.DrawStatus(msg, bg, fg)
	}
}

// prime resets the frame clock, draws the first frame and schedules the next.
func (l *Loop) prime() {
	l.last = l.clock.Now()
	l.Render()
	l.request()
}

func (l *Loop) request() {
	var id FrameID
	id = l.scheduler.RequestFrame(func() { l.frame(id) })
	l.pending = id
	l.hasPending = true
}

// frame runs one tick. Callbacks for a cancelled or superseded request
// return without touching the session.
func (l *Loop) frame(id FrameID) {
	if !l.hasPending || id != l.pending {
		return
	}
	l.hasPending = false

	now := l.clock.Now()
	dt := core.ClampF(now.Sub(l.last).Seconds(), 0, l.maxDelta)
	l.last = now

	result := l.session.Tick(dt)
	if result.Collided {
		l.logger.Info("collision", "enemy", result.HitEnemy, "lives", l.session.Lives())
	}
	if result.Respawned > 0 {
		l.logger.Debug("enemies respawned", "count", result.Respawned)
	}
	if result.Ended {
		l.logger.Info("game over", "outcome", result.Outcome, "tick", l.session.tick)
	}

	l.Render()

	if l.session.Running() {
		l.request()
	}
}
