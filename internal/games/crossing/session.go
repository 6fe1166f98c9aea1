package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Phase is the coarse session state.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start, or after a stop
	PhaseRunning              // Simulation advancing
	PhaseEnded                // Won or lost; frozen until reset
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is the result of a game.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Advanced  bool    // False when the session was not running
	Respawned int     // Enemies that wrapped around this tick
	Collided  bool    // At most one collision is registered per tick
	HitEnemy  int     // Index of the colliding enemy, -1 if none
	Outcome   Outcome // Outcome after the status check
	Ended     bool    // The session entered PhaseEnded this tick
}

// Session owns one game: the player, a fixed set of enemies and the
// win/loss state machine. Commands that make no sense in the current phase
// are ignored.
type Session struct {
	board     Board
	lifeLimit int
	rng       *rand.Rand

	player  Player
	enemies []Enemy

	phase   Phase
	outcome Outcome
	tick    uint64
}

// NewSession creates an idle session. enemyCount fixes the number of
// enemies for the session's lifetime.
func NewSession(board Board, lifeLimit, enemyCount int, seed int64) *Session {
	s := &Session{
		board:     board,
		lifeLimit: lifeLimit,
		rng:       rand.New(rand.NewSource(seed)),
		enemies:   make([]Enemy, enemyCount),
	}
	s.player.ToHome(board)
	s.player.UpdatePosition(board)
	for i := range s.enemies {
		s.enemies[i].Spawn(s.rng, board)
	}
	return s
}

// NewSessionFromConfig creates an idle session from a loaded configuration.
func NewSessionFromConfig(cfg config.CrossingConfig, images ImageSource, seed int64) *Session {
	return NewSession(NewBoard(cfg, images), cfg.Rules.LifeLimit, cfg.Enemies.Count, seed)
}

// Start begins a game from Idle. From Ended it behaves as Reset.
// Returns false if a game was already running.
func (s *Session) Start() bool {
	switch s.phase {
	case PhaseRunning:
		return false
	case PhaseEnded:
		s.Stop()
	}

	s.player.Collisions = 0
	s.player.ToHome(s.board)
	s.player.UpdatePosition(s.board)
	for i := range s.enemies {
		s.enemies[i].Spawn(s.rng, s.board)
	}
	s.outcome = OutcomeInProgress
	s.tick = 0
	s.phase = PhaseRunning
	return true
}

// Stop aborts the current game or clears an ended one, returning to Idle.
// Stopping an idle session is a no-op. Returns true if the phase changed.
func (s *Session) Stop() bool {
	if s.phase == PhaseIdle {
		return false
	}
	s.phase = PhaseIdle
	s.outcome = OutcomeInProgress
	return true
}

// Reset is Stop followed by Start for a running or ended game. With no
// game active it is a no-op. Returns true if a new game started.
func (s *Session) Reset() bool {
	if s.phase == PhaseIdle {
		return false
	}
	s.Stop()
	return s.Start()
}

// Move steps the player one cell. Ignored unless running.
func (s *Session) Move(d Direction) bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.player.MoveBy(d, s.board)
	return true
}

// Tick advances the simulation by dt seconds: enemies move, the player's
// pixel position is refreshed, at most one collision is applied and the
// win/loss conditions are evaluated, in that order.
func (s *Session) Tick(dt float64) TickResult {
	result := TickResult{HitEnemy: -1, Outcome: s.outcome}
	if s.phase != PhaseRunning {
		return result
	}
	if dt < 0 {
		dt = 0
	}

	result.Advanced = true
	s.tick++

	for i := range s.enemies {
		if s.enemies[i].Update(dt, s.rng, s.board) {
			result.Respawned++
		}
	}

	s.player.UpdatePosition(s.board)

	if hit := FirstCollision(s.player, s.enemies, s.board); hit >= 0 {
		s.player.Collisions++
		s.player.ToHome(s.board)
		s.player.UpdatePosition(s.board)
		result.Collided = true
		result.HitEnemy = hit
	}

	result.Ended = s.checkStatus()
	result.Outcome = s.outcome
	return result
}

// checkStatus applies the terminal conditions. A loss wins the tie if both
// hold. Returns true if the session ended.
func (s *Session) checkStatus() bool {
	switch {
	case s.player.Collisions >= s.lifeLimit:
		s.outcome = OutcomeLost
	case s.player.Row == s.board.GoalRow:
		s.outcome = OutcomeWon
	default:
		return false
	}
	s.phase = PhaseEnded
	return true
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Running reports whether the simulation is advancing.
func (s *Session) Running() bool {
	return s.phase == PhaseRunning
}

// Lives returns the remaining lives, never negative.
func (s *Session) Lives() int {
	lives := s.lifeLimit - s.player.Collisions
	if lives < 0 {
		return 0
	}
	return lives
}

// LifeLimit returns the number of collisions that loses the game.
func (s *Session) LifeLimit() int {
	return s.lifeLimit
}

// Board returns the session's layout constants.
func (s *Session) Board() Board {
	return s.board
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Enemies returns a copy of the enemies.
func (s *Session) Enemies() []Enemy {
	return append([]Enemy(nil), s.enemies...)
}
